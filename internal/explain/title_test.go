package explain

import "testing"

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Question-word stripping.
		{"what is", "What is an API?", "API"},
		{"whats", "whats a closure", "Closure"},
		{"explain", "explain recursion", "Recursion"},
		{"tell me about", "tell me about webhooks", "Webhooks"},

		// "X in Y" takes the first words of X.
		{"in pattern", "explain middleware in Express", "Middleware"},
		{"in pattern multiword", "explain garbage collection in Java", "Garbage Collection"},
		{"in pattern keeps concept", "What is React in simple terms", "React"},
		{"in pattern greedy", "what is dependency injection in Spring in production", "Dependency Injection"},

		// Acronyms keep canonical casing.
		{"acronym upper", "what is HTTP", "HTTP"},
		{"acronym lower", "what is json", "JSON"},
		{"acronym mixed canonical", "what is OAUTH?", "OAuth"},
		{"acronym in phrase", "explain rest api design", "REST API"},

		// Short cleaned input: first two words, title-cased.
		{"bare concept", "virtual dom", "Virtual DOM"},
		{"two words", "event loop", "Event Loop"},

		// Long input falls through to term scanning.
		{"known tech term", "explain how the database indexes rows for faster retrieval please", "Database"},
		{"capitalized token", "tell me about deployment pipelines with Jenkins automation tools today", "Jenkins"},
		{"first three words fallback", "why does my laptop get so warm when many browser tabs stay open", "My Laptop Get"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTitle(tt.input)
			if got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTitle_NeverEmpty(t *testing.T) {
	// Inputs that clean down to nothing fall back to the trimmed input.
	inputs := []string{"??", "  what is  ", "a"}
	for _, in := range inputs {
		if got := ExtractTitle(in); got == "" {
			t.Errorf("ExtractTitle(%q) returned empty title", in)
		}
	}
}

func TestFixCapitalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"middleware", "Middleware"},
		{"event loop", "Event Loop"},
		{"api", "API"},
		{"oauth tokens", "OAuth Tokens"},
		{"CSS grid", "CSS Grid"},
	}

	for _, tt := range tests {
		if got := fixCapitalization(tt.input); got != tt.want {
			t.Errorf("fixCapitalization(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
