package explain

import (
	"strings"
	"testing"
)

func TestBuildPrompt_ContainsConcept(t *testing.T) {
	msg := BuildPrompt("what is a closure?", LevelIntermediate)

	if !strings.Contains(msg, "what is a closure?") {
		t.Error("expected prompt to embed the raw question")
	}
	if !strings.Contains(msg, `"""`) {
		t.Error("expected question to be fenced with triple quotes")
	}
}

func TestBuildPrompt_AllLevels(t *testing.T) {
	for _, level := range Levels() {
		t.Run(string(level), func(t *testing.T) {
			msg := BuildPrompt("recursion", level)

			if !strings.Contains(msg, string(level)) {
				t.Errorf("expected prompt to mention level %q", level)
			}
			if !strings.Contains(msg, levelGuidelines[level]) {
				t.Errorf("expected prompt to contain guidance for %q", level)
			}
		})
	}
}

func TestBuildPrompt_HeadersInOrder(t *testing.T) {
	msg := BuildPrompt("recursion", LevelBeginner)

	headers := []string{
		HeaderSimple,
		HeaderAnalogy,
		HeaderExample,
		HeaderWhyItMatters,
		HeaderRelated,
	}

	pos := -1
	for _, h := range headers {
		idx := strings.Index(msg, "## "+h)
		if idx < 0 {
			t.Fatalf("header %q missing from prompt", h)
		}
		if idx < pos {
			t.Errorf("header %q appears out of order", h)
		}
		pos = idx
	}
}

func TestSystemPrompt_MentionsLevel(t *testing.T) {
	got := systemPrompt(LevelExpert)
	if !strings.Contains(got, "expert") {
		t.Errorf("expected system prompt to mention level, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"beginner", LevelBeginner, false},
		{"Elementary", LevelElementary, false},
		{"  EXPERT  ", LevelExpert, false},
		{"intermediate", LevelIntermediate, false},
		{"phd", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
