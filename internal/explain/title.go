package explain

import (
	"regexp"
	"strings"
)

// canonicalAcronyms maps upper-cased tech acronyms to their display form.
// Anything matched here keeps its canonical casing instead of being
// title-cased.
var canonicalAcronyms = map[string]string{
	"API": "API", "HTML": "HTML", "CSS": "CSS", "JS": "JS", "SQL": "SQL",
	"REST": "REST", "HTTP": "HTTP", "HTTPS": "HTTPS", "URL": "URL",
	"JSON": "JSON", "XML": "XML", "AJAX": "AJAX", "DOM": "DOM",
	"CLI": "CLI", "GUI": "GUI", "SDK": "SDK", "IDE": "IDE",
	"AWS": "AWS", "GCP": "GCP", "CDN": "CDN", "DNS": "DNS",
	"VPN": "VPN", "SSH": "SSH", "FTP": "FTP", "TCP": "TCP", "IP": "IP",
	"UI": "UI", "UX": "UX", "CI": "CI", "CD": "CD", "NPM": "NPM",
	"JWT": "JWT", "OAUTH": "OAuth",
}

var (
	// Leading interrogative/imperative phrase, stripped before the
	// "X in Y" scan. Note: includes "the" but not "whats".
	leadPhraseRe = regexp.MustCompile(`(?i)^(what is|what are|what's|explain|tell me about|how does|how do|why does|why do|when|where|the)\s+`)

	// Question-word and article strips used to build the cleaned text.
	questionRe = regexp.MustCompile(`(?i)^(what is|what are|what's|whats|explain|tell me about|how does|how do|why does|why do|when|where)\s+`)
	articleRe  = regexp.MustCompile(`(?i)^(the|a|an)\s+`)

	// "<X> in <Y>" — the first two words of X become the title.
	inPatternRe = regexp.MustCompile(`(?i)([\w\s]+)\s+in\s+([\w.]+)`)

	// Whole-word common technical terms, then a capitalized
	// technical-looking token of up to three words.
	techTermRe = regexp.MustCompile(`(?i)\b(middleware|authentication|authorization|routing|database|server|client|backend|frontend|api|async|await)\b`)
	capTokenRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9/+.-]+(?:\s+[A-Z][A-Za-z0-9/+.-]*){0,2})\b`)
)

// skipWords filters question noise out of the original input when
// cleaning produced nothing usable.
var skipWords = map[string]bool{
	"what": true, "is": true, "are": true, "the": true, "explain": true,
	"tell": true, "me": true, "about": true, "how": true, "does": true, "do": true,
}

// ExtractTitle derives a short display title from a raw user question.
// Heuristic: deterministic and total, but allowed to pick a poor title.
// The rule order is load-bearing; reordering changes results.
func ExtractTitle(input string) string {
	// Rule 1+2: strip the leading question phrase, then look for an
	// "X in Y" pattern and take the first two words of X.
	tempCleaned := strings.TrimSpace(leadPhraseRe.ReplaceAllString(input, ""))
	if m := inPatternRe.FindStringSubmatch(tempCleaned); m != nil {
		return fixCapitalization(firstWords(strings.TrimSpace(m[1]), 2))
	}

	// Build the cleaned text: question words, leading article, and all
	// question marks removed.
	cleaned := questionRe.ReplaceAllString(input, "")
	cleaned = articleRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "?", "")
	cleaned = strings.TrimSpace(cleaned)

	// Cleaning ate everything: fall back to the first meaningful words
	// of the original input.
	if len(cleaned) < 3 {
		words := strings.Fields(strings.ReplaceAll(input, "?", ""))
		meaningful := words[:0:0]
		for _, w := range words {
			if !skipWords[strings.ToLower(w)] {
				meaningful = append(meaningful, w)
			}
		}
		if len(meaningful) > 3 {
			meaningful = meaningful[:3]
		}
		cleaned = strings.Join(meaningful, " ")
	}

	// Rule 3: short cleaned text — first two words.
	if len(cleaned) < 30 {
		title := fixCapitalization(firstWords(cleaned, 2))
		if title != "" {
			return title
		}
		return strings.TrimSpace(input)
	}

	// Rule 4: scan longer text for a known technical term, then for a
	// capitalized technical-looking token.
	if m := techTermRe.FindStringSubmatch(cleaned); m != nil {
		return fixCapitalization(m[1])
	}
	if m := capTokenRe.FindStringSubmatch(cleaned); m != nil {
		return fixCapitalization(m[1])
	}

	// Rule 5: fallback — first three words.
	return fixCapitalization(firstWords(cleaned, 3))
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// fixCapitalization title-cases each word except recognized acronyms,
// which are forced to their canonical form regardless of input casing.
func fixCapitalization(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		if canon, ok := canonicalAcronyms[strings.ToUpper(w)]; ok {
			words[i] = canon
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
