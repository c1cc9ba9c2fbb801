package explain

import (
	"regexp"
	"strings"
)

// Each section is captured between its "## " header and the next "## "
// marker (or end of text). Headers match case-insensitively; when a
// header appears twice only the first occurrence is used. A missing
// header degrades to an empty field rather than an error.
var (
	simpleRe  = sectionRe(HeaderSimple)
	analogyRe = sectionRe(HeaderAnalogy)
	exampleRe = sectionRe(HeaderExample)
	whyRe     = sectionRe(HeaderWhyItMatters)
	relatedRe = sectionRe(HeaderRelated)
)

func sectionRe(header string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)## ` + regexp.QuoteMeta(header) + `\s*(.*?)(?:## |$)`)
}

// ParseSections extracts the five structured fields from raw generated
// text. Total: any input, including one with no headers at all, yields a
// fully populated (possibly empty) Sections.
func ParseSections(text string) Sections {
	s := Sections{
		Simple:          captureSection(simpleRe, text),
		Analogy:         captureSection(analogyRe, text),
		Example:         captureSection(exampleRe, text),
		WhyItMatters:    captureSection(whyRe, text),
		RelatedConcepts: []string{},
	}

	if related := captureSection(relatedRe, text); related != "" {
		s.RelatedConcepts = splitRelated(related)
	}

	return s
}

func captureSection(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitRelated turns the comma-separated related-concepts body into at
// most MaxRelatedConcepts trimmed, non-empty terms.
func splitRelated(body string) []string {
	terms := []string{}
	for _, t := range strings.Split(body, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		terms = append(terms, t)
		if len(terms) == MaxRelatedConcepts {
			break
		}
	}
	return terms
}
