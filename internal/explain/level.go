package explain

import (
	"fmt"
	"strings"
)

// Level controls explanation depth and vocabulary.
// Stored values are always lower-case.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelElementary   Level = "elementary"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Levels returns all levels in increasing depth order.
func Levels() []Level {
	return []Level{
		LevelBeginner,
		LevelElementary,
		LevelIntermediate,
		LevelAdvanced,
		LevelExpert,
	}
}

// ParseLevel normalizes and validates a user-supplied level string.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q (expected one of: beginner, elementary, intermediate, advanced, expert)", s)
	}
	return l, nil
}

// Valid reports whether l is one of the recognized levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelElementary, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// levelGuidelines maps each level to the style guidance embedded in the prompt.
var levelGuidelines = map[Level]string{
	LevelBeginner:     "extremely simple words, short sentences, use toys/food/animals as analogies, no technical jargon",
	LevelElementary:   "simple vocabulary, concrete examples from everyday life, explain cause-and-effect clearly, minimal jargon",
	LevelIntermediate: "clear explanations with some technical terms defined, real-world applications, connections to concepts they might know",
	LevelAdvanced:     "technical vocabulary with context, practical applications in development, architectural thinking, assume general tech knowledge",
	LevelExpert:       "precise technical language, architectural trade-offs, performance implications, assume deep technical knowledge",
}
