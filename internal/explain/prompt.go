package explain

import (
	"fmt"
	"strings"
)

// Section headers the model is instructed to emit, in order. The parser
// matches these same literals.
const (
	HeaderSimple       = "SIMPLE EXPLANATION"
	HeaderAnalogy      = "ANALOGY"
	HeaderExample      = "REAL-WORLD EXAMPLE"
	HeaderWhyItMatters = "WHY THIS MATTERS"
	HeaderRelated      = "RELATED CONCEPTS"
)

func systemPrompt(level Level) string {
	return fmt.Sprintf("You are an expert educator explaining technical concepts to a %s-level student.", level)
}

// BuildPrompt constructs the instruction message for one explanation
// request. Pure function of (text, level); the level must already be
// validated by ParseLevel.
func BuildPrompt(text string, level Level) string {
	guidance := levelGuidelines[level]

	var b strings.Builder

	b.WriteString("YOUR TASK: Explain the following technical concept in a complete, structured format.\n\n")

	b.WriteString("CONCEPT TO EXPLAIN:\n")
	b.WriteString("\"\"\"\n")
	b.WriteString(text)
	b.WriteString("\n\"\"\"\n\n")

	b.WriteString("YOUR RESPONSE MUST FOLLOW THIS EXACT STRUCTURE:\n\n")

	fmt.Fprintf(&b, "## %s\n", HeaderSimple)
	fmt.Fprintf(&b, "[2-3 paragraphs explaining the concept at %s level using %s]\n\n", level, guidance)

	fmt.Fprintf(&b, "## %s\n", HeaderAnalogy)
	fmt.Fprintf(&b, "[Create ONE clear analogy comparing this to something from everyday life that a %s student would understand]\n\n", level)

	fmt.Fprintf(&b, "## %s\n", HeaderExample)
	b.WriteString("[Provide a concrete, practical example of how this concept is used in real development]\n\n")

	fmt.Fprintf(&b, "## %s\n", HeaderWhyItMatters)
	b.WriteString("[Explain in 2-3 sentences why a developer needs to understand this concept and how it impacts their work]\n\n")

	fmt.Fprintf(&b, "## %s\n", HeaderRelated)
	b.WriteString("[List 3-5 related technical terms a learner should explore next, separated by commas]\n\n")

	b.WriteString("CRITICAL RULES:\n")
	fmt.Fprintf(&b, "- Use %s-appropriate language throughout\n", level)
	b.WriteString("- Be encouraging and clear, never condescending\n")
	b.WriteString("- NO unexplained jargon - if you use a technical term, define it immediately\n")
	b.WriteString("- Focus on understanding, not memorization\n")
	b.WriteString("- Make complex ideas accessible without oversimplifying")

	return b.String()
}
