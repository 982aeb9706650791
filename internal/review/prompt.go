package review

import (
	"fmt"
	"strings"
)

// PromptStyle selects the instruction format sent to a delegated rewriter.
type PromptStyle string

const (
	// PromptStructured asks for a strict four-part Markdown skeleton.
	PromptStructured PromptStyle = "structured"
	// PromptFreeform asks for empathetic Markdown from four simple steps.
	PromptFreeform PromptStyle = "freeform"
)

// ParsePromptStyle normalizes a prompt style name; unknown names are structured.
func ParsePromptStyle(s string) PromptStyle {
	if PromptStyle(strings.ToLower(strings.TrimSpace(s))) == PromptFreeform {
		return PromptFreeform
	}
	return PromptStructured
}

const (
	toneGentle  = "very gentle and supportive"
	toneNeutral = "neutral and constructive"
)

// Tone returns the tone requested for a comment.
func Tone(c Comment) string {
	if c.Harsh || SeverityRank(c.Severity) >= SeverityRank(SeverityMajor) {
		return toneGentle
	}
	return toneNeutral
}

// BuildPrompt constructs the prompt for one comment. code is the snippet as
// it may be shared with the service (already redacted if required).
func BuildPrompt(style PromptStyle, c Comment, code string, lang Language) string {
	if style == PromptFreeform {
		return buildFreeformPrompt(c, code, lang)
	}
	return buildStructuredPrompt(c, code, lang)
}

func buildStructuredPrompt(c Comment, code string, lang Language) string {
	var b strings.Builder

	b.WriteString("You are an expert, empathetic code reviewer. For the following code and review comment, strictly output in this Markdown structure:\n")
	fmt.Fprintf(&b, "- **Positive Rephrasing**: Start with a positive, %s rewrite of the comment.\n", Tone(c))
	b.WriteString("- **The Why**: Explain why this matters, always tie to a software principle (readability, maintainability, performance, convention).\n")
	b.WriteString("- **Suggested Improvement**: Show a before/after code block. If possible, suggest two different ways to improve the code.\n")
	if g, ok := StyleGuideFor(lang); ok {
		fmt.Fprintf(&b, "- **Reference**: If relevant, include a link to a style guide or documentation (e.g., %s).\n", g.Link())
	} else {
		b.WriteString("- **Reference**: If relevant, include a link to a style guide or documentation.\n")
	}

	fmt.Fprintf(&b, "\nReview comment: %q\n", c.Text)
	fmt.Fprintf(&b, "Severity: %s\n", c.Severity)
	fmt.Fprintf(&b, "\nCode (language: %s):\n", lang)
	b.WriteString("--- BEGIN CODE ---\n")
	b.WriteString(code)
	b.WriteString("\n--- END CODE ---\n")
	b.WriteString("\nRespond only in Markdown, no extra text. Do not repeat the comment as a heading.\n")

	return b.String()
}

func buildFreeformPrompt(c Comment, code string, lang Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a kind senior developer mentoring a teammate. Use a %s tone.\n", Tone(c))
	b.WriteString("For the review comment below:\n")
	b.WriteString("1. Rephrase it positively.\n")
	b.WriteString("2. Explain why it matters.\n")
	b.WriteString("3. Suggest a concrete improvement with a short code example.\n")
	b.WriteString("4. Encourage the author.\n")
	fmt.Fprintf(&b, "\nComment (%s): %q\n", c.Severity, c.Text)
	fmt.Fprintf(&b, "\n```%s\n%s\n```\n", lang.FenceTag(), code)
	b.WriteString("\nAnswer in Markdown.\n")

	return b.String()
}
