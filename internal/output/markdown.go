package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/empathic/internal/review"
)

// MarkdownWriter assembles the review document. Heading levels and section
// order never change; only Positive Feedback is omitted when empty.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	_, err := io.WriteString(w, Markdown(report))
	return err
}

// Markdown renders the report as a Markdown document.
func Markdown(report *review.Report) string {
	var b strings.Builder

	b.WriteString("# Empathetic Code Review\n\n")

	b.WriteString("## Code Snippet\n\n")
	code := strings.TrimSpace(report.Snippet.Code)
	fence := fenceFor(code)
	fmt.Fprintf(&b, "%s%s\n%s\n%s\n\n", fence, report.Snippet.Language.FenceTag(), code, fence)

	if len(report.Positives) > 0 {
		b.WriteString("## Positive Feedback\n\n")
		for _, p := range report.Positives {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Review Comments\n\n")
	for _, c := range report.Comments {
		writeComment(&b, c)
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(report.Summary)
	b.WriteString("\n")

	return b.String()
}

func writeComment(b *strings.Builder, c review.CommentReview) {
	fmt.Fprintf(b, "### Analysis of Comment: \"%s\"", lineBreaks.Replace(c.Comment.Text))
	if c.LineRef != nil {
		fmt.Fprintf(b, " (See line %d: %s)", c.LineRef.Line, codeSpan(c.LineRef.Text))
	}
	b.WriteString("\n\n")

	r := c.Rewrite
	switch {
	case r.Failed():
		fmt.Fprintf(b, "%s\n\n", r.Failure)
	case r.Freeform != "":
		fmt.Fprintf(b, "%s\n\n", r.Freeform)
	default:
		fmt.Fprintf(b, "- **Positive Rephrasing**: %s\n", r.Rephrasing)
		fmt.Fprintf(b, "- **The Why**: %s\n", r.Explanation)
		fmt.Fprintf(b, "- **Suggested Improvement**: %s\n", indent(r.Suggestion))
		if r.Reference != "" {
			fmt.Fprintf(b, "- **Reference**: %s\n", r.Reference)
		}
		b.WriteString("\n")
	}
}

// indent keeps multi-line suggestions, including code fences, inside their
// list item.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// lineBreaks keeps a comment on its heading line; all other characters are
// shown as written.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// longestBacktickRun returns the length of the longest run of backticks in s.
func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}

// codeSpan wraps s in an inline code span whose delimiter is longer than
// any backtick run inside it.
func codeSpan(s string) string {
	delim := strings.Repeat("`", longestBacktickRun(s)+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return delim + s + delim
}

// fenceFor returns a code fence longer than any backtick run in code.
func fenceFor(code string) string {
	return strings.Repeat("`", max(3, longestBacktickRun(code)+1))
}
