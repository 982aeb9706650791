package review

import (
	"regexp"
	"strings"
)

// tightOperator matches a binary operator with an operand pressed against
// both sides, e.g. "a+b" or "x=1".
var tightOperator = regexp.MustCompile(`[\w)\]](==|!=|<=|>=|\+=|-=|\*=|/=|\+|-|\*|/|%|=|<|>)[\w(\[]`)

// FindLineReference associates a comment with a line of code. It is a
// best-effort textual match, not a claim of relevance; nil means nothing
// qualified.
//
// Docstring comments point at the first function definition; operator
// comments at the first line with unspaced operators. If neither applies or
// neither hits, the first line sharing a word with the comment is used.
func FindLineReference(comment, code string) *LineReference {
	lines := strings.Split(code, "\n")
	lc := strings.ToLower(comment)

	if strings.Contains(lc, "docstring") {
		if ref := firstLine(lines, func(l string) bool { return strings.Contains(l, "def ") }); ref != nil {
			return ref
		}
	}
	if strings.Contains(lc, "operator") {
		if ref := firstLine(lines, tightOperator.MatchString); ref != nil {
			return ref
		}
	}
	return firstLine(lines, func(l string) bool {
		for _, w := range strings.Fields(strings.ToLower(l)) {
			if strings.Contains(lc, w) {
				return true
			}
		}
		return false
	})
}

func firstLine(lines []string, match func(string) bool) *LineReference {
	for i, l := range lines {
		if match(l) {
			return &LineReference{Line: i + 1, Text: strings.TrimSpace(l)}
		}
	}
	return nil
}
