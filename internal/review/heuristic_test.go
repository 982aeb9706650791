package review

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewrite(comment, severity, code string) RewriteResult {
	return HeuristicRewriter{}.Rewrite(context.Background(), RewriteRequest{
		Comment: NewComment(comment, severity),
		Snippet: NewSnippet(code, ""),
	})
}

func TestHeuristic_Docstring(t *testing.T) {
	for _, comment := range []string{"add a docstring", "Missing DOCSTRING here", "docstring + validate input"} {
		r := rewrite(comment, "minor", "def foo():\n    return 1")
		assert.Equal(t, explanations[ruleDocstring], r.Explanation, comment)
		assert.Contains(t, r.Explanation, "document")
		assert.Contains(t, r.Suggestion, "Add a docstring")
		assert.Contains(t, r.Suggestion, "def foo():\n    \"\"\"")
		assert.Contains(t, r.Reference, "pep-0257")
		assert.False(t, r.Failed())
	}
}

func TestHeuristic_OperatorSpacing(t *testing.T) {
	r := rewrite("add space around operator", "minor", "a+b")
	assert.Equal(t, explanations[ruleOperatorSpacing], r.Explanation)
	assert.Contains(t, r.Suggestion, "```\na+b\n```")
	assert.Contains(t, r.Suggestion, "```\na + b\n```")
}

func TestHeuristic_OperatorSpacingUsesCodeLine(t *testing.T) {
	r := rewrite("spaces around each operator please", "major", "def f():\n    return x*2+y")
	assert.Contains(t, r.Suggestion, "return x * 2 + y")
	assert.Contains(t, r.Reference, "pep-0008")
}

func TestHeuristic_OperatorSpacingFallbackExample(t *testing.T) {
	r := rewrite("add space around operator", "minor", "total = a + b")
	assert.Contains(t, r.Suggestion, "a + b")
	assert.Contains(t, r.Suggestion, "a+b")
}

func TestHeuristic_Validation(t *testing.T) {
	for _, comment := range []string{"validate the argument", "check user input"} {
		r := rewrite(comment, "minor", "function f(v) { return v }")
		assert.Equal(t, explanations[ruleValidation], r.Explanation, comment)
		assert.Contains(t, r.Suggestion, "validation")
		assert.Contains(t, r.Suggestion, "```javascript\n")
		assert.Empty(t, r.Reference)
	}
}

func TestHeuristic_Generic(t *testing.T) {
	r := rewrite("rename this variable", "minor", "x = 1")
	assert.Equal(t, explanations[ruleGeneric], r.Explanation)
	assert.Contains(t, r.Suggestion, "Revise")
	assert.Empty(t, r.Reference)
}

func TestHeuristic_RulePriority(t *testing.T) {
	tests := []struct {
		comment string
		want    heuristicRule
	}{
		{"docstring and space around operator", ruleDocstring},
		{"space around operator, validate input", ruleOperatorSpacing},
		{"operator only", ruleGeneric},
		{"space only", ruleGeneric},
		{"validate", ruleValidation},
		{"", ruleGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.comment), tt.comment)
	}
}

func TestHeuristic_RephrasingTiers(t *testing.T) {
	for _, sev := range []Severity{SeverityMinor, SeverityMajor, SeverityCritical} {
		templates := RephraseTemplates(sev)
		require.GreaterOrEqual(t, len(templates), 2, sev)

		r := rewrite("use a list comprehension", string(sev), "x = 1")
		assert.Equal(t, fmt.Sprintf(templates[0], "use a list comprehension"), r.Rephrasing)
		assert.Contains(t, r.Rephrasing, "use a list comprehension")
	}
	assert.NotEqual(t, rewrite("c", "minor", "").Rephrasing, rewrite("c", "critical", "").Rephrasing)
}

func TestHeuristic_UnknownSeverityIsMinor(t *testing.T) {
	want := rewrite("add a docstring", "minor", "def f(): pass")
	for _, sev := range []string{"", "harsh", "BLOCKER", "low"} {
		assert.Equal(t, want, rewrite("add a docstring", sev, "def f(): pass"), sev)
	}
}

func TestHeuristic_Deterministic(t *testing.T) {
	assert.Equal(t, rewrite("validate input", "major", "x"), rewrite("validate input", "major", "x"))
}

func TestSpaceOperators(t *testing.T) {
	tests := map[string]string{
		"a+b":       "a + b",
		"x=y*2":     "x = y * 2",
		"if a==b:":  "if a == b:",
		"f(a)-g(b)": "f(a) - g(b)",
		"a + b":     "a + b",
	}
	for in, want := range tests {
		assert.Equal(t, want, spaceOperators(in), in)
	}
	assert.False(t, strings.Contains(spaceOperators("n<=10"), "< ="))
}
