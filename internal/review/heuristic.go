package review

import (
	"context"
	"fmt"
	"strings"
)

// rephraseTemplates holds the alternatives per tier. The first entry is the
// one used; the rest are kept for callers that want variety.
var rephraseTemplates = map[Severity][]string{
	SeverityCritical: {
		"This is an important one, and it is great that it surfaced now: %s. Addressing it before merging will keep the code safe and reliable.",
		"Let's pause on this together before shipping: %s. Sorting it out now protects you and your users.",
	},
	SeverityMajor: {
		"Nice work so far! One thing that will make a real difference: %s.",
		"You're on the right track. A meaningful improvement would be: %s.",
	},
	SeverityMinor: {
		"Great job overall! A small polish to consider: %s.",
		"Looks good! If you have a moment, you could %s.",
	},
}

// RephraseTemplates returns the alternative templates for a severity tier.
func RephraseTemplates(s Severity) []string {
	return rephraseTemplates[ParseSeverity(string(s))]
}

type heuristicRule int

const (
	ruleGeneric heuristicRule = iota
	ruleDocstring
	ruleOperatorSpacing
	ruleValidation
)

// classify picks the first rule whose keywords appear in the comment:
// docstring, then space+operator, then validate/input.
func classify(comment string) heuristicRule {
	lc := strings.ToLower(comment)
	switch {
	case strings.Contains(lc, "docstring"):
		return ruleDocstring
	case strings.Contains(lc, "space") && strings.Contains(lc, "operator"):
		return ruleOperatorSpacing
	case strings.Contains(lc, "validate") || strings.Contains(lc, "input"):
		return ruleValidation
	default:
		return ruleGeneric
	}
}

var explanations = map[heuristicRule]string{
	ruleDocstring:       "Docstrings document what a function does, what it expects, and what it returns. Good documentation makes the code easier to understand, use, and maintain for everyone, including future you.",
	ruleOperatorSpacing: "Consistent spacing around operators improves readability and matches the language's style guide, so the code is quicker to scan and easier to review.",
	ruleValidation:      "Validating inputs makes code robust: it fails early with a clear message instead of misbehaving later, which prevents subtle bugs and security issues.",
	ruleGeneric:         "Addressing this improves code quality, readability, and performance, which keeps the codebase maintainable as it grows.",
}

// HeuristicRewriter rewrites comments locally from templates and keyword
// rules. It is deterministic and never fails.
type HeuristicRewriter struct{}

func (HeuristicRewriter) Name() string { return "heuristic" }

func (h HeuristicRewriter) Rewrite(_ context.Context, req RewriteRequest) RewriteResult {
	rule := classify(req.Comment.Text)
	return RewriteResult{
		Rephrasing:  fmt.Sprintf(RephraseTemplates(req.Comment.Severity)[0], req.Comment.Text),
		Explanation: explanations[rule],
		Suggestion:  suggest(rule, req.Snippet),
		Reference:   reference(rule, req.Snippet.Language),
	}
}

func suggest(rule heuristicRule, s Snippet) string {
	fence := s.Language.FenceTag()
	switch rule {
	case ruleDocstring:
		before, after := docstringExample(s)
		return "Add a docstring right below the function signature describing its purpose, parameters, and return value." +
			beforeAfter(fence, before, after)
	case ruleOperatorSpacing:
		before, after := "a+b", "a + b"
		if ref := firstLine(strings.Split(s.Code, "\n"), tightOperator.MatchString); ref != nil {
			before, after = ref.Text, spaceOperators(ref.Text)
		}
		return "Add a single space on each side of binary operators." + beforeAfter(fence, before, after)
	case ruleValidation:
		return "Add type and input validation at the top of the function so bad values are rejected early with a clear error." +
			validationExample(s.Language)
	default:
		return "Revise the code following the suggestion above, then re-run your tests to confirm the behavior is unchanged."
	}
}

func docstringExample(s Snippet) (string, string) {
	sig := "def my_function(value):"
	if ref := firstLine(strings.Split(s.Code, "\n"), func(l string) bool { return strings.Contains(l, "def ") }); ref != nil {
		sig = ref.Text
	}
	return sig + "\n    ...", sig + "\n    \"\"\"Describe what this function does and what it returns.\"\"\"\n    ..."
}

func validationExample(lang Language) string {
	var code string
	switch lang {
	case LanguageJavaScript:
		code = "if (typeof value !== \"number\") {\n  throw new TypeError(\"value must be a number\");\n}"
	case LanguageCCpp:
		code = "if (value < 0) {\n    return -1; /* reject invalid input */\n}"
	default:
		code = "if not isinstance(value, int):\n    raise TypeError(\"value must be an int\")"
	}
	return "\n\n```" + lang.FenceTag() + "\n" + code + "\n```"
}

func beforeAfter(fence, before, after string) string {
	return fmt.Sprintf("\n\nBefore:\n\n```%s\n%s\n```\n\nAfter:\n\n```%s\n%s\n```", fence, before, fence, after)
}

// spaceOperators inserts spaces around every tight binary operator in line.
func spaceOperators(line string) string {
	for {
		loc := tightOperator.FindStringSubmatchIndex(line)
		if loc == nil {
			return line
		}
		opStart, opEnd := loc[2], loc[3]
		line = line[:opStart] + " " + line[opStart:opEnd] + " " + line[opEnd:]
	}
}

var ruleReferences = map[heuristicRule]map[Language]StyleGuide{
	ruleDocstring: {
		LanguagePython:     {Name: "PEP 257 docstring conventions", URL: "https://peps.python.org/pep-0257/"},
		LanguageJavaScript: {Name: "JSDoc getting started", URL: "https://jsdoc.app/about-getting-started"},
	},
	ruleOperatorSpacing: {
		LanguagePython: {Name: "PEP 8 whitespace in expressions", URL: "https://peps.python.org/pep-0008/#whitespace-in-expressions-and-statements"},
	},
}

func reference(rule heuristicRule, lang Language) string {
	if g, ok := ruleReferences[rule][lang]; ok {
		return g.Link()
	}
	if rule == ruleOperatorSpacing {
		if g, ok := StyleGuideFor(lang); ok {
			return g.Link()
		}
	}
	return ""
}
