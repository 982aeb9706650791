package review

import "strings"

// languageMarkers are checked in order; the first language with a matching
// marker wins.
var languageMarkers = []struct {
	lang    Language
	markers []string
}{
	{LanguagePython, []string{"def ", "import "}},
	{LanguageJavaScript, []string{"function", "console.log"}},
	{LanguageCCpp, []string{"#include", "int main"}},
}

// DetectLanguage classifies code by substring heuristics. It is purely
// lexical: a JavaScript file with "def " inside a string literal is reported
// as python.
func DetectLanguage(code string) Language {
	for _, lm := range languageMarkers {
		for _, m := range lm.markers {
			if strings.Contains(code, m) {
				return lm.lang
			}
		}
	}
	return LanguageUnknown
}

// StyleGuide is a named style reference for a language.
type StyleGuide struct {
	Name string
	URL  string
}

// Link renders the guide as a Markdown link.
func (g StyleGuide) Link() string {
	return "[" + g.Name + "](" + g.URL + ")"
}

var styleGuides = map[Language]StyleGuide{
	LanguagePython:     {Name: "PEP 8 style guide", URL: "https://peps.python.org/pep-0008/"},
	LanguageJavaScript: {Name: "MDN JavaScript guidelines", URL: "https://developer.mozilla.org/en-US/docs/MDN/Writing_guidelines/Code_style_guide/JavaScript"},
	LanguageCCpp:       {Name: "C++ Core Guidelines", URL: "https://isocpp.github.io/CppCoreGuidelines/CppCoreGuidelines"},
}

// StyleGuideFor returns the style guide for a language, if one is known.
func StyleGuideFor(lang Language) (StyleGuide, bool) {
	g, ok := styleGuides[lang]
	return g, ok
}
