package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Language
	}{
		{"python def", "def foo():\n    return 1", LanguagePython},
		{"python import", "import os\nprint(os.getcwd())", LanguagePython},
		{"javascript function", "function add(a, b) { return a + b; }", LanguageJavaScript},
		{"javascript console", "const x = 1;\nconsole.log(x);", LanguageJavaScript},
		{"c include", "#include <stdio.h>", LanguageCCpp},
		{"c main", "int main(void) { return 0; }", LanguageCCpp},
		{"unknown", "a+b", LanguageUnknown},
		{"empty", "", LanguageUnknown},
		// Lexical only: python markers win even inside a JS string.
		{"misclassified literal", `function f() { return "def "; }`, LanguagePython},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.code))
		})
	}
}

func TestDetectLanguage_Idempotent(t *testing.T) {
	code := "function go() { console.log('hi') }"
	first := DetectLanguage(code)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectLanguage(code))
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguagePython, ParseLanguage(" Python "))
	assert.Equal(t, LanguagePython, ParseLanguage("py"))
	assert.Equal(t, LanguageJavaScript, ParseLanguage("JS"))
	assert.Equal(t, LanguageCCpp, ParseLanguage("c++"))
	assert.Equal(t, Language("go"), ParseLanguage("Go"))
	assert.Equal(t, Language(""), ParseLanguage("  "))
}

func TestFenceTag(t *testing.T) {
	assert.Equal(t, "python", LanguagePython.FenceTag())
	assert.Equal(t, "cpp", LanguageCCpp.FenceTag())
	assert.Equal(t, "", LanguageUnknown.FenceTag())
	assert.Equal(t, "rust", Language("rust").FenceTag())
}

func TestNewSnippet_FallsBackToDetection(t *testing.T) {
	assert.Equal(t, LanguageJavaScript, NewSnippet("console.log(1)", "").Language)
	assert.Equal(t, LanguageCCpp, NewSnippet("def foo(): pass", "cpp").Language)
}

func TestStyleGuideFor(t *testing.T) {
	g, ok := StyleGuideFor(LanguagePython)
	assert.True(t, ok)
	assert.Equal(t, "[PEP 8 style guide](https://peps.python.org/pep-0008/)", g.Link())

	_, ok = StyleGuideFor(LanguageUnknown)
	assert.False(t, ok)
}
