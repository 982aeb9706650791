package review

import "strings"

// Severity represents the normalized severity of a review comment.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// ParseSeverity normalizes a raw severity tag. Anything outside the closed
// set, including the empty string, is minor.
func ParseSeverity(raw string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityMajor:
		return SeverityMajor
	default:
		return SeverityMinor
	}
}

// SeverityRank returns a numeric rank for comparison (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityMajor:
		return 2
	default:
		return 1
	}
}

// Language is a language tag. Detected tags come from the closed set below;
// a declared tag outside it is kept as given.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageCCpp       Language = "c_cpp"
	LanguageUnknown    Language = "unknown"
)

var languageAliases = map[string]Language{
	"python":     LanguagePython,
	"python3":    LanguagePython,
	"py":         LanguagePython,
	"javascript": LanguageJavaScript,
	"js":         LanguageJavaScript,
	"node":       LanguageJavaScript,
	"c_cpp":      LanguageCCpp,
	"c":          LanguageCCpp,
	"cpp":        LanguageCCpp,
	"c++":        LanguageCCpp,
	"cxx":        LanguageCCpp,
	"unknown":    LanguageUnknown,
}

// ParseLanguage normalizes a declared language tag. Known aliases map onto
// the closed set; anything else is lowercased and kept. Empty input returns
// the empty Language so callers can fall back to detection.
func ParseLanguage(raw string) Language {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if l, ok := languageAliases[s]; ok {
		return l
	}
	return Language(s)
}

// FenceTag returns the info string used on a Markdown code fence.
func (l Language) FenceTag() string {
	switch l {
	case LanguageCCpp:
		return "cpp"
	case LanguageUnknown, "":
		return ""
	default:
		return string(l)
	}
}

// Snippet is the code under review.
type Snippet struct {
	Code     string   `json:"code"`
	Language Language `json:"language"`
}

// NewSnippet builds a Snippet, detecting the language when none is declared.
func NewSnippet(code, declared string) Snippet {
	lang := ParseLanguage(declared)
	if lang == "" {
		lang = DetectLanguage(code)
	}
	return Snippet{Code: code, Language: lang}
}

// Comment is a single reviewer comment.
type Comment struct {
	Text     string   `json:"comment"`
	Severity Severity `json:"severity"`
	// Harsh records an explicit "harsh" tag on input. It only softens the
	// tone requested from a delegated rewrite; everywhere else the comment
	// behaves as minor.
	Harsh bool `json:"harsh,omitempty"`
}

// NewComment builds a Comment from raw fields.
func NewComment(text, severity string) Comment {
	return Comment{
		Text:     text,
		Severity: ParseSeverity(severity),
		Harsh:    strings.EqualFold(strings.TrimSpace(severity), "harsh"),
	}
}

// PositiveFeature is a fixed encouragement triggered by a pattern in the code.
type PositiveFeature string

// LineReference points a comment at a source line (1-indexed).
type LineReference struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// RewriteResult is the rewrite of one comment. Exactly one of the
// structured fields, Freeform, or Failure is what gets rendered.
type RewriteResult struct {
	Rephrasing  string `json:"rephrasing,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Suggestion  string `json:"suggestion,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Freeform    string `json:"freeform,omitempty"`
	Failure     string `json:"failure,omitempty"`
}

// Failed reports whether the rewrite could not be produced.
func (r RewriteResult) Failed() bool {
	return r.Failure != ""
}

// CommentReview pairs a comment with everything derived from it.
type CommentReview struct {
	Comment Comment        `json:"comment"`
	LineRef *LineReference `json:"lineRef,omitempty"`
	Rewrite RewriteResult  `json:"rewrite"`
}

// Report is everything needed to render a review document.
type Report struct {
	Snippet   Snippet           `json:"snippet"`
	Positives []PositiveFeature `json:"positives"`
	Comments  []CommentReview   `json:"comments"`
	Summary   string            `json:"summary"`
	Strategy  string            `json:"strategy"`
}
