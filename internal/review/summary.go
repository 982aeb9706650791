package review

import "strings"

var summaryTiers = map[Severity]string{
	SeverityCritical: "There are a few critical points here that deserve attention before this code ships. None of them take away from the effort you have put in: working through them now will make the code safer and far more dependable.",
	SeverityMajor:    "Overall, the code is on the right track. A couple of significant points are worth addressing to improve correctness and maintainability, and each of them is very achievable.",
	SeverityMinor:    "Overall, your code is clear and functional! By making small adjustments you'll improve readability and polish even further. Keep up the great work and keep learning!",
}

// Summarize builds the closing paragraph from the full severity list, the
// extracted positive features, and the snippet's language.
func Summarize(severities []Severity, positives []PositiveFeature, lang Language) string {
	tier := SeverityMinor
	for _, s := range severities {
		if SeverityRank(s) > SeverityRank(tier) {
			tier = s
		}
	}

	var b strings.Builder
	b.WriteString(summaryTiers[tier])

	if len(positives) > 0 {
		items := make([]string, len(positives))
		for i, p := range positives {
			items[i] = strings.TrimSuffix(string(p), ".")
		}
		b.WriteString(" Strengths worth keeping: ")
		b.WriteString(strings.Join(items, "; "))
		b.WriteString(".")
	}

	if g, ok := StyleGuideFor(lang); ok {
		b.WriteString(" For further reading, see the ")
		b.WriteString(g.Link())
		b.WriteString(".")
	}

	return b.String()
}
