package review

import "strings"

var featureTriggers = []struct {
	marker  string
	feature PositiveFeature
}{
	{"def ", "Great use of function definitions to organize your code."},
	{"return", "Good job using return statements to output results."},
	{"import ", "Nice use of imports to leverage existing libraries."},
}

// ExtractPositiveFeatures returns the encouragements whose trigger occurs in
// code, in trigger order. Matching is by substring, so false positives are
// possible.
func ExtractPositiveFeatures(code string) []PositiveFeature {
	var out []PositiveFeature
	for _, t := range featureTriggers {
		if strings.Contains(code, t.marker) {
			out = append(out, t.feature)
		}
	}
	return out
}
