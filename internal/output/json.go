package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/empathic/internal/review"
)

// JSONSchemaVersion is bumped whenever a field of the JSON report changes
// meaning or is removed.
const JSONSchemaVersion = 1

// jsonReport is the JSON document: the report fields plus a version and a
// failure count for consumers that only need the outcome.
type jsonReport struct {
	SchemaVersion int `json:"schemaVersion"`
	Failures      int `json:"failures"`
	*review.Report
}

// JSONWriter outputs the structured report as JSON. Code is written
// unescaped so snippets containing <, > or & stay readable.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *review.Report) error {
	doc := jsonReport{SchemaVersion: JSONSchemaVersion, Report: report}
	for _, c := range report.Comments {
		if c.Rewrite.Failed() {
			doc.Failures++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
