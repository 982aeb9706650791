package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/empathic/internal/review"
)

func TestJSONWriter(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded review.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(decoded.Comments) != 2 {
		t.Fatalf("Comments = %d, want 2", len(decoded.Comments))
	}
	if decoded.Comments[0].LineRef == nil || decoded.Comments[0].LineRef.Line != 1 {
		t.Errorf("LineRef = %+v", decoded.Comments[0].LineRef)
	}
	if decoded.Comments[1].Rewrite.Failure == "" {
		t.Error("Expected failure marker on second comment")
	}
	if decoded.Snippet.Language != review.LanguagePython {
		t.Errorf("Language = %q", decoded.Snippet.Language)
	}
}

func TestJSONWriter_Envelope(t *testing.T) {
	report := sampleReport()
	report.Snippet = review.NewSnippet("if (a < b && c > d) {}", "javascript")

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var doc struct {
		SchemaVersion int `json:"schemaVersion"`
		Failures      int `json:"failures"`
		Summary       string
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if doc.SchemaVersion != JSONSchemaVersion {
		t.Errorf("schemaVersion = %d, want %d", doc.SchemaVersion, JSONSchemaVersion)
	}
	if doc.Failures != 1 {
		t.Errorf("failures = %d, want 1", doc.Failures)
	}
	if doc.Summary != report.Summary {
		t.Errorf("summary = %q, want report fields at top level", doc.Summary)
	}
	if !strings.Contains(buf.String(), "a < b && c > d") {
		t.Errorf("code should not be HTML-escaped:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Error("output should end with a newline")
	}
}
