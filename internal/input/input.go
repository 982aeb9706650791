package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/empathic/internal/review"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an input file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Request is a decoded review request with defaults applied.
type Request struct {
	Snippet  review.Snippet
	Comments []review.Comment
}

// Record is the on-disk shape of a review request. Every field is optional.
type Record struct {
	Code     string          `json:"code" yaml:"code"`
	Language Text            `json:"language,omitempty" yaml:"language,omitempty"`
	Comments []CommentRecord `json:"comments" yaml:"comments"`
}

// CommentRecord is one reviewer comment as written in the input file. An
// entry that is not an object is read as the comment text alone, so a bare
// string becomes the comment and null becomes an empty one.
type CommentRecord struct {
	Comment  Text `json:"comment,omitempty" yaml:"comment,omitempty"`
	Severity Text `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// commentFields decodes CommentRecord without its custom unmarshalers.
type commentFields CommentRecord

func (c *CommentRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var f commentFields
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*c = CommentRecord(f)
		return nil
	}
	*c = CommentRecord{}
	return c.Comment.UnmarshalJSON(data)
}

func (c *CommentRecord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var f commentFields
		if err := node.Decode(&f); err != nil {
			return err
		}
		*c = CommentRecord(f)
		return nil
	}
	*c = CommentRecord{}
	return c.Comment.UnmarshalYAML(node)
}

// Text is a scalar field that never fails to decode. Strings are kept
// verbatim, numbers and booleans keep their literal text, and null, objects
// and arrays leave the field unset.
type Text struct {
	Value string
	Set   bool
}

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text{Value: s, Set: true}
	case '{', '[', 'n':
		// object, array or null
	default:
		*t = Text{Value: string(data), Set: true}
	}
	return nil
}

func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	*t = Text{}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag != "!!null" {
		*t = Text{Value: node.Value, Set: true}
	}
	return nil
}

// FormatFor picks the decoder from the file extension. Anything other than
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the input file at path.
func Load(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("reading input: %w", err)
	}
	req, err := Parse(data, FormatFor(path))
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return req, nil
}

// Parse decodes data in the given format and applies defaults.
func Parse(data []byte, format Format) (Request, error) {
	var rec Record
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return Request{}, fmt.Errorf("parsing YAML input: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&rec); err != nil {
			return Request{}, fmt.Errorf("parsing JSON input: %w", err)
		}
	}
	return rec.Request(), nil
}

// Request applies the defaults: a missing language is detected from the
// code, a missing comment is empty text and a missing or unrecognized
// severity is minor.
func (r Record) Request() Request {
	req := Request{
		Snippet:  review.NewSnippet(r.Code, r.Language.Value),
		Comments: make([]review.Comment, 0, len(r.Comments)),
	}
	for _, c := range r.Comments {
		req.Comments = append(req.Comments, review.NewComment(c.Comment.Value, c.Severity.Value))
	}
	return req
}
