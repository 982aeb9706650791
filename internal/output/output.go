package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dshills/empathic/internal/review"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown", "md", "":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Options controls where and how a report is written.
type Options struct {
	Format string
	// Render styles Markdown for a terminal instead of emitting it raw.
	Render bool
	Width  int
	// OutPath is a file path; empty means w.
	OutPath string
}

// WriteReport writes the report to opts.OutPath, or to w when no path is set.
func WriteReport(w io.Writer, report *review.Report, opts Options) error {
	writer, err := GetWriter(opts.Format)
	if err != nil {
		return err
	}

	if opts.OutPath != "" {
		f, err := os.Create(opts.OutPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if !opts.Render {
		return writer.Write(w, report)
	}
	if _, ok := writer.(*MarkdownWriter); !ok {
		return fmt.Errorf("--render requires markdown output, got %s", opts.Format)
	}
	var buf bytes.Buffer
	if err := writer.Write(&buf, report); err != nil {
		return err
	}
	out, err := Render(buf.String(), opts.Width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
