// Package output formats review reports.
//
// Two formats are supported:
//   - markdown: the review document (default)
//   - json    : the structured report
//
// Use [GetWriter] to obtain a [Writer] for a format string, or [WriteReport]
// to handle destination selection and optional terminal rendering through
// glamour.
package output
