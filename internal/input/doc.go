// Package input decodes review requests from JSON or YAML files.
//
// Defaulting happens here and only here; the review pipeline receives fully
// populated [review.Snippet] and [review.Comment] values.
package input
