package review

import "context"

// RewriteRequest carries everything a strategy may use to rewrite a comment.
type RewriteRequest struct {
	Comment Comment
	Snippet Snippet
}

// Rewriter produces the rewrite of one comment. Implementations never fail:
// problems are reported through RewriteResult.Failure so that one comment
// cannot abort the report.
type Rewriter interface {
	Rewrite(ctx context.Context, req RewriteRequest) RewriteResult
	Name() string
}
