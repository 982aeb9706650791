// Package review contains the core types and pipeline for empathetic code
// review reports.
//
// Given a [Snippet] (its language declared or found by [DetectLanguage]) and
// an ordered list of [Comment] values, [Engine.Run] extracts positive
// features, resolves a best-effort line reference and a rewrite for every
// comment, and synthesizes a summary.
// All matching is textual; nothing here parses code.
//
// Rewriting is pluggable through [Rewriter]. [HeuristicRewriter] works
// locally from templates and keyword rules. [DelegatingRewriter] sends one
// prompt per comment to a providers.Service and embeds the answer verbatim;
// any failure becomes an inline marker on that comment only.
//
// Comments are rewritten in parallel with bounded concurrency; results are
// stored by index so the report always follows input order.
package review
