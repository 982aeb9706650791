// Empathic rewrites raw code review comments into a kind, actionable
// Markdown report.
//
// It reads a code snippet and an ordered list of reviewer comments from a
// JSON or YAML file, rephrases each comment according to its severity,
// explains why it matters, suggests a fix and closes with a summary.
// Comments are rewritten by local heuristics or delegated to a generative
// text provider.
//
// Usage:
//
//	empathic review.json                         # heuristic rewrite to stdout
//	empathic --strategy llm --provider cohere review.yaml
//	empathic --format json --out report.json review.json
//	empathic --render review.json                # styled for the terminal
//	empathic config init                         # write a default config file
//	empathic providers list                      # supported providers
package main
