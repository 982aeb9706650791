// Package redact removes secrets from code snippets before they are sent to
// a generative text service.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, connection strings with inline credentials, and provider-specific
// tokens (Anthropic, OpenAI, Google, GitHub, Slack).
package redact
