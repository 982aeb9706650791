// Package providers implements the generative text Service for each
// supported backend.
//
// Supported providers: Cohere, OpenAI, Anthropic, Google Gemini (through the
// google.golang.org/genai SDK), and Ollama / LM Studio for local models.
//
// Credentials and endpoints arrive through [Options]; nothing in this package
// reads the environment. A missing credential fails construction with a
// [ConfigurationError]; every failure of a Generate call is a [ServiceError]
// whose Kind tells auth, rate limit, server, transport and malformed
// responses apart. Rate-limit and server errors may be retried with
// exponential back-off when Options.MaxRetries is positive; by default each
// call is attempted once.
//
// Use [New] to obtain a Service by provider name.
package providers
