// Package config loads and merges empathic configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (EMPATHIC_STRATEGY, EMPATHIC_PROVIDER, EMPATHIC_MODEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/empathic/config.yaml, or EMPATHIC_CONFIG)
//  4. Built-in defaults
//
// The provider credential is resolved once in [Load] from EMPATHIC_API_KEY or
// the provider's conventional variable (COHERE_API_KEY, OPENAI_API_KEY, ...)
// and carried in [Config.APIKey]; it is never written to disk.
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
