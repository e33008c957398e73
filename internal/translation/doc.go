// Package translation provides text translation between languages (Spanish
// to English by default) through OpenAI or Gemini. Providers can be wrapped
// with a circuit breaker and a translation cache backed by memory, SQLite or
// Redis.
package translation
