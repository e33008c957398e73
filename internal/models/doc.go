// Package models lists the OpenAI models available to an API key and
// highlights the chat models that can serve as translation providers.
package models
