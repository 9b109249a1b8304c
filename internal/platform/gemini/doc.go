// Package gemini implements generation.TextGenerator on Google's Gemini API.
//
// This package is an infrastructure adapter: the affirmation pipeline only
// sees the TextGenerator port and never the genai client. The adapter owns
// the collaborator's retry policy. Transient failures (network errors, rate
// limiting, server errors) are retried with exponential backoff and jitter,
// while safety blocks, empty responses and other client errors fail at once.
package gemini
