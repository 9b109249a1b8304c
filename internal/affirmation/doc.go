// Package affirmation turns a user profile into a short list of affirmations.
//
// The Pipeline asks a generation.TextGenerator for several entries in one
// call, using a plain-text "|||" delimited format instead of structured
// output. The raw response is split and each piece is cleaned up by
// Sanitize before it becomes a domain.Affirmation. Whenever generation
// fails, or nothing survives sanitizing, the batch is drawn from a static
// fallback pool, so callers always receive affirmations and never an error.
package affirmation
