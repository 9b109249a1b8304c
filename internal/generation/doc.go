// Package generation defines the boundary between the application core and
// external AI/LLM text-generation services (Gemini). Callers depend on the
// TextGenerator interface and the sentinel errors declared here, never on a
// concrete provider.
package generation
