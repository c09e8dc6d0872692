// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to turn startup-plan prompts into text.
//
// This package is an infrastructure adapter: it translates between the
// application's prompt strings and the google.golang.org/genai client without
// exposing the details of the external service to the rest of the application.
//
// Key behaviors:
//
//   - A single attempt per call; there is no retry policy.
//   - Fixed decoding parameters (model, temperature, maximum output tokens)
//     taken from config.LLMConfig at construction time.
//   - A bounded HTTP timeout on the underlying transport.
//   - Responses are returned as plain text exactly as produced by the model;
//     empty, malformed and safety-blocked responses map to the sentinel errors
//     of the generation package.
package gemini
