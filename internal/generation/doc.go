// Package generation defines the boundary between the application and
// external text-generation services. The Generator interface hides which
// model answers a prompt, so the service layer can be exercised with mocks
// and the Gemini adapter can be swapped without touching callers.
package generation
