// Package service provides application-level services. IdeaService turns a
// user's submission into generated startup-plan text: it validates the
// request, builds the prompt and makes exactly one call to the generator.
package service
