// Package api handles incoming HTTP requests for the idea generator. It serves
// the two screens of the interactive tool (landing and generator) as
// server-rendered HTML and exposes the same generate operation as a JSON
// endpoint. Handlers translate HTTP concerns into calls on service.IdeaService
// and map its errors to status codes and user-facing messages.
package api
