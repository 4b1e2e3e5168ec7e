// Package ports declares the boundaries of the todo board.
//
// Services (TodoService, ExpirationService) are implemented in internal/app
// and driven by the HTTP handlers. Repositories and the expiration projector
// are implemented over the document store. TodoClient is the terminal
// client's view of the HTTP API.
package ports
