// Package client is the HTTP boundary between the terminal client and the
// EMS REST backend.
//
// # Overview
//
// Client wraps a single *http.Client whose Transport decorates every
// request: it sets X-Request-ID, and while a session is active it adds the
// bearer token and, for users that belong to an organization, the
// X-Organization-UUID tenant header. A 401 from any endpoint expires the
// session.
//
// # Error Handling
//
// Every failure is returned as *APIError, whatever shape the backend used
// for its body. Callers match the broad class with errors.Is against
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrUnavailable and
// ErrValidation, and show UserMessage(err) to the user.
//
// Request payloads are validated before they are sent; an invalid payload
// never reaches the network.
package client
