// Package common contains constants shared by the HTTP transport, the
// services and the CLI.
package common

const (
	// AuthorizationHeaderName carries the bearer credential.
	AuthorizationHeaderName = "Authorization"

	// TenantHeaderName scopes a request to one organization. It is never
	// sent for ROOT sessions.
	TenantHeaderName = "X-Organization-UUID"

	// RequestIDHeaderName correlates client log lines with backend ones.
	RequestIDHeaderName = "X-Request-ID"

	BearerPrefix = "Bearer "

	// DateLayout is the wire format of every date-only field.
	DateLayout = "2006-01-02"
)
