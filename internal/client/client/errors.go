package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/client/validation"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrValidation   = errors.New("invalid request")

	// ErrSessionExpired wraps a 401 received while a session was active.
	ErrSessionExpired = errors.New("session expired")
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindNetwork      Kind = "network"
	KindServer       Kind = "server"
)

const (
	msgForbidden      = "You do not have permission to perform this action"
	msgNotFound       = "The requested resource was not found"
	msgNetwork        = "Unable to reach the server. Check your connection"
	msgUnexpected     = "An unexpected error occurred"
	msgSessionExpired = "Your session has expired, please log in again"
)

// APIError is the single error shape every failed call is normalized into,
// whatever the backend put in the response body.
type APIError struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrForbidden:
		return e.Kind == KindForbidden
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnavailable:
		return e.Kind == KindNetwork
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest, status == http.StatusConflict,
		status == http.StatusUnprocessableEntity, status == http.StatusRequestEntityTooLarge:
		return KindValidation
	default:
		return KindServer
	}
}

// errorFromResponse builds an APIError from a non-2xx status and its body.
// A 401 to a request sent with credentials is marked with ErrSessionExpired;
// a 401 from an anonymous call (a failed login) keeps the backend message.
func errorFromResponse(status int, contentType string, body []byte, hadSession bool) *APIError {
	code, msg := parseErrorBody(contentType, body)
	e := &APIError{
		Kind:    kindForStatus(status),
		Status:  status,
		Code:    code,
		Message: msg,
	}
	if e.Kind == KindUnauthorized && hadSession {
		e.Err = ErrSessionExpired
	}
	return e
}

const maxPlainMessage = 300

// parseErrorBody understands the shapes the backend is known to send:
//
//	{"message": "..."}
//	{"error": "..."}
//	{"error": {"code": "...", "message": "..."}}
//	{"success": false, "error": {"code": "...", "message": "..."}}
//	"..." (JSON string) or a plain text body
func parseErrorBody(contentType string, body []byte) (code, msg string) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", ""
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		if strings.Contains(contentType, "html") {
			return "", ""
		}
		text := string(body)
		if len(text) > maxPlainMessage {
			text = text[:maxPlainMessage]
		}
		return "", text
	}

	switch t := v.(type) {
	case string:
		return "", t
	case map[string]any:
		code, _ = t["code"].(string)
		if m, ok := t["message"].(string); ok && m != "" {
			msg = m
		}
		switch e := t["error"].(type) {
		case string:
			if msg == "" {
				msg = e
			}
		case map[string]any:
			if c, ok := e["code"].(string); ok && c != "" {
				code = c
			}
			if m, ok := e["message"].(string); ok && m != "" {
				msg = m
			}
		}
	}
	return code, msg
}

// UserMessage is the text the terminal shows for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	if errors.Is(err, session.ErrCorruptSession) {
		return session.ErrCorruptSession.Error()
	}
	if errors.Is(err, ErrSessionExpired) {
		return msgSessionExpired
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Kind {
	case KindForbidden:
		return msgForbidden
	case KindNotFound:
		return msgNotFound
	case KindNetwork:
		return msgNetwork
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return msgUnexpected
}
