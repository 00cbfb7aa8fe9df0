package client

import (
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/common"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"github.com/google/uuid"
)

// Transport decorates every outgoing request with the session credentials
// and expires the session when the backend answers 401.
type Transport struct {
	Base    http.RoundTripper
	Session *session.Store
	Log     logging.Logger
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	req = req.Clone(ctx)

	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	// The store never holds a non-ROOT session without an organization.
	if sess, ok := t.Session.Current(); ok {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+sess.Token)
		if !sess.User.IsRoot() {
			req.Header.Set(common.TenantHeaderName, sess.User.OrganizationUUID)
		}
	}

	log := t.Log.With("request_id", reqID, "method", req.Method, "path", req.URL.Path)

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, err
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := t.Session.Expire(ctx); err != nil {
			log.Error(ctx, "failed to clear session", "error", err)
		}
	}
	return resp, nil
}
