// Package clienttest runs a fake EMS backend on httptest with a chi router
// and hands out clients wired to it.
package clienttest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/config"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/client/storage"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backend records every request it sees so tests can assert on headers.
type Backend struct {
	Router chi.Router
	Server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{Router: chi.NewRouter()}
	b.Router.Use(b.record)
	b.Server = httptest.NewServer(b.Router)
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Clone(context.Background()))
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of the requests seen so far.
func (b *Backend) Requests() []*http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*http.Request(nil), b.requests...)
}

// Last returns the most recent request, or nil.
func (b *Backend) Last() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return nil
	}
	return b.requests[len(b.requests)-1]
}

// Config returns default settings pointed at the fake backend.
func (b *Backend) Config(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = b.Server.URL + "/api"
	cfg.DBPath = filepath.Join(t.TempDir(), "ems.db")
	cfg.PreviewDir = filepath.Join(t.TempDir(), "preview")
	return cfg
}

// NewClient returns an anonymous client talking to the backend.
func (b *Backend) NewClient(t *testing.T) *client.Client {
	t.Helper()
	cfg := b.Config(t)
	return client.New(cfg, NewStore(t, cfg.DBPath), logging.Discard())
}

// NewClientAs returns a client whose session is already authenticated.
func (b *Backend) NewClientAs(t *testing.T, sess models.Session) *client.Client {
	t.Helper()
	c := b.NewClient(t)
	require.NoError(t, c.Session().Begin(context.Background(), sess))
	return c
}

// NewStore opens a fresh sqlite file and a session store on top of it.
func NewStore(t *testing.T, dsn string) *session.Store {
	t.Helper()
	db := OpenDB(t, dsn)
	return session.NewStore(db, logging.Discard())
}

func OpenDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Admin is a tenant-scoped ADMIN session.
func Admin() models.Session {
	return models.Session{
		Token: "admin-token",
		User: models.User{
			ID:               2,
			Username:         "admin",
			Email:            "admin@acme.test",
			Roles:            []string{models.RoleAdmin},
			OrganizationUUID: "org-acme",
		},
	}
}

// Employee is a plain USER session linked to employee 42.
func Employee() models.Session {
	id := int64(42)
	return models.Session{
		Token: "user-token",
		User: models.User{
			ID:               3,
			Username:         "jdoe",
			Email:            "jdoe@acme.test",
			Roles:            []string{models.RoleUser},
			OrganizationUUID: "org-acme",
			EmployeeID:       &id,
		},
	}
}

// Root is a ROOT session with no organization.
func Root() models.Session {
	return models.Session{
		Token: "root-token",
		User:  models.User{ID: 1, Username: "root", Roles: []string{models.RoleRoot}},
	}
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Decode reads a JSON request body into v. It is called from handler
// goroutines, so it reports through assert rather than require.
func Decode(t *testing.T, r *http.Request, v any) bool {
	t.Helper()
	return assert.NoError(t, json.NewDecoder(r.Body).Decode(v))
}
