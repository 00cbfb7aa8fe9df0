package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/emsdesk/internal/client/clienttest"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func intp(v int) *int { return &v }

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}

// backend serves the endpoints an ADMIN session touches on its way in.
func backend(t *testing.T) *clienttest.Backend {
	t.Helper()
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !clienttest.Decode(t, r, &req) {
			return
		}
		switch {
		case req.Username == "admin" && req.Password == "secret123":
			clienttest.JSON(w, http.StatusOK, clienttest.Admin())
		case req.Username == "root" && req.Password == "secret123":
			clienttest.JSON(w, http.StatusOK, clienttest.Root())
		default:
			clienttest.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
		}
	})
	b.Router.Post("/api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b.Router.Get("/api/employees", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, models.Page[models.Employee]{
			Content:       []models.Employee{{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@acme.test"}},
			TotalElements: 1,
			TotalPages:    1,
		})
	})
	b.Router.Get("/api/notifications/unread-count", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, models.UnreadCount{Count: 2})
	})
	b.Router.Get("/api/organizations", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Organization{{UUID: "org-acme", Name: "Acme", Active: true}})
	})
	b.Router.Get("/api/documents", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Document{
			{ID: 1, EmployeeID: 1, DocumentType: "PASSPORT", DocumentNumber: "P1", DaysUntilExpiry: intp(-1)},
			{ID: 2, EmployeeID: 1, DocumentType: "VISA", DaysUntilExpiry: intp(0)},
			{ID: 3, EmployeeID: 1, DocumentType: "BRP", DaysUntilExpiry: intp(45)},
			{ID: 4, EmployeeID: 1, DocumentType: "ID"},
		})
	})
	return b
}

func runApp(t *testing.T, b *clienttest.Backend, input string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	cfg := b.Config(t)
	db := clienttest.OpenDB(t, cfg.DBPath)
	app := NewApp(cfg, db, logging.Discard(), strings.NewReader(input), &out)
	require.NoError(t, app.Run(context.Background()))
	return app, out.String()
}

func TestApp_LoginValidReachesProtectedRoute(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)

	app, out := runApp(t, b, "login admin\nemployees\nexit\n")

	assert.Contains(t, out, "Welcome, admin (ADMIN)")
	assert.Contains(t, out, "Ada Lovelace")
	assert.NotContains(t, out, "Error:")
	assert.Equal(t, session.StateAuthenticated, app.client.Session().State())
	assert.Equal(t, navigation.RouteEmployees, app.currentRoute())
	assert.Contains(t, out, "Bye!")
}

func TestApp_LoginInvalidStaysAnonymous(t *testing.T) {
	stubPassword(t, "wrong")
	b := backend(t)

	app, out := runApp(t, b, "login admin\nemployees\nexit\n")

	assert.Contains(t, out, "Error: Invalid username or password")
	assert.Contains(t, out, "Error: "+navigation.ErrNotAuthenticated.Error())
	assert.Equal(t, session.StateAnonymous, app.client.Session().State())
}

func TestApp_RootLandsOnOrganizations(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)

	app, out := runApp(t, b, "login root\nemployees\nsmtp\nexit\n")

	assert.Contains(t, out, "Organizations: 1 (1 active)")
	assert.Contains(t, out, "Error: "+navigation.ErrForbiddenRoute.Error())
	assert.Equal(t, navigation.RouteEmployees, app.currentRoute())
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)

	var out bytes.Buffer
	cfg := b.Config(t)
	db := clienttest.OpenDB(t, cfg.DBPath)

	first := NewApp(cfg, db, logging.Discard(), strings.NewReader("login admin\nexit\n"), &out)
	require.NoError(t, first.Run(context.Background()))

	out.Reset()
	second := NewApp(cfg, db, logging.Discard(), strings.NewReader("logout\nemployees\nexit\n"), &out)
	require.NoError(t, second.Run(context.Background()))

	assert.Contains(t, out.String(), "Signed in as admin")
	assert.Contains(t, out.String(), "Signed out")
	assert.Contains(t, out.String(), "Error: "+navigation.ErrNotAuthenticated.Error())
	assert.False(t, second.client.Session().IsLoggedIn())
}

func TestApp_UnauthorizedResponseSignsOut(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	b.Router.Get("/api/departments", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Session expired"})
	})

	app, out := runApp(t, b, "login admin\ndepartments\nemployees\nexit\n")

	assert.Contains(t, out, "Error: Your session has expired, please log in again")
	assert.NotContains(t, out, "Session expired")
	assert.Contains(t, out, "Error: "+navigation.ErrNotAuthenticated.Error())
	assert.False(t, app.client.Session().IsLoggedIn())
}

func TestApp_EmptyUnauthorizedResponseAsksToLogIn(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	b.Router.Get("/api/departments", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	app, out := runApp(t, b, "login admin\ndepartments\nexit\n")

	assert.Contains(t, out, "Error: Your session has expired, please log in again")
	assert.NotContains(t, out, "An unexpected error occurred")
	assert.False(t, app.client.Session().IsLoggedIn())
}

func TestApp_DocumentFiltersAndReport(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	report := filepath.Join(t.TempDir(), "expiring.xlsx")

	_, out := runApp(t, b, "login admin\ndocs expiring30\nreport "+report+"\nexit\n")

	assert.Contains(t, out, "Expires in 0 days")
	assert.NotContains(t, out, "PASSPORT")
	assert.Contains(t, out, "Wrote 1 document(s)")

	f, err := excelize.OpenFile(report)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Documents")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "VISA", rows[1][1])
}

func TestApp_UploadWarnsOnDuplicate(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	var uploaded atomic.Bool
	b.Router.Get("/api/documents/employee/1", func(w http.ResponseWriter, _ *http.Request) {
		docs := []models.Document{{ID: 7, EmployeeID: 1, DocumentType: "PASSPORT", DocumentNumber: "P1"}}
		if uploaded.Load() {
			docs = append(docs, models.Document{ID: 8, EmployeeID: 1, DocumentType: "PASSPORT", DocumentNumber: "P1"})
		}
		clienttest.JSON(w, http.StatusOK, docs)
	})
	b.Router.Post("/api/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		uploaded.Store(true)
		clienttest.JSON(w, http.StatusCreated, models.Document{
			ID:              8,
			EmployeeID:      1,
			DocumentType:    r.FormValue("documentType"),
			DocumentNumber:  r.FormValue("documentNumber"),
			DaysUntilExpiry: intp(400),
		})
	})

	file := filepath.Join(t.TempDir(), "passport.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF"), 0o600))

	input := strings.Join([]string{"login admin", "doc-upload", "1", "PASSPORT", "P1", "", "2030-01-01", file, "exit", ""}, "\n")
	_, out := runApp(t, b, input)

	uploadedAt := strings.Index(out, "Uploaded PASSPORT as #8 (Valid)")
	warnedAt := strings.Index(out, "Warning: PASSPORT P1 is already on file as #7")
	require.NotEqual(t, -1, uploadedAt)
	require.NotEqual(t, -1, warnedAt)
	assert.Less(t, uploadedAt, warnedAt)
	assert.NotContains(t, out, "already on file as #8")
}

func TestApp_RejectedUploadDoesNotWarn(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	b.Router.Get("/api/documents/employee/1", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Document{{ID: 7, EmployeeID: 1, DocumentType: "PASSPORT", DocumentNumber: "P1"}})
	})

	file := filepath.Join(t.TempDir(), "passport.exe")
	require.NoError(t, os.WriteFile(file, []byte("MZ"), 0o600))

	input := strings.Join([]string{"login admin", "doc-upload", "1", "PASSPORT", "P1", "", "2030-01-01", file, "exit", ""}, "\n")
	_, out := runApp(t, b, input)

	assert.Contains(t, out, "Error:")
	assert.NotContains(t, out, "Warning:")
	assert.NotContains(t, out, "Uploaded")
	for _, r := range b.Requests() {
		assert.NotEqual(t, "/api/documents/employee/1", r.URL.Path)
	}
}

func TestApp_HelpDependsOnSession(t *testing.T) {
	b := backend(t)
	_, out := runApp(t, b, "help\nexit\n")

	assert.Contains(t, out, "login [username]")
	assert.NotContains(t, out, "employees")
}

func TestApp_PromptShowsUserAndRoute(t *testing.T) {
	stubPassword(t, "secret123")
	b := backend(t)
	_, out := runApp(t, b, "login admin\nexit\n")

	assert.Contains(t, out, "ems> ")
	assert.Contains(t, out, "ems (admin @ employees)")
}

func TestApp_MarkReadLogsFailedBadgeRefresh(t *testing.T) {
	stubPassword(t, "secret123")
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, clienttest.Admin())
	})
	b.Router.Get("/api/employees", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, models.Page[models.Employee]{})
	})
	b.Router.Put("/api/notifications/5/read", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b.Router.Get("/api/notifications/unread-count", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusInternalServerError, map[string]string{"message": "count unavailable"})
	})

	core, logs := observer.New(zapcore.WarnLevel)
	cfg := b.Config(t)
	var out bytes.Buffer
	app := NewApp(cfg, clienttest.OpenDB(t, cfg.DBPath), logging.NewZapLogger(zap.New(core)),
		strings.NewReader("login admin\nread 5\nexit\n"), &out)
	require.NoError(t, app.Run(context.Background()))

	assert.NotContains(t, out.String(), "count unavailable")
	entries := logs.FilterMessage("unread badge refresh failed").All()
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].ContextMap()["error"], "count unavailable")
}
