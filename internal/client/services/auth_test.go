package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/clienttest"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginBackend(t *testing.T) *clienttest.Backend {
	t.Helper()
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !clienttest.Decode(t, r, &req) {
			return
		}
		if req.Username != "admin" || req.Password != "secret123" {
			clienttest.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid username or password"})
			return
		}
		clienttest.JSON(w, http.StatusOK, clienttest.Admin())
	})
	b.Router.Post("/api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	b.Router.Get("/api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, clienttest.Admin().User)
	})
	return b
}

func TestAuthService_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	b := loginBackend(t)
	c := b.NewClient(t)
	svc := NewAuthService(c)

	password := []byte("secret123")
	sess, err := svc.Login(ctx, "admin", password)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", sess.Token)
	assert.Equal(t, make([]byte, len(password)), password, "password must be wiped")

	assert.Equal(t, session.StateAuthenticated, c.Session().State())

	u, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "Bearer admin-token", b.Last().Header.Get(common.AuthorizationHeaderName))
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	b := loginBackend(t)
	c := b.NewClient(t)

	_, err := NewAuthService(c).Login(context.Background(), "admin", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Invalid username or password", client.UserMessage(err))
	assert.Equal(t, session.StateAnonymous, c.Session().State())
}

func TestAuthService_LoginMissingFieldsNeverSent(t *testing.T) {
	b := loginBackend(t)
	c := b.NewClient(t)

	_, err := NewAuthService(c).Login(context.Background(), "", []byte(""))
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Empty(t, b.Requests())
}

func TestAuthService_LoginCorruptUser(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		sess := clienttest.Admin()
		sess.User.OrganizationUUID = ""
		clienttest.JSON(w, http.StatusOK, sess)
	})
	c := b.NewClient(t)

	_, err := NewAuthService(c).Login(context.Background(), "admin", []byte("secret123"))
	require.ErrorIs(t, err, session.ErrCorruptSession)
	assert.False(t, c.Session().IsLoggedIn())
}

func TestAuthService_LogoutClearsEvenWhenBackendFails(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := b.NewClientAs(t, clienttest.Admin())

	require.NoError(t, NewAuthService(c).Logout(context.Background()))
	assert.False(t, c.Session().IsLoggedIn())
}

func TestAuthService_ChangePassword(t *testing.T) {
	b := clienttest.NewBackend(t)
	var got models.ChangePasswordRequest
	b.Router.Post("/api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		clienttest.Decode(t, r, &got)
		w.WriteHeader(http.StatusNoContent)
	})
	c := b.NewClientAs(t, clienttest.Admin())
	svc := NewAuthService(c)

	require.NoError(t, svc.ChangePassword(context.Background(), []byte("oldpass12"), []byte("newpass12")))
	assert.Equal(t, models.ChangePasswordRequest{CurrentPassword: "oldpass12", NewPassword: "newpass12"}, got)

	err := svc.ChangePassword(context.Background(), []byte("samepass1"), []byte("samepass1"))
	assert.ErrorIs(t, err, client.ErrValidation)
}
