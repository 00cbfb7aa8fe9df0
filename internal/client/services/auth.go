package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a session and make it current.
//   - Logout: tell the backend, then always clear the local session.
//   - CurrentUser: fetch the authenticated user's profile.
//   - ChangePassword: rotate the password of the authenticated user.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (models.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (models.User, error)
	ChangePassword(ctx context.Context, current, next []byte) error
}

type authService struct {
	client *client.Client
}

func NewAuthService(c *client.Client) AuthService {
	return &authService{client: c}
}

// Login wipes password once the request body has been built. On success the
// session store moves to AUTHENTICATED; on any failure it stays ANONYMOUS.
func (a *authService) Login(ctx context.Context, username string, password []byte) (models.Session, error) {
	req := models.LoginRequest{Username: username, Password: string(password)}
	common.WipeByteArray(password)

	var sess models.Session
	if err := a.client.Do(ctx, http.MethodPost, resource(a.client.Paths().Auth, "login"), nil, req, &sess); err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	if err := a.client.Session().Begin(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if a.client.Session().IsLoggedIn() {
		err := a.client.Do(ctx, http.MethodPost, resource(a.client.Paths().Auth, "logout"), nil, nil, nil)
		if err != nil {
			a.client.Logger().Warn(ctx, "backend logout failed", "error", err)
		}
	}
	return a.client.Session().Logout(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	var u models.User
	err := a.client.Do(ctx, http.MethodGet, resource(a.client.Paths().Auth, "me"), nil, nil, &u)
	return u, err
}

func (a *authService) ChangePassword(ctx context.Context, current, next []byte) error {
	req := models.ChangePasswordRequest{CurrentPassword: string(current), NewPassword: string(next)}
	common.WipeByteArray(current)
	common.WipeByteArray(next)

	return a.client.Do(ctx, http.MethodPost, resource(a.client.Paths().Auth, "change-password"), nil, req, nil)
}
