package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/common"
)

func (a *App) registerAuthCommands() {
	a.add(&command{name: "login", route: navigation.RouteLogin, usage: "[username]", help: "sign in", run: a.Login})
	a.add(&command{name: "logout", route: navigation.RouteProfile, help: "sign out and forget the saved session", run: a.Logout})
	a.add(&command{name: "whoami", aliases: []string{"profile"}, route: navigation.RouteProfile, help: "show the signed-in user", run: a.WhoAmI})
	a.add(&command{name: "passwd", route: navigation.RouteProfile, help: "change your password", run: a.ChangePassword})
}

// Login prompts for credentials (the username may be given as an argument)
// and opens the landing screen for the user's roles. The password is wiped
// by the auth service once the request is built.
func (a *App) Login(ctx context.Context, args []string) error {
	if sess, ok := a.client.Session().Current(); ok {
		a.printf("Already signed in as %s, use logout first\n", sess.User.Username)
		return nil
	}

	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = a.ask("Username"); err != nil {
			return err
		}
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.svc.Auth.Login(ctx, username, password)
	if err != nil {
		a.log.Info(ctx, "login failed", "user", username, "error", err)
		return err
	}

	a.printf("Welcome, %s (%s)\n", sess.User.Username, strings.Join(sess.User.Roles, ", "))
	a.land(ctx, sess.User.Roles)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	a.setRoute("")
	a.setLastDocs(nil)
	if err := a.preview.Close(); err != nil {
		a.log.Warn(ctx, "failed to remove preview", "error", err)
	}
	a.println("Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	u, err := a.svc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	a.printf("User:         %s\n", u.Username)
	a.printf("Email:        %s\n", u.Email)
	a.printf("Roles:        %s\n", strings.Join(u.Roles, ", "))
	if u.OrganizationUUID != "" {
		a.printf("Organization: %s\n", u.OrganizationUUID)
	}
	if u.EmployeeID != nil {
		a.printf("Employee:     #%d\n", *u.EmployeeID)
	}
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(next) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}

	if err := a.svc.Auth.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	a.println("Password changed")
	return nil
}
