// Package navigation decides where a user lands after login and which
// routes (REPL command groups) the current session may open.
package navigation

import (
	"errors"
	"slices"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

type Route string

const (
	RouteLogin         Route = "login"
	RouteHelp          Route = "help"
	RouteExit          Route = "exit"
	RouteRootDashboard Route = "root-dashboard"
	RouteDashboard     Route = "dashboard"
	RouteEmployees     Route = "employees"
	RouteDocuments     Route = "documents"
	RouteLeaves        Route = "leaves"
	RouteMyLeaves      Route = "my-leaves"
	RouteAttendance    Route = "attendance"
	RouteRotas         Route = "rotas"
	RouteNotifications Route = "notifications"
	RouteSearch        Route = "search"
	RouteDepartments   Route = "departments"
	RouteOrganizations Route = "organizations"
	RouteSettings      Route = "settings"
	RouteProfile       Route = "profile"
	RouteReports       Route = "reports"
)

var (
	ErrNotAuthenticated = errors.New("please log in first")
	ErrForbiddenRoute   = errors.New("you do not have access to this page")
)

// ResolveLanding picks the first screen after login from the user's roles.
// ROOT wins over SUPER_ADMIN, which wins over ADMIN.
func ResolveLanding(roles []string) Route {
	switch {
	case slices.Contains(roles, models.RoleRoot):
		return RouteRootDashboard
	case slices.Contains(roles, models.RoleSuperAdmin):
		return RouteDashboard
	case slices.Contains(roles, models.RoleAdmin):
		return RouteDashboard
	default:
		return RouteEmployees
	}
}

// Redirect applies the per-route redirects: an ADMIN without SUPER_ADMIN
// opening the dashboard is sent to the employee list.
func Redirect(r Route, roles []string) Route {
	if r == RouteDashboard &&
		slices.Contains(roles, models.RoleAdmin) &&
		!slices.Contains(roles, models.RoleSuperAdmin) &&
		!slices.Contains(roles, models.RoleRoot) {
		return RouteEmployees
	}
	return r
}

// Access describes who may open a route. An empty Roles list admits any
// authenticated user.
type Access struct {
	RequiresAuth bool
	Roles        []string
}

var (
	admins = []string{models.RoleRoot, models.RoleSuperAdmin, models.RoleAdmin}
	tenant = []string{models.RoleSuperAdmin, models.RoleAdmin, models.RoleUser}
)

var table = map[Route]Access{
	RouteLogin:         {},
	RouteHelp:          {},
	RouteExit:          {},
	RouteRootDashboard: {RequiresAuth: true, Roles: []string{models.RoleRoot}},
	RouteOrganizations: {RequiresAuth: true, Roles: []string{models.RoleRoot}},
	RouteDashboard:     {RequiresAuth: true, Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	RouteEmployees:     {RequiresAuth: true},
	RouteDocuments:     {RequiresAuth: true},
	RouteLeaves:        {RequiresAuth: true, Roles: admins},
	RouteMyLeaves:      {RequiresAuth: true, Roles: tenant},
	RouteAttendance:    {RequiresAuth: true, Roles: tenant},
	RouteRotas:         {RequiresAuth: true},
	RouteNotifications: {RequiresAuth: true},
	RouteSearch:        {RequiresAuth: true},
	RouteDepartments:   {RequiresAuth: true, Roles: admins},
	RouteSettings:      {RequiresAuth: true, Roles: []string{models.RoleSuperAdmin, models.RoleAdmin}},
	RouteProfile:       {RequiresAuth: true},
	RouteReports:       {RequiresAuth: true, Roles: admins},
}

// AccessFor returns the rule for r. Unknown routes require authentication.
func AccessFor(r Route) Access {
	if a, ok := table[r]; ok {
		return a
	}
	return Access{RequiresAuth: true}
}

// SessionSource is the part of the session store the guard reads.
type SessionSource interface {
	Current() (models.Session, bool)
}

type Guard struct {
	sessions SessionSource
}

func NewGuard(s SessionSource) *Guard {
	return &Guard{sessions: s}
}

// Check reports whether the current session may open r.
func (g *Guard) Check(r Route) error {
	a := AccessFor(r)
	if !a.RequiresAuth {
		return nil
	}
	sess, ok := g.sessions.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if len(a.Roles) > 0 && !sess.User.HasAnyRole(a.Roles...) {
		return ErrForbiddenRoute
	}
	return nil
}

// Allowed lists the routes the session may open, in a stable order, for
// help output.
func (g *Guard) Allowed() []Route {
	out := make([]Route, 0, len(table))
	for r := range table {
		if g.Check(r) == nil {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}
