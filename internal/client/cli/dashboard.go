package cli

import (
	"context"

	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
)

func (a *App) registerDashboardCommands() {
	a.add(&command{name: "home", route: navigation.RouteProfile, help: "go to your landing screen", run: a.Home})
	a.add(&command{name: "dashboard", route: navigation.RouteDashboard, help: "tenant statistics", run: a.Dashboard})
	a.add(&command{name: "root", route: navigation.RouteRootDashboard, help: "organizations overview", screen: true,
		run: func(ctx context.Context, _ []string) error { return a.rootDashboard(ctx) }})
	a.add(&command{name: "search", aliases: []string{"find"}, route: navigation.RouteSearch, usage: "<query>", help: "search employees and documents", screen: true, run: a.Search})
}

func (a *App) Home(ctx context.Context, _ []string) error {
	sess, _ := a.client.Session().Current()
	a.land(ctx, sess.User.Roles)
	return nil
}

// Dashboard goes through open so that an ADMIN is redirected to employees.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	return a.open(ctx, navigation.RouteDashboard)
}

func (a *App) dashboard(ctx context.Context) error {
	s, err := a.svc.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	a.println("Dashboard")
	a.printf("  Employees:          %d (%d active)\n", s.TotalEmployees, s.ActiveEmployees)
	a.printf("  Pending leaves:     %d\n", s.PendingLeaves)
	a.printf("  Expiring documents: %d\n", s.ExpiringDocuments)
	a.printf("  Expired documents:  %d\n", s.ExpiredDocuments)
	return nil
}

func (a *App) rootDashboard(ctx context.Context) error {
	orgs, err := a.svc.Organizations.List(ctx)
	if err != nil {
		return err
	}
	active := 0
	for _, o := range orgs {
		if o.Active {
			active++
		}
	}
	a.printf("Organizations: %d (%d active)\n", len(orgs), active)
	return a.printOrganizations(orgs)
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	res, err := a.svc.Search.Search(ctx, joinArgs(args))
	if err != nil {
		return err
	}
	if res.Empty() {
		a.println("No results")
		return nil
	}
	if len(res.Employees) > 0 {
		a.println("Employees:")
		a.printEmployees(res.Employees)
	}
	if len(res.Documents) > 0 {
		a.println("Documents:")
		a.printDocuments(res.Documents)
	}
	return nil
}
