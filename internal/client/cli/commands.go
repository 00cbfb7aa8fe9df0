package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
)

var (
	errExit    = errors.New("exit")
	errUnknown = errors.New("unknown command")
	errUsage   = errors.New("usage")
)

type command struct {
	name    string
	aliases []string
	route   navigation.Route
	usage   string
	help    string
	// screen commands move the prompt to their route on success.
	screen bool
	run    func(ctx context.Context, args []string) error
}

func (a *App) add(c *command) {
	if a.commands == nil {
		a.commands = make(map[string]*command)
	}
	a.commands[c.name] = c
	for _, alias := range c.aliases {
		a.commands[alias] = c
	}
	a.order = append(a.order, c)
}

func (a *App) registerCommands() {
	a.add(&command{name: "help", aliases: []string{"?"}, route: navigation.RouteHelp, help: "show available commands", run: a.Help})
	a.add(&command{name: "exit", aliases: []string{"quit"}, route: navigation.RouteExit, help: "leave the program",
		run: func(context.Context, []string) error { return errExit }})

	a.registerAuthCommands()
	a.registerDashboardCommands()
	a.registerEmployeeCommands()
	a.registerDocumentCommands()
	a.registerLeaveCommands()
	a.registerAttendanceCommands()
	a.registerRotaCommands()
	a.registerNotificationCommands()
	a.registerAdminCommands()
}

// Execute runs one REPL command after the route guard has admitted it.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	c, ok := a.commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknown, name)
	}
	if err := a.guard.Check(c.route); err != nil {
		return err
	}

	if err := c.run(ctx, args); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("usage: %s %s", c.name, c.usage)
		}
		return err
	}

	if c.screen {
		a.setRoute(c.route)
	}
	return nil
}

// Help lists the commands the current session may run.
func (a *App) Help(context.Context, []string) error {
	a.println("Available commands:")
	for _, c := range a.order {
		if a.guard.Check(c.route) != nil {
			continue
		}
		name := c.name
		if c.usage != "" {
			name += " " + c.usage
		}
		a.printf("  %-36s %s\n", name, c.help)
	}
	return nil
}

// land opens the screen chosen for the given roles.
func (a *App) land(ctx context.Context, roles []string) {
	target := navigation.Redirect(navigation.ResolveLanding(roles), roles)
	if err := a.open(ctx, target); err != nil {
		a.printf("Error: %s\n", userMessage(err))
	}
}

// open renders the screen for r, following redirects.
func (a *App) open(ctx context.Context, r navigation.Route) error {
	sess, _ := a.client.Session().Current()
	r = navigation.Redirect(r, sess.User.Roles)

	if err := a.guard.Check(r); err != nil {
		return err
	}

	var err error
	switch r {
	case navigation.RouteRootDashboard:
		err = a.rootDashboard(ctx)
	case navigation.RouteDashboard:
		err = a.dashboard(ctx)
	case navigation.RouteEmployees:
		err = a.listEmployees(ctx, nil)
	default:
		return fmt.Errorf("no screen for %s", r)
	}
	if err != nil {
		return err
	}
	a.setRoute(r)
	return nil
}
