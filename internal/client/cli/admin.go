package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/common"
)

func (a *App) registerAdminCommands() {
	a.add(&command{name: "departments", aliases: []string{"depts"}, route: navigation.RouteDepartments, help: "list departments", screen: true, run: a.ListDepartments})
	a.add(&command{name: "department-add", route: navigation.RouteDepartments, help: "create a department", run: a.AddDepartment})
	a.add(&command{name: "department-delete", route: navigation.RouteDepartments, usage: "<id>", help: "delete a department", run: a.DeleteDepartment})

	a.add(&command{name: "orgs", aliases: []string{"organizations"}, route: navigation.RouteOrganizations, help: "list organizations", screen: true, run: a.ListOrganizations})
	a.add(&command{name: "org-add", route: navigation.RouteOrganizations, help: "create an organization", run: a.AddOrganization})
	a.add(&command{name: "org-activate", route: navigation.RouteOrganizations, usage: "<uuid>", help: "activate an organization",
		run: func(ctx context.Context, args []string) error { return a.setOrganizationActive(ctx, args, true) }})
	a.add(&command{name: "org-deactivate", route: navigation.RouteOrganizations, usage: "<uuid>", help: "deactivate an organization",
		run: func(ctx context.Context, args []string) error { return a.setOrganizationActive(ctx, args, false) }})

	a.add(&command{name: "smtp", route: navigation.RouteSettings, help: "show mail server settings", screen: true, run: a.ShowSMTP})
	a.add(&command{name: "smtp-set", route: navigation.RouteSettings, help: "edit mail server settings", run: a.EditSMTP})
	a.add(&command{name: "smtp-test", route: navigation.RouteSettings, usage: "<email>", help: "send a test message", run: a.TestSMTP})
	a.add(&command{name: "alerts", route: navigation.RouteSettings, help: "show document expiry alert rules", screen: true, run: a.ListAlerts})
	a.add(&command{name: "alert-set", route: navigation.RouteSettings, help: "create or change an alert rule", run: a.EditAlert})
}

func (a *App) ListDepartments(ctx context.Context, _ []string) error {
	list, err := a.svc.Departments.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No departments")
		return nil
	}
	t := newTable(a.out, "ID", "NAME", "DESCRIPTION")
	for _, d := range list {
		t.row(idStr(d.ID), d.Name, orDash(d.Description))
	}
	t.Flush()
	return nil
}

func (a *App) AddDepartment(ctx context.Context, _ []string) error {
	var in models.DepartmentInput
	var err error
	if in.Name, err = a.ask("Name"); err != nil {
		return err
	}
	if in.Description, err = a.askOptional("Description"); err != nil {
		return err
	}
	d, err := a.svc.Departments.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created department %s %s\n", idStr(d.ID), d.Name)
	return nil
}

func (a *App) DeleteDepartment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.in, "Delete department "+idStr(id)+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Departments.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}

func (a *App) ListOrganizations(ctx context.Context, _ []string) error {
	list, err := a.svc.Organizations.List(ctx)
	if err != nil {
		return err
	}
	return a.printOrganizations(list)
}

func (a *App) printOrganizations(list []models.Organization) error {
	if len(list) == 0 {
		a.println("No organizations")
		return nil
	}
	t := newTable(a.out, "UUID", "NAME", "EMAIL", "ACTIVE")
	for _, o := range list {
		t.row(o.UUID, o.Name, orDash(o.Email), strconv.FormatBool(o.Active))
	}
	t.Flush()
	return nil
}

func (a *App) AddOrganization(ctx context.Context, _ []string) error {
	var in models.OrganizationInput
	var err error
	if in.Name, err = a.ask("Name"); err != nil {
		return err
	}
	if in.Email, err = a.ask("Contact email"); err != nil {
		return err
	}
	if in.AdminEmail, err = a.ask("Administrator email"); err != nil {
		return err
	}
	o, err := a.svc.Organizations.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created organization %s (%s)\n", o.Name, o.UUID)
	return nil
}

func (a *App) setOrganizationActive(ctx context.Context, args []string, active bool) error {
	if len(args) != 1 {
		return errUsage
	}
	o, err := a.svc.Organizations.SetActive(ctx, args[0], active)
	if err != nil {
		return err
	}
	state := "inactive"
	if o.Active {
		state = "active"
	}
	a.printf("Organization %s is now %s\n", o.UUID, state)
	return nil
}

func (a *App) ShowSMTP(ctx context.Context, _ []string) error {
	cfg, err := a.svc.SMTP.Get(ctx)
	if err != nil {
		return err
	}
	if cfg.Host == "" {
		a.println("Mail server is not configured")
		return nil
	}
	a.printf("Host:     %s:%d\n", cfg.Host, cfg.Port)
	a.printf("Username: %s\n", orDash(cfg.Username))
	a.printf("From:     %s\n", cfg.FromAddress)
	a.printf("TLS:      %t\n", cfg.UseTLS)
	return nil
}

// EditSMTP keeps the stored password unless a new one is typed.
func (a *App) EditSMTP(ctx context.Context, _ []string) error {
	cfg, err := a.svc.SMTP.Get(ctx)
	if err != nil {
		return err
	}

	if v, err := a.ask(withDefault("Host", cfg.Host)); err != nil {
		return err
	} else if v != "" {
		cfg.Host = v
	}

	port := ""
	if cfg.Port != 0 {
		port = strconv.Itoa(cfg.Port)
	}
	if v, err := a.ask(withDefault("Port", port)); err != nil {
		return err
	} else if v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid port %q", v)
		}
		cfg.Port = n
	}

	if v, err := a.ask(withDefault("Username", cfg.Username)); err != nil {
		return err
	} else if v != "" {
		cfg.Username = v
	}

	pw, err := getPassword("Password (Enter to keep)", a.out)
	if err != nil {
		return err
	}
	cfg.Password = ""
	if len(pw) > 0 {
		cfg.Password = string(pw)
	}
	common.WipeByteArray(pw)

	if v, err := a.ask(withDefault("From address", cfg.FromAddress)); err != nil {
		return err
	} else if v != "" {
		cfg.FromAddress = v
	}

	if cfg.UseTLS, err = GetConfirmation(a.in, "Use TLS?", a.out); err != nil {
		return err
	}

	if _, err := a.svc.SMTP.Save(ctx, cfg); err != nil {
		return err
	}
	a.println("Mail server settings saved")
	return nil
}

func (a *App) TestSMTP(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.svc.SMTP.Test(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Test message sent to %s\n", args[0])
	return nil
}

func (a *App) ListAlerts(ctx context.Context, _ []string) error {
	list, err := a.svc.Alerts.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No alert rules")
		return nil
	}
	t := newTable(a.out, "DOCUMENT TYPE", "DAYS BEFORE", "ENABLED", "RECIPIENTS")
	for _, c := range list {
		days := make([]string, 0, len(c.DaysBefore))
		for _, d := range c.DaysBefore {
			days = append(days, strconv.Itoa(d))
		}
		t.row(c.DocumentType, strings.Join(days, ","), strconv.FormatBool(c.Enabled), orDash(strings.Join(c.Recipients, ",")))
	}
	t.Flush()
	return nil
}

func (a *App) EditAlert(ctx context.Context, _ []string) error {
	var cfg models.AlertConfig
	var err error

	if cfg.DocumentType, err = a.ask("Document type"); err != nil {
		return err
	}
	cfg.DocumentType = strings.ToUpper(cfg.DocumentType)

	items, err := GetList(a.in, "Days before expiry", a.out)
	if err != nil {
		return err
	}
	if cfg.DaysBefore, err = parseInts(items); err != nil {
		return err
	}

	if cfg.Recipients, err = GetList(a.in, "Extra recipients", a.out); err != nil {
		return err
	}
	if cfg.Enabled, err = GetConfirmation(a.in, "Enabled?", a.out); err != nil {
		return err
	}

	saved, err := a.svc.Alerts.Save(ctx, cfg)
	if err != nil {
		return err
	}
	a.printf("Alert rule for %s saved\n", saved.DocumentType)
	return nil
}
