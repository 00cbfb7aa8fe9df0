package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/client/services"
)

func (a *App) registerEmployeeCommands() {
	a.add(&command{name: "employees", aliases: []string{"emps"}, route: navigation.RouteEmployees, usage: "[page]", help: "list employees", screen: true,
		run: func(ctx context.Context, args []string) error { return a.listEmployees(ctx, args) }})
	a.add(&command{name: "employee", route: navigation.RouteEmployees, usage: "<id>", help: "show one employee", run: a.ShowEmployee})
	a.add(&command{name: "employee-add", route: navigation.RouteEmployees, help: "create an employee", run: a.AddEmployee})
	a.add(&command{name: "employee-edit", route: navigation.RouteEmployees, usage: "<id>", help: "edit an employee", run: a.EditEmployee})
	a.add(&command{name: "employee-delete", route: navigation.RouteEmployees, usage: "<id>", help: "delete an employee", run: a.DeleteEmployee})
}

// listEmployees shows one page; the page argument is 1-based.
func (a *App) listEmployees(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errUsage
		}
		page = n - 1
	}

	p, err := a.svc.Employees.List(ctx, page, services.DefaultPageSize)
	if err != nil {
		return err
	}
	if len(p.Content) == 0 {
		a.println("No employees")
		return nil
	}

	a.printEmployees(p.Content)
	a.printf("Page %d of %d, %d employee(s)\n", p.Number+1, max(p.TotalPages, 1), p.TotalElements)
	if p.HasNext() {
		a.printf("Next page: employees %d\n", p.Number+2)
	}
	return nil
}

func (a *App) printEmployees(list []models.Employee) {
	t := newTable(a.out, "ID", "NAME", "EMAIL", "DEPARTMENT", "POSITION", "STATUS")
	for _, e := range list {
		t.row(idStr(e.ID), e.FullName(), e.Email, orDash(e.Department), orDash(e.Position), orDash(e.Status))
	}
	t.Flush()
}

func (a *App) ShowEmployee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	e, err := a.svc.Employees.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Employee %s\n", idStr(e.ID))
	a.printf("  Name:       %s\n", e.FullName())
	a.printf("  Email:      %s\n", e.Email)
	a.printf("  Phone:      %s\n", orDash(e.Phone))
	a.printf("  Department: %s\n", orDash(e.Department))
	a.printf("  Position:   %s\n", orDash(e.Position))
	a.printf("  Hired:      %s\n", orDash(e.HireDate))
	a.printf("  Status:     %s\n", orDash(e.Status))
	return nil
}

func (a *App) readEmployeeInput(current models.Employee) (models.EmployeeInput, error) {
	in := models.EmployeeInput{
		FirstName:    current.FirstName,
		LastName:     current.LastName,
		Email:        current.Email,
		Phone:        current.Phone,
		DepartmentID: current.DepartmentID,
		Position:     current.Position,
		HireDate:     current.HireDate,
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &in.FirstName},
		{"Last name", &in.LastName},
		{"Email", &in.Email},
		{"Phone, international format", &in.Phone},
		{"Position", &in.Position},
		{"Hire date YYYY-MM-DD", &in.HireDate},
	}
	for _, f := range fields {
		v, err := a.ask(withDefault(f.prompt, *f.dst))
		if err != nil {
			return in, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	dep := ""
	if in.DepartmentID != nil {
		dep = strconv.FormatInt(*in.DepartmentID, 10)
	}
	v, err := a.ask(withDefault("Department id", dep))
	if err != nil {
		return in, err
	}
	if v != "" {
		id, err := parseID(v)
		if err != nil {
			return in, err
		}
		in.DepartmentID = &id
	}
	return in, nil
}

func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return prompt + " [" + current + "]"
}

func (a *App) AddEmployee(ctx context.Context, _ []string) error {
	in, err := a.readEmployeeInput(models.Employee{})
	if err != nil {
		return err
	}
	e, err := a.svc.Employees.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created employee %s %s\n", idStr(e.ID), e.FullName())
	return nil
}

func (a *App) EditEmployee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	current, err := a.svc.Employees.Get(ctx, id)
	if err != nil {
		return err
	}
	a.println("Press Enter to keep the current value")
	in, err := a.readEmployeeInput(current)
	if err != nil {
		return err
	}
	e, err := a.svc.Employees.Update(ctx, id, in)
	if err != nil {
		return err
	}
	a.printf("Updated employee %s %s\n", idStr(e.ID), e.FullName())
	return nil
}

func (a *App) DeleteEmployee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.in, "Delete employee "+idStr(id)+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Employees.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}
