package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
)

func (a *App) registerLeaveCommands() {
	a.add(&command{name: "leaves", route: navigation.RouteLeaves, usage: "[pending|approved|rejected]", help: "leave requests in your organization", screen: true, run: a.ListLeaves})
	a.add(&command{name: "leave-approve", route: navigation.RouteLeaves, usage: "<id>", help: "approve a leave request", run: a.ApproveLeave})
	a.add(&command{name: "leave-reject", route: navigation.RouteLeaves, usage: "<id>", help: "reject a leave request", run: a.RejectLeave})
	a.add(&command{name: "my-leaves", route: navigation.RouteMyLeaves, help: "your leave requests", screen: true, run: a.MyLeaves})
	a.add(&command{name: "leave-apply", route: navigation.RouteMyLeaves, help: "request leave", run: a.ApplyLeave})
	a.add(&command{name: "leave-edit", route: navigation.RouteMyLeaves, usage: "<id>", help: "change a leave request that is not approved", run: a.EditLeave})
	a.add(&command{name: "leave-cancel", route: navigation.RouteMyLeaves, usage: "<id>", help: "withdraw a leave request that is not approved", run: a.CancelLeave})
}

func (a *App) ListLeaves(ctx context.Context, args []string) error {
	var status models.LeaveStatus
	if len(args) > 0 {
		status = models.LeaveStatus(strings.ToUpper(args[0]))
		switch status {
		case models.LeavePending, models.LeaveApproved, models.LeaveRejected:
		default:
			return errUsage
		}
	}

	list, err := a.svc.Leaves.List(ctx, status)
	if err != nil {
		return err
	}
	a.printLeaves(list, true)
	return nil
}

func (a *App) MyLeaves(ctx context.Context, _ []string) error {
	list, err := a.svc.Leaves.ListMine(ctx)
	if err != nil {
		return err
	}
	a.printLeaves(list, false)
	return nil
}

func (a *App) printLeaves(list []models.Leave, withEmployee bool) {
	if len(list) == 0 {
		a.println("No leave requests")
		return
	}

	headers := []string{"ID", "TYPE", "FROM", "TO", "STATUS", "REMARKS"}
	if withEmployee {
		headers = append([]string{"ID", "EMPLOYEE"}, headers[1:]...)
	}
	t := newTable(a.out, headers...)
	for _, l := range list {
		cells := []string{idStr(l.ID), l.LeaveType, l.StartDate, l.EndDate, string(l.Status), orDash(l.Remarks)}
		if withEmployee {
			employee := l.EmployeeName
			if employee == "" {
				employee = idStr(l.EmployeeID)
			}
			cells = append([]string{idStr(l.ID), employee}, cells[1:]...)
		}
		t.row(cells...)
	}
	t.Flush()
}

func (a *App) readLeaveRequest(current models.Leave) (models.LeaveRequest, error) {
	req := models.LeaveRequest{
		EmployeeID: current.EmployeeID,
		LeaveType:  current.LeaveType,
		StartDate:  current.StartDate,
		EndDate:    current.EndDate,
		Reason:     current.Reason,
	}
	if req.EmployeeID == 0 {
		if sess, ok := a.client.Session().Current(); ok && sess.User.EmployeeID != nil {
			req.EmployeeID = *sess.User.EmployeeID
		}
	}

	fields := []struct {
		prompt string
		dst    *string
		upper  bool
	}{
		{"Leave type (ANNUAL, SICK, CASUAL, MATERNITY, PATERNITY, UNPAID)", &req.LeaveType, true},
		{"Start date YYYY-MM-DD", &req.StartDate, false},
		{"End date YYYY-MM-DD", &req.EndDate, false},
	}
	for _, f := range fields {
		v, err := a.ask(withDefault(f.prompt, *f.dst))
		if err != nil {
			return req, err
		}
		if f.upper {
			v = strings.ToUpper(v)
		}
		if v != "" {
			*f.dst = v
		}
	}

	reason, err := GetMultiline(a.in, withDefault("Reason", req.Reason), a.out)
	if err != nil {
		return req, err
	}
	if reason != "" {
		req.Reason = reason
	}
	return req, nil
}

func (a *App) ApplyLeave(ctx context.Context, _ []string) error {
	req, err := a.readLeaveRequest(models.Leave{})
	if err != nil {
		return err
	}
	l, err := a.svc.Leaves.Apply(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Leave request %s submitted (%s)\n", idStr(l.ID), l.Status)
	return nil
}

// EditLeave refuses approved requests before prompting for anything.
func (a *App) EditLeave(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	current, err := a.svc.Leaves.Get(ctx, id)
	if err != nil {
		return err
	}
	if !current.Editable() {
		return models.ErrLeaveLocked
	}

	req, err := a.readLeaveRequest(current)
	if err != nil {
		return err
	}
	l, err := a.svc.Leaves.Update(ctx, id, req)
	if err != nil {
		return err
	}
	a.printf("Leave request %s updated\n", idStr(l.ID))
	return nil
}

func (a *App) CancelLeave(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.svc.Leaves.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Leave request withdrawn")
	return nil
}

func (a *App) ApproveLeave(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	l, err := a.svc.Leaves.Approve(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Leave request %s is %s\n", idStr(l.ID), l.Status)
	return nil
}

func (a *App) RejectLeave(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	remarks, err := GetMultiline(a.in, "Remarks for the employee", a.out)
	if err != nil {
		return err
	}
	l, err := a.svc.Leaves.Reject(ctx, id, remarks)
	if err != nil {
		return err
	}
	a.printf("Leave request %s is %s\n", idStr(l.ID), l.Status)
	return nil
}
