package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
)

func (a *App) registerAttendanceCommands() {
	a.add(&command{name: "checkin", route: navigation.RouteAttendance, help: "record your arrival", run: a.CheckIn})
	a.add(&command{name: "checkout", route: navigation.RouteAttendance, help: "record your departure", run: a.CheckOut})
	a.add(&command{name: "attendance", route: navigation.RouteAttendance, usage: "[employee-id] [from] [to]", help: "attendance history", screen: true, run: a.AttendanceHistory})
	a.add(&command{name: "attendance-today", route: navigation.RouteAttendance, help: "today's attendance", run: a.AttendanceToday})
}

func (a *App) CheckIn(ctx context.Context, _ []string) error {
	r, err := a.svc.Attendance.CheckIn(ctx)
	if err != nil {
		return err
	}
	a.printf("Checked in at %s\n", r.CheckIn)
	return nil
}

func (a *App) CheckOut(ctx context.Context, _ []string) error {
	r, err := a.svc.Attendance.CheckOut(ctx)
	if err != nil {
		return err
	}
	a.printf("Checked out at %s\n", r.CheckOut)
	if r.HoursWorked != nil {
		a.printf("Hours worked: %.2f\n", *r.HoursWorked)
	}
	return nil
}

// AttendanceHistory defaults to the signed-in user's employee record.
func (a *App) AttendanceHistory(ctx context.Context, args []string) error {
	var employeeID int64
	if len(args) > 0 {
		id, err := parseID(args[0])
		if err != nil {
			return errUsage
		}
		employeeID = id
		args = args[1:]
	} else if sess, ok := a.client.Session().Current(); ok && sess.User.EmployeeID != nil {
		employeeID = *sess.User.EmployeeID
	}
	if employeeID == 0 {
		return errUsage
	}

	var from, to string
	if len(args) > 0 {
		from = args[0]
	}
	if len(args) > 1 {
		to = args[1]
	}

	list, err := a.svc.Attendance.History(ctx, employeeID, from, to)
	if err != nil {
		return err
	}
	a.printAttendance(list)
	return nil
}

func (a *App) AttendanceToday(ctx context.Context, _ []string) error {
	list, err := a.svc.Attendance.Today(ctx)
	if err != nil {
		return err
	}
	a.printAttendance(list)
	return nil
}

func (a *App) printAttendance(list []models.AttendanceRecord) {
	if len(list) == 0 {
		a.println("No attendance records")
		return
	}
	t := newTable(a.out, "DATE", "EMPLOYEE", "IN", "OUT", "HOURS")
	for _, r := range list {
		employee := r.EmployeeName
		if employee == "" {
			employee = idStr(r.EmployeeID)
		}
		hours := "-"
		if r.HoursWorked != nil {
			hours = fmt.Sprintf("%.2f", *r.HoursWorked)
		}
		t.row(r.Date, employee, orDash(r.CheckIn), orDash(r.CheckOut), hours)
	}
	t.Flush()
}
