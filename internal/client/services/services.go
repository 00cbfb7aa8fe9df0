// Package services wraps each REST resource of the EMS backend in a small
// service. Services hold no state of their own; the session context travels
// inside the shared *client.Client.
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
)

var (
	ErrFileType     = errors.New("file type is not allowed")
	ErrFileTooLarge = errors.New("file is too large")
	ErrNotLinked    = errors.New("your account is not linked to an employee record")
)

// resource joins a configured base path with further segments.
func resource(base string, parts ...any) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, p := range parts {
		b.WriteByte('/')
		switch v := p.(type) {
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case string:
			b.WriteString(strings.Trim(v, "/"))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// Set bundles one instance of every service over the same client.
type Set struct {
	Auth          AuthService
	Employees     EmployeeService
	Leaves        LeaveService
	Documents     DocumentService
	Attendance    AttendanceService
	Rotas         RotaService
	Notifications NotificationService
	Search        SearchService
	SMTP          SMTPService
	Alerts        AlertService
	Departments   DepartmentService
	Organizations OrganizationService
	Dashboard     DashboardService
}

func NewSet(c *client.Client) *Set {
	return &Set{
		Auth:          NewAuthService(c),
		Employees:     NewEmployeeService(c),
		Leaves:        NewLeaveService(c),
		Documents:     NewDocumentService(c),
		Attendance:    NewAttendanceService(c),
		Rotas:         NewRotaService(c),
		Notifications: NewNotificationService(c),
		Search:        NewSearchService(c),
		SMTP:          NewSMTPService(c),
		Alerts:        NewAlertService(c),
		Departments:   NewDepartmentService(c),
		Organizations: NewOrganizationService(c),
		Dashboard:     NewDashboardService(c),
	}
}
