package models

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/validation"
	"github.com/dmitrijs2005/emsdesk/internal/common"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// ErrLeaveLocked is returned when editing or deleting an approved leave.
var ErrLeaveLocked = errors.New("approved leave requests cannot be changed")

type Leave struct {
	ID           int64       `json:"id"`
	EmployeeID   int64       `json:"employeeId"`
	EmployeeName string      `json:"employeeName,omitempty"`
	LeaveType    string      `json:"leaveType"`
	StartDate    string      `json:"startDate"`
	EndDate      string      `json:"endDate"`
	Status       LeaveStatus `json:"status"`
	Reason       string      `json:"reason,omitempty"`
	Remarks      string      `json:"remarks,omitempty"`
}

// Editable is false once the leave has been approved.
func (l Leave) Editable() bool {
	return l.Status != LeaveApproved
}

type LeaveRequest struct {
	EmployeeID int64  `json:"employeeId" validate:"required,gt=0"`
	LeaveType  string `json:"leaveType" validate:"required,oneof=ANNUAL SICK CASUAL MATERNITY PATERNITY UNPAID"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason,omitempty" validate:"max=500"`
}

// EndsBeforeStart reports a request whose end date precedes its start date.
// Malformed dates are left to the tag validation.
func (r LeaveRequest) EndsBeforeStart() bool {
	start, err := time.Parse(common.DateLayout, r.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(common.DateLayout, r.EndDate)
	if err != nil {
		return false
	}
	return end.Before(start)
}

// Check rejects a date range that runs backwards.
func (r LeaveRequest) Check() validation.Errors {
	if r.EndsBeforeStart() {
		return validation.Errors{{Field: "endDate", Tag: "after", Message: "End Date must not be before Start Date"}}
	}
	return nil
}

type LeaveDecision struct {
	Remarks string `json:"remarks,omitempty" validate:"max=500"`
}
