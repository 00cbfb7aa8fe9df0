package models

type AttendanceRecord struct {
	ID           int64    `json:"id"`
	EmployeeID   int64    `json:"employeeId"`
	EmployeeName string   `json:"employeeName,omitempty"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"checkIn,omitempty"`
	CheckOut     string   `json:"checkOut,omitempty"`
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
}

// CheckedIn reports an open record: checked in and not yet out.
func (r AttendanceRecord) CheckedIn() bool {
	return r.CheckIn != "" && r.CheckOut == ""
}

type RotaEntry struct {
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	Shift        string `json:"shift"`
}

type Rota struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Entries   []RotaEntry `json:"entries,omitempty"`
}
