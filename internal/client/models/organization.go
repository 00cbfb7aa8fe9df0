package models

type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DepartmentInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

type Organization struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Active bool   `json:"active"`
}

type OrganizationInput struct {
	Name       string `json:"name" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email"`
	AdminEmail string `json:"adminEmail" validate:"required,email"`
}

type DashboardStats struct {
	TotalEmployees    int `json:"totalEmployees"`
	ActiveEmployees   int `json:"activeEmployees"`
	PendingLeaves     int `json:"pendingLeaves"`
	ExpiringDocuments int `json:"expiringDocuments"`
	ExpiredDocuments  int `json:"expiredDocuments"`
}
