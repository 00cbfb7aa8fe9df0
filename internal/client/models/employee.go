package models

type Employee struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Department   string `json:"departmentName,omitempty"`
	Position     string `json:"position,omitempty"`
	HireDate     string `json:"hireDate,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}

type EmployeeInput struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,e164"`
	DepartmentID *int64 `json:"departmentId,omitempty" validate:"omitempty,gt=0"`
	Position     string `json:"position,omitempty" validate:"max=100"`
	HireDate     string `json:"hireDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Page is the paged list envelope returned by collection endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages
}
