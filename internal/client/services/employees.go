package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

const DefaultPageSize = 20

type EmployeeService interface {
	List(ctx context.Context, page, size int) (models.Page[models.Employee], error)
	Get(ctx context.Context, id int64) (models.Employee, error)
	Create(ctx context.Context, in models.EmployeeInput) (models.Employee, error)
	Update(ctx context.Context, id int64, in models.EmployeeInput) (models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	client *client.Client
}

func NewEmployeeService(c *client.Client) EmployeeService {
	return &employeeService{client: c}
}

// List returns one zero-based page. Non-positive sizes use DefaultPageSize.
func (s *employeeService) List(ctx context.Context, page, size int) (models.Page[models.Employee], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out models.Page[models.Employee]
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Employees, q, nil, &out)
	return out, err
}

func (s *employeeService) Get(ctx context.Context, id int64) (models.Employee, error) {
	var out models.Employee
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Employees, id), nil, nil, &out)
	return out, err
}

func (s *employeeService) Create(ctx context.Context, in models.EmployeeInput) (models.Employee, error) {
	var out models.Employee
	err := s.client.Do(ctx, http.MethodPost, s.client.Paths().Employees, nil, in, &out)
	return out, err
}

func (s *employeeService) Update(ctx context.Context, id int64, in models.EmployeeInput) (models.Employee, error) {
	var out models.Employee
	err := s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Employees, id), nil, in, &out)
	return out, err
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Employees, id), nil, nil, nil)
}
