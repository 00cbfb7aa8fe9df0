package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

type DepartmentService interface {
	List(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, in models.DepartmentInput) (models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	client *client.Client
}

func NewDepartmentService(c *client.Client) DepartmentService {
	return &departmentService{client: c}
}

func (s *departmentService) List(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Departments, nil, nil, &out)
	return out, err
}

func (s *departmentService) Create(ctx context.Context, in models.DepartmentInput) (models.Department, error) {
	var out models.Department
	err := s.client.Do(ctx, http.MethodPost, s.client.Paths().Departments, nil, in, &out)
	return out, err
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Departments, id), nil, nil, nil)
}

// OrganizationService is available to ROOT only; the backend enforces it.
type OrganizationService interface {
	List(ctx context.Context) ([]models.Organization, error)
	Create(ctx context.Context, in models.OrganizationInput) (models.Organization, error)
	SetActive(ctx context.Context, uuid string, active bool) (models.Organization, error)
}

type organizationService struct {
	client *client.Client
}

func NewOrganizationService(c *client.Client) OrganizationService {
	return &organizationService{client: c}
}

func (s *organizationService) List(ctx context.Context) ([]models.Organization, error) {
	var out []models.Organization
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Organizations, nil, nil, &out)
	return out, err
}

func (s *organizationService) Create(ctx context.Context, in models.OrganizationInput) (models.Organization, error) {
	var out models.Organization
	err := s.client.Do(ctx, http.MethodPost, s.client.Paths().Organizations, nil, in, &out)
	return out, err
}

func (s *organizationService) SetActive(ctx context.Context, uuid string, active bool) (models.Organization, error) {
	var out models.Organization
	body := struct {
		Active bool `json:"active"`
	}{Active: active}
	err := s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Organizations, uuid, "status"), nil, body, &out)
	return out, err
}

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	client *client.Client
}

func NewDashboardService(c *client.Client) DashboardService {
	return &dashboardService{client: c}
}

func (s *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Dashboard, "stats"), nil, nil, &out)
	return out, err
}
