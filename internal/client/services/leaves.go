package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

// LeaveService covers both the employee's own requests and the admin
// approval queue. Update and Delete refuse approved requests before any
// write is sent.
type LeaveService interface {
	List(ctx context.Context, status models.LeaveStatus) ([]models.Leave, error)
	ListMine(ctx context.Context) ([]models.Leave, error)
	Get(ctx context.Context, id int64) (models.Leave, error)
	Apply(ctx context.Context, req models.LeaveRequest) (models.Leave, error)
	Update(ctx context.Context, id int64, req models.LeaveRequest) (models.Leave, error)
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64) (models.Leave, error)
	Reject(ctx context.Context, id int64, remarks string) (models.Leave, error)
}

type leaveService struct {
	client *client.Client
}

func NewLeaveService(c *client.Client) LeaveService {
	return &leaveService{client: c}
}

// List returns every leave in the tenant; an empty status means all.
func (s *leaveService) List(ctx context.Context, status models.LeaveStatus) ([]models.Leave, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {string(status)}}
	}
	var out []models.Leave
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Leaves, q, nil, &out)
	return out, err
}

func (s *leaveService) ListMine(ctx context.Context) ([]models.Leave, error) {
	var out []models.Leave
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Leaves, "my"), nil, nil, &out)
	return out, err
}

func (s *leaveService) Get(ctx context.Context, id int64) (models.Leave, error) {
	var out models.Leave
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Leaves, id), nil, nil, &out)
	return out, err
}

func (s *leaveService) Apply(ctx context.Context, req models.LeaveRequest) (models.Leave, error) {
	var out models.Leave
	err := s.client.Do(ctx, http.MethodPost, s.client.Paths().Leaves, nil, req, &out)
	return out, err
}

func (s *leaveService) Update(ctx context.Context, id int64, req models.LeaveRequest) (models.Leave, error) {
	if err := s.ensureEditable(ctx, id); err != nil {
		return models.Leave{}, err
	}
	var out models.Leave
	err := s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Leaves, id), nil, req, &out)
	return out, err
}

func (s *leaveService) Delete(ctx context.Context, id int64) error {
	if err := s.ensureEditable(ctx, id); err != nil {
		return err
	}
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Leaves, id), nil, nil, nil)
}

func (s *leaveService) Approve(ctx context.Context, id int64) (models.Leave, error) {
	var out models.Leave
	err := s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Leaves, id, "approve"), nil, nil, &out)
	return out, err
}

func (s *leaveService) Reject(ctx context.Context, id int64, remarks string) (models.Leave, error) {
	var out models.Leave
	err := s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Leaves, id, "reject"), nil,
		models.LeaveDecision{Remarks: remarks}, &out)
	return out, err
}

func (s *leaveService) ensureEditable(ctx context.Context, id int64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !current.Editable() {
		return models.ErrLeaveLocked
	}
	return nil
}
