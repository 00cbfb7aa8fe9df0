package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

type AttendanceService interface {
	CheckIn(ctx context.Context) (models.AttendanceRecord, error)
	CheckOut(ctx context.Context) (models.AttendanceRecord, error)
	History(ctx context.Context, employeeID int64, from, to string) ([]models.AttendanceRecord, error)
	Today(ctx context.Context) ([]models.AttendanceRecord, error)
}

type attendanceService struct {
	client *client.Client
}

func NewAttendanceService(c *client.Client) AttendanceService {
	return &attendanceService{client: c}
}

// CheckIn and CheckOut act on the employee linked to the current user.
func (s *attendanceService) CheckIn(ctx context.Context) (models.AttendanceRecord, error) {
	return s.punch(ctx, "check-in")
}

func (s *attendanceService) CheckOut(ctx context.Context) (models.AttendanceRecord, error) {
	return s.punch(ctx, "check-out")
}

func (s *attendanceService) punch(ctx context.Context, action string) (models.AttendanceRecord, error) {
	sess, ok := s.client.Session().Current()
	if ok && sess.User.EmployeeID == nil {
		return models.AttendanceRecord{}, ErrNotLinked
	}
	var out models.AttendanceRecord
	err := s.client.Do(ctx, http.MethodPost, resource(s.client.Paths().Attendance, action), nil, nil, &out)
	return out, err
}

// History lists one employee's records; from and to are optional
// YYYY-MM-DD bounds.
func (s *attendanceService) History(ctx context.Context, employeeID int64, from, to string) ([]models.AttendanceRecord, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	var out []models.AttendanceRecord
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Attendance, "employee", employeeID), q, nil, &out)
	return out, err
}

func (s *attendanceService) Today(ctx context.Context) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Attendance, "today"), nil, nil, &out)
	return out, err
}
