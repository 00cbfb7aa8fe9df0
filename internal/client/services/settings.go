package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

// SMTPService edits the tenant's outgoing mail settings. Delivery itself is
// the backend's job; Test only asks it to send one message.
type SMTPService interface {
	Get(ctx context.Context) (models.SMTPConfig, error)
	Save(ctx context.Context, cfg models.SMTPConfig) (models.SMTPConfig, error)
	Test(ctx context.Context, recipient string) error
}

type smtpService struct {
	client *client.Client
}

func NewSMTPService(c *client.Client) SMTPService {
	return &smtpService{client: c}
}

func (s *smtpService) Get(ctx context.Context) (models.SMTPConfig, error) {
	var out models.SMTPConfig
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().SMTP, nil, nil, &out)
	return out, err
}

func (s *smtpService) Save(ctx context.Context, cfg models.SMTPConfig) (models.SMTPConfig, error) {
	var out models.SMTPConfig
	err := s.client.Do(ctx, http.MethodPut, s.client.Paths().SMTP, nil, cfg, &out)
	return out, err
}

func (s *smtpService) Test(ctx context.Context, recipient string) error {
	return s.client.Do(ctx, http.MethodPost, resource(s.client.Paths().SMTP, "test"), nil,
		models.SMTPTestRequest{Recipient: recipient}, nil)
}

type AlertService interface {
	List(ctx context.Context) ([]models.AlertConfig, error)
	Save(ctx context.Context, cfg models.AlertConfig) (models.AlertConfig, error)
}

type alertService struct {
	client *client.Client
}

func NewAlertService(c *client.Client) AlertService {
	return &alertService{client: c}
}

func (s *alertService) List(ctx context.Context) ([]models.AlertConfig, error) {
	var out []models.AlertConfig
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Alerts, nil, nil, &out)
	return out, err
}

func (s *alertService) Save(ctx context.Context, cfg models.AlertConfig) (models.AlertConfig, error) {
	var out models.AlertConfig
	err := s.client.Do(ctx, http.MethodPut, s.client.Paths().Alerts, nil, cfg, &out)
	return out, err
}
