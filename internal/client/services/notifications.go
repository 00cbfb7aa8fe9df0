package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
}

type notificationService struct {
	client *client.Client
}

func NewNotificationService(c *client.Client) NotificationService {
	return &notificationService{client: c}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Notifications, nil, nil, &out)
	return out, err
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	var out models.UnreadCount
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Notifications, "unread-count"), nil, nil, &out)
	return out.Count, err
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Notifications, id, "read"), nil, nil, nil)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.client.Do(ctx, http.MethodPut, resource(s.client.Paths().Notifications, "read-all"), nil, nil, nil)
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Notifications, id), nil, nil, nil)
}
