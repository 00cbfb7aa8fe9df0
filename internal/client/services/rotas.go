package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
)

// RotaService manages shift rotas. Parsing an uploaded rota image into
// entries happens on the backend.
type RotaService interface {
	List(ctx context.Context) ([]models.Rota, error)
	Get(ctx context.Context, id int64) (models.Rota, error)
	UploadImage(ctx context.Context, file Attachment) (models.Rota, error)
	Delete(ctx context.Context, id int64) error
}

type rotaService struct {
	client *client.Client
}

func NewRotaService(c *client.Client) RotaService {
	return &rotaService{client: c}
}

func (s *rotaService) List(ctx context.Context) ([]models.Rota, error) {
	var out []models.Rota
	err := s.client.Do(ctx, http.MethodGet, s.client.Paths().Rotas, nil, nil, &out)
	return out, err
}

func (s *rotaService) Get(ctx context.Context, id int64) (models.Rota, error) {
	var out models.Rota
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Rotas, id), nil, nil, &out)
	return out, err
}

func (s *rotaService) UploadImage(ctx context.Context, file Attachment) (models.Rota, error) {
	cfg := s.client.Config()
	if err := checkAttachment(file, cfg.ImageExtensions, cfg.MaxUploadBytes); err != nil {
		return models.Rota{}, err
	}
	var out models.Rota
	err := s.client.Upload(ctx, resource(s.client.Paths().Rotas, "upload"), nil,
		client.FilePart{Name: file.Name, Reader: file.Reader}, &out)
	return out, err
}

func (s *rotaService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Rotas, id), nil, nil, nil)
}
