package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/validation"
	"github.com/dmitrijs2005/emsdesk/internal/filex"
)

// Attachment is a local file about to be uploaded.
type Attachment struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type DocumentService interface {
	List(ctx context.Context, employeeID *int64) ([]models.Document, error)
	ListExpiring(ctx context.Context, days int) ([]models.Document, error)
	Upload(ctx context.Context, meta models.DocumentUpload, file Attachment) (models.Document, error)
	Download(ctx context.Context, id int64) (*client.Blob, error)
	Delete(ctx context.Context, id int64) error
}

type documentService struct {
	client *client.Client
}

func NewDocumentService(c *client.Client) DocumentService {
	return &documentService{client: c}
}

// List returns every document in the tenant, or one employee's documents
// when employeeID is set.
func (s *documentService) List(ctx context.Context, employeeID *int64) ([]models.Document, error) {
	path := s.client.Paths().Documents
	if employeeID != nil {
		path = resource(path, "employee", *employeeID)
	}
	var out []models.Document
	err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

func (s *documentService) ListExpiring(ctx context.Context, days int) ([]models.Document, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	var out []models.Document
	err := s.client.Do(ctx, http.MethodGet, resource(s.client.Paths().Documents, "expiring"), q, nil, &out)
	return out, err
}

// Upload checks the file's extension and size and the metadata locally
// before anything is sent.
func (s *documentService) Upload(ctx context.Context, meta models.DocumentUpload, file Attachment) (models.Document, error) {
	cfg := s.client.Config()
	if err := checkAttachment(file, cfg.DocumentExtensions, cfg.MaxUploadBytes); err != nil {
		return models.Document{}, err
	}
	if err := validation.Struct(meta); err != nil {
		return models.Document{}, err
	}

	fields := map[string]string{
		"employeeId":   strconv.FormatInt(meta.EmployeeID, 10),
		"documentType": meta.DocumentType,
	}
	setIf(fields, "documentNumber", meta.DocumentNumber)
	setIf(fields, "issueDate", meta.IssueDate)
	setIf(fields, "expiryDate", meta.ExpiryDate)

	var out models.Document
	err := s.client.Upload(ctx, resource(s.client.Paths().Documents, "upload"), fields,
		client.FilePart{Name: file.Name, Reader: file.Reader}, &out)
	return out, err
}

func (s *documentService) Download(ctx context.Context, id int64) (*client.Blob, error) {
	return s.client.Download(ctx, resource(s.client.Paths().Documents, id, "download"))
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, resource(s.client.Paths().Documents, id), nil, nil, nil)
}

func checkAttachment(file Attachment, exts []string, maxBytes int64) error {
	if !filex.HasExtension(file.Name, exts) {
		return fmt.Errorf("%w: %s (allowed: %v)", ErrFileType, file.Name, exts)
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, file.Size, maxBytes)
	}
	return nil
}

func setIf(m map[string]string, k, v string) {
	if v != "" {
		m[k] = v
	}
}
