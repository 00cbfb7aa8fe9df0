package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/emsdesk/internal/client/clienttest"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestDocumentService_ListAndExpiring(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.Router.Get("/api/documents", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Document{{ID: 1}, {ID: 2}})
	})
	b.Router.Get("/api/documents/employee/42", func(w http.ResponseWriter, _ *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Document{{ID: 2, EmployeeID: 42}})
	})
	b.Router.Get("/api/documents/expiring", func(w http.ResponseWriter, r *http.Request) {
		clienttest.JSON(w, http.StatusOK, []models.Document{{ID: 3, DaysUntilExpiry: intp(12)}})
	})

	svc := NewDocumentService(b.NewClientAs(t, clienttest.Admin()))
	ctx := context.Background()

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	emp := int64(42)
	mine, err := svc.List(ctx, &emp)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(42), mine[0].EmployeeID)

	exp, err := svc.ListExpiring(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 12, *exp[0].DaysUntilExpiry)
	assert.Equal(t, "30", b.Last().URL.Query().Get("days"))
}

func TestDocumentService_UploadSendsMultipart(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.Router.Post("/api/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "passport scan", string(data))
		clienttest.JSON(w, http.StatusCreated, models.Document{
			ID:             9,
			EmployeeID:     42,
			DocumentType:   r.FormValue("documentType"),
			DocumentNumber: r.FormValue("documentNumber"),
			ExpiryDate:     r.FormValue("expiryDate"),
			FileName:       hdr.Filename,
		})
	})

	svc := NewDocumentService(b.NewClientAs(t, clienttest.Admin()))
	doc, err := svc.Upload(context.Background(),
		models.DocumentUpload{EmployeeID: 42, DocumentType: "PASSPORT", DocumentNumber: "X123", ExpiryDate: "2030-01-01"},
		Attachment{Name: "passport.pdf", Size: 13, Reader: strings.NewReader("passport scan")})
	require.NoError(t, err)
	assert.Equal(t, models.Document{ID: 9, EmployeeID: 42, DocumentType: "PASSPORT", DocumentNumber: "X123", ExpiryDate: "2030-01-01", FileName: "passport.pdf"}, doc)
}

func TestDocumentService_UploadRejectedLocally(t *testing.T) {
	b := clienttest.NewBackend(t)
	c := b.NewClientAs(t, clienttest.Admin())
	c.Config().MaxUploadBytes = 10
	svc := NewDocumentService(c)
	ctx := context.Background()
	meta := models.DocumentUpload{EmployeeID: 42, DocumentType: "PASSPORT"}

	_, err := svc.Upload(ctx, meta, Attachment{Name: "virus.exe", Size: 1, Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrFileType)

	_, err = svc.Upload(ctx, meta, Attachment{Name: "big.pdf", Size: 11, Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Upload(ctx, models.DocumentUpload{}, Attachment{Name: "ok.pdf", Size: 1, Reader: strings.NewReader("x")})
	assert.ErrorContains(t, err, "Employee Id is required")

	assert.Empty(t, b.Requests())
}

func TestDocumentService_DownloadAndDelete(t *testing.T) {
	b := clienttest.NewBackend(t)
	b.Router.Get("/api/documents/5/download", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `inline; filename="visa.png"`)
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})
	b.Router.Delete("/api/documents/5", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	svc := NewDocumentService(b.NewClientAs(t, clienttest.Admin()))
	blob, err := svc.Download(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "visa.png", blob.Name)
	assert.Len(t, blob.Data, 4)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, b.Last().Method)
}
