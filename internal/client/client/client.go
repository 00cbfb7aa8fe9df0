package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/dmitrijs2005/emsdesk/internal/client/config"
	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/client/validation"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
)

// Client is the one HTTP client the services share. It owns the session
// context (token, tenant) through its Transport, so no call site passes
// credentials around.
type Client struct {
	cfg  *config.Config
	http *http.Client
	sess *session.Store
	log  logging.Logger
}

func New(cfg *config.Config, sess *session.Store, log logging.Logger) *Client {
	return NewWithTransport(cfg, sess, log, nil)
}

// NewWithTransport lets callers swap the underlying round tripper.
func NewWithTransport(cfg *config.Config, sess *session.Store, log logging.Logger, base http.RoundTripper) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: &Transport{Base: base, Session: sess, Log: log},
		},
		sess: sess,
		log:  log,
	}
}

func (c *Client) Config() *config.Config  { return c.cfg }
func (c *Client) Paths() config.Paths     { return c.cfg.Paths }
func (c *Client) Session() *session.Store { return c.sess }
func (c *Client) Logger() logging.Logger  { return c.log }

// URL joins the base URL, the resource path and the query.
func (c *Client) URL(path string, query url.Values) (string, error) {
	u, err := url.JoinPath(c.cfg.APIBaseURL, path)
	if err != nil {
		return "", fmt.Errorf("build url for %q: %w", path, err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// Do sends in as JSON and decodes a JSON response into out. Either may be
// nil. in is validated before anything is sent.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if err := validation.Struct(in); err != nil {
		return validationError(err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// FilePart is the file half of a multipart upload.
type FilePart struct {
	Field  string
	Name   string
	Reader io.Reader
}

// Upload posts a multipart form made of fields and one file.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, file FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}

	field := file.Field
	if field == "" {
		field = "file"
	}
	part, err := w.CreateFormFile(field, filepath.Base(file.Name))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// Blob is a downloaded binary body.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

func (c *Client) Download(ctx context.Context, path string) (*Blob, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	hadSession := c.sess.IsLoggedIn()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errorFromResponse(resp.StatusCode, resp.Header.Get("Content-Type"), data, hadSession)
	}

	blob := &Blob{ContentType: resp.Header.Get("Content-Type"), Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		blob.Name = params["filename"]
	}
	return blob, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := c.URL(path, query)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	hadSession := c.sess.IsLoggedIn()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(req.Context(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := errorFromResponse(resp.StatusCode, resp.Header.Get("Content-Type"), data, hadSession)
		c.log.Debug(req.Context(), "backend error", "status", apiErr.Status, "code", apiErr.Code, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Kind: KindServer, Status: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

func (c *Client) transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &APIError{Kind: KindNetwork, Err: err}
}

func validationError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return &APIError{Kind: KindValidation, Message: verrs.Error(), Err: verrs}
	}
	return &APIError{Kind: KindValidation, Message: err.Error(), Err: err}
}
