package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer from the notes API. It matches
// entity.ErrNoteNotFound for 404 and entity.ErrValidation for 400.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notes api: %d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case entity.ErrNoteNotFound:
		return e.Status == http.StatusNotFound
	case entity.ErrValidation:
		return e.Status == http.StatusBadRequest
	}
	return false
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New builds a client for the API rooted at baseURL, e.g.
// http://localhost:5000/api.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]v1.Note, error) {
	var notes []v1.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes", nil, nil, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (c *Client) SearchNotes(ctx context.Context, query string) ([]v1.Note, error) {
	var notes []v1.Note
	q := url.Values{"q": {query}}
	if err := c.doJSON(ctx, http.MethodGet, "/notes/search", q, nil, &notes); err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (v1.Note, error) {
	var note v1.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, nil, &note); err != nil {
		return v1.Note{}, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, fields v1.NoteFields) (v1.Note, error) {
	var note v1.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes", nil, fields, &note); err != nil {
		return v1.Note{}, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, fields v1.NoteFields) (v1.Note, error) {
	var note v1.Note
	if err := c.doJSON(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), nil, fields, &note); err != nil {
		return v1.Note{}, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	var msg v1.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil, &msg); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// UploadFile is one file of an upload batch.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Upload sends the batch to the merge endpoint. The server stores nothing;
// callers persist the result with UpdateNote.
func (c *Client) Upload(ctx context.Context, files []UploadFile) (v1.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.Name))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}

		part, err := mw.CreatePart(h)
		if err != nil {
			return v1.UploadResponse{}, fmt.Errorf("upload: create part: %v", err)
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return v1.UploadResponse{}, fmt.Errorf("upload: read %s: %v", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return v1.UploadResponse{}, fmt.Errorf("upload: close form: %v", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/notes/upload", nil, &buf)
	if err != nil {
		return v1.UploadResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var res v1.UploadResponse
	if err := c.do(req, &res); err != nil {
		return v1.UploadResponse{}, fmt.Errorf("upload: %w", err)
	}
	return res, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	// path is already escaped; JoinPath keeps escaped separators intact.
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

		var msg v1.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %v", err)
	}

	return nil
}
