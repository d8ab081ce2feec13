package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"BIOSECURE/models"
)

var ErrMalformedResponse = errors.New("respons backend tidak valid")

// StatusError dikembalikan kalau backend menjawab dengan status non-2xx.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
}

// Backend adalah client HTTP untuk REST API personnel. Tidak ada retry,
// cache, atau header auth.
type Backend struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Backend {
	return &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (b *Backend) FetchStatistics(ctx context.Context) (models.StatisticsSnapshot, error) {
	var snap models.StatisticsSnapshot
	err := b.do(ctx, http.MethodGet, "/api/statistics/", nil, &snap)
	return snap, err
}

func (b *Backend) ListPersonnel(ctx context.Context) ([]models.Personnel, error) {
	var records []models.Personnel
	if err := b.do(ctx, http.MethodGet, "/api/personnel/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (b *Backend) CreatePersonnel(ctx context.Context, in models.NewPersonnel) (models.Personnel, error) {
	var created models.Personnel
	err := b.do(ctx, http.MethodPost, "/api/personnel/", in, &created)
	return created, err
}

func (b *Backend) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	// Body "null" tidak dianggap data kosong, dashboard harus menampilkan fallback.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: %s %s: empty body", ErrMalformedResponse, method, path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}
