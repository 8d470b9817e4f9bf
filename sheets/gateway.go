// Package sheets talks to the spreadsheet-backed endpoint that acts as the
// datastore. The protocol is a single URL taking `path` (sheet name) and
// `action` (read/write/update/delete) query parameters; write actions carry
// the row fields flattened into the query string, reads return
// `{"data": [...]}` with inconsistently cased column keys.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type Gateway struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewGateway(baseURL string, log *zap.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type readResponse struct {
	Data []Row `json:"data"`
}

// Read fetches every row of the named sheet. Malformed responses surface as
// errors; callers decide whether to fall back to an empty list.
func (g *Gateway) Read(ctx context.Context, sheet string) ([]Row, error) {
	params := url.Values{}
	params.Set("path", sheet)
	params.Set("action", "read")

	body, err := g.do(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp readResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}
	return resp.Data, nil
}

// Write appends a row. The backend treats every value as a string cell.
func (g *Gateway) Write(ctx context.Context, sheet string, fields url.Values) error {
	return g.mutate(ctx, sheet, "write", fields)
}

// Update replaces the row whose id column matches fields["id"]. This is an
// instruction to the backend, not a verified conditional write.
func (g *Gateway) Update(ctx context.Context, sheet string, fields url.Values) error {
	return g.mutate(ctx, sheet, "update", fields)
}

func (g *Gateway) Delete(ctx context.Context, sheet, id string) error {
	fields := url.Values{}
	fields.Set("id", id)
	return g.mutate(ctx, sheet, "delete", fields)
}

func (g *Gateway) mutate(ctx context.Context, sheet, action string, fields url.Values) error {
	params := url.Values{}
	params.Set("path", sheet)
	params.Set("action", action)
	for k, vs := range fields {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	_, err := g.do(ctx, params)
	return err
}

func (g *Gateway) do(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := g.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet response: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		g.log.Warn("sheet request failed",
			zap.String("action", params.Get("action")),
			zap.String("sheet", params.Get("path")),
			zap.Int("status", res.StatusCode))
		return nil, fmt.Errorf("sheet request: status %d", res.StatusCode)
	}
	return body, nil
}
