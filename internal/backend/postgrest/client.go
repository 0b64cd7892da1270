// Package postgrest implements backend.Backend over a PostgREST-style REST
// endpoint (/rest/v1/<table>) using fasthttp.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Config describes the endpoint and credentials.
type Config struct {
	URL         string
	APIKey      string
	AccessToken string
	Timeout     time.Duration
}

// Client is a backend.Backend speaking PostgREST.
type Client struct {
	cfg    Config
	http   *fasthttp.Client
	logger *zap.Logger
}

var _ backend.Backend = (*Client)(nil)

// New creates a client for cfg.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Client{
		cfg: cfg,
		http: &fasthttp.Client{
			Name:                "bondlyd",
			MaxIdleConnDuration: time.Minute,
		},
		logger: logger,
	}
}

// Query runs a filtered select.
func (c *Client) Query(ctx context.Context, table string, q backend.Query) ([]backend.Row, error) {
	params := append([]param{{"select", "*"}}, encodeQuery(q)...)
	body, err := c.do(ctx, "query", fasthttp.MethodGet, table, params, nil, "")
	if err != nil {
		return nil, err
	}
	var rows []backend.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &backend.Error{Op: "query", Table: table, Message: "decode response: " + err.Error(), Kind: backend.ErrRejected}
	}
	return rows, nil
}

// Insert creates rec and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, rec backend.Row) (backend.Row, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s row: %w", table, err)
	}
	body, err := c.do(ctx, "insert", fasthttp.MethodPost, table, nil, payload, "return=representation")
	if err != nil {
		return nil, err
	}
	var rows []backend.Row
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return nil, &backend.Error{Op: "insert", Table: table, Message: "missing representation", Kind: backend.ErrRejected}
	}
	return rows[0], nil
}

// Update patches every row matching q.
func (c *Client) Update(ctx context.Context, table string, q backend.Query, patch backend.Row) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", table, err)
	}
	_, err = c.do(ctx, "update", fasthttp.MethodPatch, table, encodeQuery(q), payload, "return=minimal")
	return err
}

// Delete removes every row matching q.
func (c *Client) Delete(ctx context.Context, table string, q backend.Query) error {
	_, err := c.do(ctx, "delete", fasthttp.MethodDelete, table, encodeQuery(q), nil, "return=minimal")
	return err
}

func (c *Client) do(ctx context.Context, op, method, table string, params []param, payload []byte, prefer string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.URL + "/rest/v1/" + table)
	args := req.URI().QueryArgs()
	for _, p := range params {
		args.Add(p.key, p.value)
	}
	req.Header.SetMethod(method)
	req.Header.Set("apikey", c.cfg.APIKey)
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}
	req.Header.Set("Accept", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	if payload != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Debug("backend request failed", zap.String("op", op), zap.String("table", table), zap.Error(err))
		return nil, &backend.Error{Op: op, Table: table, Message: err.Error(), Kind: backend.ErrTransient}
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status > 299 {
		return nil, &backend.Error{Op: op, Table: table, Status: status, Message: errorMessage(body), Kind: backend.KindForStatus(status)}
	}
	return body, nil
}

// errorMessage extracts PostgREST's {"message": ...} or falls back to the raw body.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		if e.Details != "" {
			return e.Message + ": " + e.Details
		}
		return e.Message
	}
	return strings.TrimSpace(string(body))
}
