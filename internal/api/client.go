// Package api is the HTTP client for the ResearchForge chat and search
// backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	apperrors "github.com/klemjul/researchforge/internal/errors"
)

const defaultTimeout = 60 * time.Second

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("endpoint URL is invalid: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint URL must use http or https: %q", baseURL)
	}
	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Chat sends one chat turn. The returned SessionID is the token to pass on
// the next call.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := c.do(ctx, http.MethodPost, PathChat, req)
	if err != nil {
		return nil, err
	}
	return &ChatResponse{
		Response:  gjson.GetBytes(body, "response").String(),
		SessionID: gjson.GetBytes(body, "session_id").String(),
	}, nil
}

func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, apperrors.ErrEmptyQuery
	}
	if req.Category == "" {
		req.Category = DefaultCategory
	}
	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}

	body, err := c.do(ctx, http.MethodPost, PathSearch, req)
	if err != nil {
		return nil, err
	}

	res := &SearchResponse{
		Query:   gjson.GetBytes(body, "query").String(),
		Message: gjson.GetBytes(body, "message").String(),
	}
	for _, p := range gjson.GetBytes(body, "papers").Array() {
		res.Papers = append(res.Papers, parsePaper(p))
	}
	return res, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	body, _, err := c.send(ctx, http.MethodGet, PathHealth, nil)
	if err != nil {
		return nil, err
	}
	res := &HealthResponse{
		Status:  gjson.GetBytes(body, "status").String(),
		Service: gjson.GetBytes(body, "service").String(),
		Version: gjson.GetBytes(body, "version").String(),
	}
	if res.Status != StatusHealthy {
		return res, apperrors.NewAPIError(0, PathHealth, fmt.Sprintf("service reported status %q", res.Status))
	}
	return res, nil
}

func parsePaper(p gjson.Result) Paper {
	var authors []string
	for _, a := range p.Get("authors").Array() {
		authors = append(authors, a.String())
	}
	return Paper{
		Title:     p.Get("title").String(),
		Authors:   authors,
		Abstract:  p.Get("abstract").String(),
		Published: p.Get("published").String(),
		ArxivID:   p.Get("arxiv_id").String(),
		PDFURL:    p.Get("pdf_url").String(),
		WebURL:    p.Get("web_url").String(),
	}
}

// do sends the request and checks the status envelope every endpoint
// shares.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	body, statusCode, err := c.send(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	if status := gjson.GetBytes(body, "status").String(); status != StatusSuccess {
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = unknownErrorMessage
		}
		return nil, apperrors.NewAPIError(statusCode, path, msg)
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	endpoint := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, 0, apperrors.NewNetworkError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.NewNetworkError(path, err)
	}
	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !gjson.ValidBytes(body) {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, resp.StatusCode, apperrors.NewAPIError(resp.StatusCode, path, http.StatusText(resp.StatusCode))
		}
		return nil, resp.StatusCode, apperrors.NewParseError("response is not valid JSON", path)
	}
	return body, resp.StatusCode, nil
}
