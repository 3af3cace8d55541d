package ccw

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ccw_query/pkg/logger"
)

type request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

type response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// do sends one request. There is no retry: the order and estimate calls are
// not idempotent from the caller's point of view and the scripts never retried.
func (c *Client) do(ctx context.Context, req *request) (*response, error) {
	url := c.baseURL + req.Path

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request %s: %w", req.Path, err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.Debug("[CCW] response",
		logger.String("method", req.Method),
		logger.String("path", req.Path),
		logger.Int("status", httpResp.StatusCode),
		logger.Duration("took", time.Since(start)),
	)

	resp := &response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       bodyBytes,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}
	return resp, nil
}
