package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseBytes ограничение на размер тела ответа бэкенда
const maxResponseBytes = 10 << 20

// Client клиент внешнего REST бэкенда DriveTail
type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	maxBody    int64
	metrics    MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда.
// metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, origin string, metrics MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		origin:  origin,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBody: maxResponseBytes,
		metrics: metrics,
		log:     log,
	}
}

// Do выполняет запрос и возвращает ответ как есть, с любым статусом.
// Ошибка возвращается только если ответа нет (ErrTransport), запрос не удалось собрать (ErrInternal)
// или тело ответа больше maxResponseBytes (ErrInvalidResponse).
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if c.origin != "" {
		httpReq.Header.Set("Origin", c.origin)
	}

	resource := resourceOf(req.Path)
	started := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(req.Method, resource, "transport_error", started)
		c.log.Error("Backend %s %s failed: %v", req.Method, req.Path, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		c.observe(req.Method, resource, "transport_error", started)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}
	if int64(len(data)) > c.maxBody {
		c.observe(req.Method, resource, "too_large", started)
		c.log.Error("Backend %s %s: response body exceeds %d bytes", req.Method, req.Path, c.maxBody)
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrInvalidResponse, c.maxBody)
	}

	outcome := "ok"
	if resp.StatusCode >= 300 {
		outcome = fmt.Sprintf("%dxx", resp.StatusCode/100)
	}
	c.observe(req.Method, resource, outcome, started)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// doJSON выполняет запрос с JSON телом и декодирует 2xx ответ в out (если out != nil)
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out interface{}, fallback string) (*Response, error) {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
	}

	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Body: body, Token: token})
	if err != nil {
		return nil, err
	}

	if err := resp.AsError(fallback); err != nil {
		return resp, err
	}

	if out != nil && len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return resp, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	return resp, nil
}

func (c *Client) observe(method, resource, outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBackend(method, resource, outcome, time.Since(started))
}

// resourceOf выделяет имя ресурса из пути: /api/ticket/12 -> ticket, /api/auth/session -> auth
func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimPrefix(p, "api/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}
