// Package supabase implements the folio stores, table prober and asset
// bucket over the hosted PostgREST and storage HTTP APIs.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 10 * time.Second

// Postgres and PostgREST codes of a relation that does not exist.
const (
	codeUndefinedTable = "42P01"
	codeSchemaCache    = "PGRST205"
)

// Error is a failure reported by the remote service.
type Error struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("supabase: status %d: %s (%s)", e.Status, e.Message, e.Code)
}

func (e *Error) Is(target error) bool {
	return target == folio.ErrTableMissing &&
		(e.Code == codeUndefinedTable || e.Code == codeSchemaCache)
}

// Client is a handle to one hosted project. It holds no connection and is
// safe for concurrent use.
type Client struct {
	endpoint string
	key      string

	// Bounds calls whose context carries no deadline. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewClient never fails. With an empty endpoint or key every call
// fails with folio.ErrNotConfigured.
func NewClient(endpoint string, key string) *Client {
	return &Client{endpoint: strings.TrimRight(endpoint, "/"), key: key}
}

func (c *Client) Configured() bool {
	return c.endpoint != "" && c.key != ""
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// rest calls /rest/v1/{table}. in is marshalled as the request body, the
// response body is unmarshalled into out.
func (c *Client) rest(ctx context.Context, method string, table string, query url.Values,
	in interface{}, out interface{}) error {
	uri := c.endpoint + "/rest/v1/" + url.PathEscape(table)
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
	}

	respBody, err := c.send(ctx, method, uri, fiber.MIMEApplicationJSON, body, func(req *fiber.Request) {
		if method != fiber.MethodGet {
			req.Header.Set("Prefer", "return=representation")
		}
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal body: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method string, uri string, contentType string, body []byte,
	configure func(req *fiber.Request)) ([]byte, error) {
	if !c.Configured() {
		return nil, folio.ErrNotConfigured
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set("apikey", c.key)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.key)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if body != nil {
		req.Header.SetContentType(contentType)
		req.SetBody(body)
	}
	if configure != nil {
		configure(req)
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	agent.Timeout(timeout)

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("agent parse: %w", err)
	}

	statusCode, respBody, errs := agent.Bytes()
	if len(errs) != 0 {
		return nil, fmt.Errorf("agent bytes: %v", errs)
	}
	if statusCode < 200 || statusCode > 299 {
		return nil, decodeError(statusCode, respBody)
	}
	return respBody, nil
}

func decodeError(statusCode int, body []byte) error {
	apiErr := &Error{Status: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Code = ""
		apiErr.Message = string(body)
	}
	return apiErr
}

func eq(v int64) string {
	return "eq." + fmt.Sprint(v)
}
