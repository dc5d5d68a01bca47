package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func jsonRequest(method string, target string, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(body)
}

func decodeResponse(t *testing.T, resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	var body ErrorResponse
	decodeResponse(t, resp, &body)
	return body.ErrorMessage
}

func TestErrorHandler(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{fiber.NewError(fiber.StatusBadRequest, "invalid id"), 400, "invalid id"},
		{fmt.Errorf("create project: %w", &folio.ValidationError{Field: "title", Rule: "required"}), 400, "title is required"},
		{fmt.Errorf("update hobby: %w", folio.ErrNotFound), 404, "record not found"},
		{fmt.Errorf("upload asset: %w", folio.ErrNotImage), 415, "asset is not an image"},
		{fmt.Errorf("create project: %w", folio.ErrTableMissing), 500, "Internal Server Error"},
		{errors.New("dial tcp: connection refused"), 500, "Internal Server Error"},
	}
	for _, tc := range cases {
		app := newTestApp()
		app.Get("/", func(ctx *fiber.Ctx) error { return tc.err })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if !assert.NoError(err) {
			return
		}
		assert.Equal(tc.status, resp.StatusCode, tc.err.Error())
		assert.Equal(fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(tc.message, errorMessage(t, resp), tc.err.Error())
	}
}

func TestNotFoundHandler(t *testing.T) {
	assert := assert.New(t)

	app := newTestApp()
	app.Use(NotFoundHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/nothing/here", nil))
	if !assert.NoError(err) {
		return
	}
	assert.Equal(fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(`{"error_message":"Not Found"}`, readBody(t, resp))
}

func TestLogHandlerTagsRequest(t *testing.T) {
	assert := assert.New(t)

	app := newTestApp()
	app.Use(LogHandler())
	var seen string
	app.Get("/", func(ctx *fiber.Ctx) error {
		seen, _ = ctx.Locals(requestIdLocalsKey).(string)
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if !assert.NoError(err) {
		return
	}
	first := seen
	assert.NotEmpty(first)
	assert.Equal(first, resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if !assert.NoError(err) {
		return
	}
	assert.Equal(seen, resp.Header.Get(fiber.HeaderXRequestID))
	assert.NotEqual(first, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestParamId(t *testing.T) {
	assert := assert.New(t)

	app := newTestApp()
	app.Get("/things/:id", func(ctx *fiber.Ctx) error {
		id, err := paramId(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(id)
	})

	cases := []struct {
		target string
		status int
		body   string
	}{
		{"/things/17", 200, "17"},
		{"/things/abc", 400, `{"error_message":"invalid id"}`},
		{"/things/0", 400, `{"error_message":"invalid id"}`},
		{"/things/-3", 400, `{"error_message":"invalid id"}`},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil))
		if !assert.NoError(err) {
			return
		}
		assert.Equal(tc.status, resp.StatusCode, tc.target)
		assert.Equal(tc.body, readBody(t, resp), tc.target)
	}
}
