package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status code: %d", e.Status)
	}
	return fmt.Sprintf("status code: %d\n%s", e.Status, e.Body)
}

// Get performs a GET request and returns the raw body of a 2xx response.
// Query parameters listed in secret are redacted in the debug log.
func Get(ctx context.Context, client *resty.Client, path string, params map[string]string, secret ...string) ([]byte, error) {
	request := client.R().SetContext(ctx)
	request.SetQueryParams(params)

	slog.DebugContext(ctx, "upstream request", "url", path, "query", redact(params, secret))

	response, err := request.Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	slog.DebugContext(ctx, "upstream response", "url", path, "status", response.StatusCode(), "bytes", len(response.Body()))

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		buf := &bytes.Buffer{}

		if err = json.Indent(buf, response.Body(), "", "  "); err != nil {
			buf.Reset()
			buf.Write(response.Body())
		}

		return nil, &StatusError{Status: response.StatusCode(), Body: buf.String()}
	}

	return response.Body(), nil
}

func redact(params map[string]string, secret []string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, k := range secret {
		if _, ok := out[k]; ok {
			out[k] = "***"
		}
	}
	return out
}
