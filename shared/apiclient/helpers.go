package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/learnsphere-dev/learnsphere/shared/api"
	internal_errors "github.com/learnsphere-dev/learnsphere/shared/errors"
	"github.com/learnsphere-dev/learnsphere/shared/validation"
)

// PathEscape escapes a single path segment for use in an endpoint.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}

// call backs the typed endpoint methods. Unlike Get/Post it validates the
// request DTO before sending and turns non-2xx answers into
// ErrorWithStatusCode.
func (c *Client) call(ctx context.Context, method, endpoint string, data any, token string) (*Response, error) {
	if data != nil {
		if err := validation.Struct(data); err != nil {
			return nil, err
		}
	}

	resp, err := c.Do(ctx, method, endpoint, data, token)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("%s %s: %s", method, endpoint, errorMessage(resp)),
			StatusCode: resp.StatusCode,
		}
	}
	return resp, nil
}

func (c *Client) fetch(ctx context.Context, endpoint, token string, out any) error {
	resp, err := c.call(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func fetchList[T any](ctx context.Context, c *Client, endpoint, token string) ([]T, error) {
	resp, err := c.call(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return nil, err
	}
	return decodeList[T](resp)
}

func fetchOne[T any](ctx context.Context, c *Client, endpoint, token string) (*T, error) {
	var out T
	if err := c.fetch(ctx, endpoint, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// submit POSTs data and decodes a 2xx answer into T; what names T in errors.
func submit[T any](ctx context.Context, c *Client, endpoint string, data any, token, what string) (*T, error) {
	resp, err := c.call(ctx, http.MethodPost, endpoint, data, token)
	if err != nil {
		return nil, err
	}
	var out T
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return &out, nil
}

// decodeList accepts a bare array or a paginated envelope and never returns a
// nil slice on success.
func decodeList[T any](resp *Response) ([]T, error) {
	var items []T
	if err := resp.Decode(&items); err != nil {
		var page api.Page[T]
		if pageErr := resp.Decode(&page); pageErr != nil {
			return nil, err
		}
		items = page.Results
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// errorMessage pulls the human readable part out of a DRF error body:
// {"detail": ...}, {"error": ...}, field errors {"email": ["..."]} or the bare
// ["..."] list a ValidationError raised in a view produces.
func errorMessage(resp *Response) string {
	if msg := rawText(resp.Body); msg != "" {
		return msg
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		for _, key := range []string{"detail", "error", "non_field_errors"} {
			if msg := rawText(body[key]); msg != "" {
				return msg
			}
		}
		if len(body) > 0 {
			return strings.TrimSpace(string(resp.Body))
		}
	}
	if text := strings.TrimSpace(string(resp.Body)); text != "" && len(text) <= 200 {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
