package nanocld

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nxthat/nanocl/internal/metrics"
	"github.com/nxthat/nanocl/internal/util/retry"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// errorBody is the JSON body of daemon errors.
type errorBody struct {
	Msg string `json:"msg"`
}

// getJSON performs a GET and decodes the response into out.
// Transport failures are retried according to the client retry policy.
func (c *RealClient) getJSON(ctx context.Context, operation, path, namespace string, out any) error {
	return retry.Do(ctx, func(ctx context.Context) error {
		resp, err := c.do(ctx, operation, http.MethodGet, path, namespace, nil, true)
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Operation: operation, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return nil
	}, c.retryOptions(operation)...)
}

// postJSON performs a POST with body encoded as JSON and discards the response body.
// Mutating requests are never retried.
func (c *RealClient) postJSON(ctx context.Context, operation, path, namespace string, body any) error {
	resp, err := c.do(ctx, operation, http.MethodPost, path, namespace, body, true)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do sends a request and returns the response of a 2xx status.
// Non-2xx statuses are converted to *APIError and the body is closed.
// bounded applies the request timeout; streaming calls pass false.
func (c *RealClient) do(ctx context.Context, operation, method, path, namespace string, body any, bounded bool) (resp *http.Response, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordAPICall(operation, err, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Operation: operation, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	if bounded && c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer func() {
			if err != nil {
				cancel()
				return
			}
			resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
		}()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, namespace), reader)
	if err != nil {
		return nil, &TransportError{Operation: operation, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Operation: operation, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := readAPIError(operation, resp)
		_ = resp.Body.Close()
		return nil, apiErr
	}

	return resp, nil
}

// url builds the request URL for path, adding the namespace query parameter when set.
// path must already be escaped.
func (c *RealClient) url(path, namespace string) string {
	u := c.baseURL.String() + path
	if namespace != "" {
		u += "?" + url.Values{"namespace": []string{namespace}}.Encode()
	}
	return u
}

// readAPIError builds an APIError from a failed response.
func readAPIError(operation string, resp *http.Response) *APIError {
	apiErr := &APIError{Operation: operation, Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var eb errorBody
	if json.Unmarshal(data, &eb) == nil && eb.Msg != "" {
		apiErr.Message = eb.Msg
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(data))
	return apiErr
}

// cancelOnClose releases a request context once the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// segment escapes a name for use as one path segment.
func segment(name string) string {
	return url.PathEscape(name)
}
