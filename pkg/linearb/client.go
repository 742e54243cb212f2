package linearb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userAgent = "linearb-mcp/1.0"

// emptyBodyResult stands in for responses the API returns with no body
// (204 or an empty 2xx).
var emptyBodyResult = json.RawMessage(`{"status":"success","message":"Operation completed successfully"}`)

// Client wraps authenticated read access to the LinearB public API.
// Only GET and POST exist; write verbs have no method to call.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the given base URL. The injected
// *http.Client carries the request timeout.
func NewClient(logger *zap.Logger, httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
	}
}

// Get issues an authenticated GET and returns the raw JSON payload.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues an authenticated POST with a JSON body. POST is used only
// for body-carrying read operations (searches and metric queries).
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, NewValidationError("json_body", fmt.Sprintf("cannot encode request body: %v", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("building request for %s %s: %v", method, path, err), err)
	}

	requestID := uuid.NewString()
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		nerr := classifyTransportError(method, path, err)
		c.logger.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, nerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("reading response for %s %s: %v", method, path, err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = resp.Status
		}
		c.logger.Error("api error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, NewAPIError(resp.StatusCode, fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, msg))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return emptyBodyResult, nil
	}

	if !json.Valid(data) {
		return nil, NewAPIError(resp.StatusCode, fmt.Sprintf("response for %s %s is not valid JSON", method, path))
	}

	return json.RawMessage(data), nil
}

// classifyTransportError separates timeouts and cancellations from other
// transport faults.
func classifyTransportError(method, path string, err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return NewNetworkError(fmt.Sprintf("timeout on %s %s", method, path), err)
	case errors.Is(err, context.Canceled):
		return NewNetworkError(fmt.Sprintf("request canceled for %s %s", method, path), err)
	default:
		return NewNetworkError(fmt.Sprintf("network error on %s %s: %v", method, path, err), err)
	}
}
