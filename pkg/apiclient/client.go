/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package apiclient

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

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/google/uuid"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/sirupsen/logrus"

	"github.com/edusync-dev/edusync/pkg/logger"
)

// TokenSource supplies the bearer credential attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Config holds connection settings for the backend origin.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryCount    int
	RetryInterval time.Duration
}

// Client is the single chokepoint for requests to the backend. It attaches
// credentials, retries transient failures and normalizes error shapes; it
// never mutates any store.
type Client struct {
	baseURL string
	http    *httpclient.Client
	tokens  TokenSource
}

// New builds a Client on a retrying heimdall httpclient with a traced
// transport.
func New(cfg Config, tokens TokenSource) *Client {
	backoff := heimdall.NewConstantBackoff(cfg.RetryInterval, 50*time.Millisecond)
	hc := httpclient.NewClient(
		httpclient.WithHTTPClient(&http.Client{
			Timeout:   cfg.Timeout,
			Transport: &nethttp.Transport{},
		}),
		httpclient.WithRetryCount(cfg.RetryCount),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
	)
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		tokens:  tokens,
	}
}

// Get issues a GET with optional query parameters, decoding into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE. body may be nil; the batch-removal endpoint is
// the one resource that deletes with a payload.
func (c *Client) Delete(ctx context.Context, path string, body interface{}, out interface{}) error {
	if body == nil {
		return c.do(ctx, http.MethodDelete, path, nil, "", nil, out)
	}
	return c.doJSON(ctx, http.MethodDelete, path, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, "application/json", reader, out)
}

// do performs the request and reconciles the response into out. Non-2xx
// responses become *APIError; failures without a response wrap ErrTransport.
func (c *Client) do(ctx context.Context, method, path string, query url.Values,
	contentType string, body io.Reader, out interface{}) error {

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
		log.WithField("status", resp.StatusCode).Warn(apiErr.Message)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
