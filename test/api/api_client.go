/*
Copyright 2026 the GoREST Conformance Authors.

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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gorest-qa/conformance/pkg/logging"
	"github.com/gorest-qa/conformance/pkg/openapi"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// HTTPDoer sends a request, *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResponseValidator checks a response against the published contract.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	authToken string
	logger    *logging.Logger
	validator ResponseValidator
	endpoints *Endpoints
}

// ClientOption customises an APIClient.
type ClientOption func(*APIClient)

// WithHTTPDoer replaces the transport.
func WithHTTPDoer(doer HTTPDoer) ClientOption {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithResponseValidator validates every response before it is returned.
func WithResponseValidator(validator ResponseValidator) ClientOption {
	return func(c *APIClient) {
		c.validator = validator
	}
}

func NewAPIClient(config *TestConfig, logger *logging.Logger, options ...ClientOption) *APIClient {
	if logger == nil {
		logger = logging.Nop()
	}

	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		authToken: config.AuthToken,
		logger:    logger,
		endpoints: NewEndpoints(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Endpoints returns the path builder used by the client.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body %q: %w", string(r.Body), err)
	}

	return nil
}

// Message returns the message of a 401 or 404 style body.
func (r *Response) Message() (string, error) {
	var message openapi.Message
	if err := r.Decode(&message); err != nil {
		return "", err
	}

	return message.Message, nil
}

// FieldErrors returns the ordered validation errors of a 422 body.
func (r *Response) FieldErrors() ([]openapi.FieldError, error) {
	var errs []openapi.FieldError
	if err := r.Decode(&errs); err != nil {
		return nil, err
	}

	return errs, nil
}

type requestOptions struct {
	token     string
	anonymous bool
	header    http.Header
}

// RequestOption alters a single request.
type RequestOption func(*requestOptions)

// WithoutAuth omits the Authorization header.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) {
		o.anonymous = true
	}
}

// WithToken sends a different bearer token.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func encodeBody(body any) (io.Reader, error) {
	switch t := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(t), nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), nil
	}
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any, options []RequestOption) (*Response, error) {
	o := &requestOptions{
		token:  c.authToken,
		header: http.Header{},
	}

	for _, option := range options {
		option(o)
	}

	reader, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if !o.anonymous && o.token != "" {
		req.Header.Set("Authorization", "Bearer "+o.token)
	}

	for key, values := range o.header {
		req.Header[key] = values
	}

	traceID := extractTraceID(traceParent)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Errorf("[%s %s] http request failed duration=%s trace_id=%s error=%v", method, path, duration, traceID, err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Errorf("[%s %s] reading response body status=%d trace_id=%s error=%v", method, path, resp.StatusCode, traceID, err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debugf("[%s %s] status=%d duration=%s trace_id=%s", method, path, resp.StatusCode, duration, traceID)

	if len(respBody) > 0 {
		c.logger.Debugf("[%s %s] response body: %s", method, path, string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    traceID,
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logger.Errorf("[%s %s] response does not match the contract trace_id=%s error=%v", method, path, traceID, err)
			return response, err
		}
	}

	return response, nil
}

func (c *APIClient) Get(ctx context.Context, path string, options ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, options)
}

func (c *APIClient) Post(ctx context.Context, path string, body any, options ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body, options)
}

func (c *APIClient) Patch(ctx context.Context, path string, body any, options ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPatch, path, body, options)
}

func (c *APIClient) Delete(ctx context.Context, path string, options ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, options)
}

// expectStatus logs and returns an error when the response status is not one of expected.
func (c *APIClient) expectStatus(method, path string, resp *Response, expected ...int) error {
	if slices.Contains(expected, resp.StatusCode) {
		return nil
	}

	c.logger.Errorf("[%s %s] UNEXPECTED STATUS expected=%v got=%d body=%s trace_id=%s", method, path, expected, resp.StatusCode, string(resp.Body), resp.TraceID)

	return fmt.Errorf("%w: expected %v, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expected, resp.StatusCode, string(resp.Body), resp.TraceID)
}

// CreateUser creates a user and returns the stored representation.
func (c *APIClient) CreateUser(ctx context.Context, user openapi.User) (*openapi.User, error) {
	path := c.endpoints.Users()

	resp, err := c.Post(ctx, path, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := c.expectStatus(http.MethodPost, path, resp, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var created openapi.User
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &created, nil
}

// GetUser retrieves a specific user.
func (c *APIClient) GetUser(ctx context.Context, id int) (*openapi.User, error) {
	path, err := c.endpoints.User(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if err := c.expectStatus(http.MethodGet, path, resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}

	var user openapi.User
	if err := resp.Decode(&user); err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &user, nil
}

// DeleteUser deletes a user, a user that is already gone is not an error.
func (c *APIClient) DeleteUser(ctx context.Context, id int) error {
	path, err := c.endpoints.User(id)
	if err != nil {
		return err
	}

	resp, err := c.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if err := c.expectStatus(http.MethodDelete, path, resp, http.StatusNoContent, http.StatusNotFound); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}

	return nil
}

// CreateUserPost creates a post owned by the user named in the path.
func (c *APIClient) CreateUserPost(ctx context.Context, userID int, post openapi.Post) (*openapi.Post, error) {
	path, err := c.endpoints.UserPosts(userID)
	if err != nil {
		return nil, err
	}

	return c.createPost(ctx, path, post)
}

// CreatePost creates a post owned by the user_id in the body.
func (c *APIClient) CreatePost(ctx context.Context, post openapi.Post) (*openapi.Post, error) {
	return c.createPost(ctx, c.endpoints.Posts(), post)
}

func (c *APIClient) createPost(ctx context.Context, path string, post openapi.Post) (*openapi.Post, error) {
	resp, err := c.Post(ctx, path, post)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	if err := c.expectStatus(http.MethodPost, path, resp, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	var created openapi.Post
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return &created, nil
}

// ListUserPosts lists the posts owned by a user.
func (c *APIClient) ListUserPosts(ctx context.Context, userID int) ([]openapi.Post, error) {
	path, err := c.endpoints.UserPosts(userID)
	if err != nil {
		return nil, err
	}

	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	if err := c.expectStatus(http.MethodGet, path, resp, http.StatusOK); err != nil {
		return nil, fmt.Errorf("listing posts for user %d: %w", userID, err)
	}

	var posts []openapi.Post
	if err := resp.Decode(&posts); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return posts, nil
}
