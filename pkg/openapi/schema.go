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

// Package openapi describes the consumed GoREST contract: the wire types and
// an embedded OpenAPI document that responses can be validated against.
package openapi

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// ErrSchemaViolation is returned when a response does not match the contract.
var ErrSchemaViolation = errors.New("response violates schema")

//go:embed gorest.yaml
var document []byte

// Schema loads and validates the embedded document.
func Schema() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return doc, nil
}

// Validator checks responses against the embedded document.
type Validator struct {
	router routers.Router
}

// NewValidator returns a validator whose routes are rooted at baseURL, so
// requests made to the configured endpoint resolve to operations.
func NewValidator(baseURL string) (*Validator, error) {
	doc, err := Schema()
	if err != nil {
		return nil, err
	}

	doc.Servers = openapi3.Servers{
		&openapi3.Server{URL: baseURL},
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building schema router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// ValidateResponse checks the status, content type and body of a response
// to req.  Requests that don't map to a documented operation are ignored.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
			return nil
		}

		return fmt.Errorf("finding route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s status %d: %w", ErrSchemaViolation, req.Method, req.URL.Path, status, err)
	}

	return nil
}
