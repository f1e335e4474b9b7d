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

package api

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// userID renders the {id} path parameter the way generated clients do.
func userID(id int) (string, error) {
	param, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return "", fmt.Errorf("styling user id %d: %w", id, err)
	}

	return param, nil
}

// User endpoints.
func (e *Endpoints) Users() string {
	return "/users"
}

func (e *Endpoints) User(id int) (string, error) {
	param, err := userID(id)
	if err != nil {
		return "", err
	}

	return "/users/" + param, nil
}

// Post endpoints.
func (e *Endpoints) UserPosts(id int) (string, error) {
	param, err := userID(id)
	if err != nil {
		return "", err
	}

	return "/users/" + param + "/posts", nil
}

func (e *Endpoints) Posts() string {
	return "/posts"
}
