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
	"github.com/gorest-qa/conformance/pkg/fixtures"
	"github.com/gorest-qa/conformance/pkg/openapi"
)

// UserPayloadBuilder builds user payloads, including ones the API must reject.
type UserPayloadBuilder struct {
	payload map[string]any
}

// NewUserPayload starts from a random valid user.
func NewUserPayload() *UserPayloadBuilder {
	return NewUserPayloadFrom(fixtures.GenerateUser())
}

// NewUserPayloadFrom starts from the given user.
func NewUserPayloadFrom(user openapi.User) *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: map[string]any{
			"name":   user.Name,
			"email":  user.Email,
			"gender": string(user.Gender),
			"status": string(user.Status),
		},
	}
}

// WithName sets the name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithEmail sets the email.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.payload["email"] = email
	return b
}

// WithGender sets the gender, any string is accepted.
func (b *UserPayloadBuilder) WithGender(gender string) *UserPayloadBuilder {
	b.payload["gender"] = gender
	return b
}

// WithStatus sets the status, any string is accepted.
func (b *UserPayloadBuilder) WithStatus(status string) *UserPayloadBuilder {
	b.payload["status"] = status
	return b
}

// Without removes fields from the payload.
func (b *UserPayloadBuilder) Without(fields ...string) *UserPayloadBuilder {
	for _, field := range fields {
		delete(b.payload, field)
	}

	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() map[string]any {
	return b.payload
}

// PostPayloadBuilder builds post payloads.
type PostPayloadBuilder struct {
	payload map[string]any
}

// NewPostPayload starts from a random valid post without an owner.
func NewPostPayload() *PostPayloadBuilder {
	post := fixtures.GeneratePost(nil)

	return &PostPayloadBuilder{
		payload: map[string]any{
			"title": post.Title,
			"body":  post.Body,
		},
	}
}

// WithUserID sets the owning user in the body.
func (b *PostPayloadBuilder) WithUserID(id int) *PostPayloadBuilder {
	b.payload["user_id"] = id
	return b
}

// WithNullContent sends explicit nulls for title and body.
func (b *PostPayloadBuilder) WithNullContent() *PostPayloadBuilder {
	b.payload["title"] = nil
	b.payload["body"] = nil

	return b
}

// Build returns the completed post payload.
func (b *PostPayloadBuilder) Build() map[string]any {
	return b.payload
}
