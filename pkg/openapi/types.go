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

package openapi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGender = errors.New("invalid gender: must be one of male or female")
	ErrInvalidStatus = errors.New("invalid status: must be one of active or inactive")
)

// Gender is the user gender enumeration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists the permitted genders.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// UnmarshalText rejects anything the API should never return.  Marshaling is
// left unchecked so invalid values can be sent deliberately.
func (g *Gender) UnmarshalText(text []byte) error {
	switch v := Gender(text); v {
	case GenderMale, GenderFemale:
		*g = v
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidGender, string(text))
	}

	return nil
}

// Status is the user account status enumeration.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Statuses lists the permitted statuses.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive}
}

func (s *Status) UnmarshalText(text []byte) error {
	switch v := Status(text); v {
	case StatusActive, StatusInactive:
		*s = v
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidStatus, string(text))
	}

	return nil
}

// Toggle returns the other status.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}

	return StatusActive
}

// User is a GoREST user.  ID is assigned by the service.
type User struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	Email  string `json:"email"`
	Status Status `json:"status"`
}

// Post is a GoREST post.  UserID may be omitted when the owner is implied by
// a nested path.
type Post struct {
	ID     int    `json:"id,omitempty"`
	UserID *int   `json:"user_id,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// FieldError is a single validation failure as returned with a 422.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

// Message is the body of 401 and 404 responses.
type Message struct {
	Message string `json:"message"`
}

// Validation messages emitted by the service.
const (
	MessageBlank          = "can't be blank"
	MessageGenderInvalid  = "can't be blank, can be male of female"
	MessageEmailInvalid   = "is invalid"
	MessageEmailTaken     = "has already been taken"
	MessageMustExist      = "must exist"
	MessageAuthFailed     = "Authentication failed"
	MessageInvalidToken   = "Invalid token"
	MessageNotFound       = "Resource not found"
	MessageMalformedInput = "Invalid JSON in request body"
)
