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

package twin

import (
	"regexp"
	"strings"

	"github.com/gorest-qa/conformance/pkg/openapi"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userRequest is a create or update body.  Pointers distinguish absent or
// null fields from empty ones.
type userRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Gender *string `json:"gender"`
	Status *string `json:"status"`
}

// postRequest is a create body.
type postRequest struct {
	UserID *int    `json:"user_id"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// validateUser returns failures in the order the service reports them.  When
// partial is set only fields present in the request are checked.
func validateUser(request *userRequest, partial bool, taken func(string) bool) []openapi.FieldError {
	var errs []openapi.FieldError

	check := func(field string, value *string, validate func(*string) string) {
		if partial && value == nil {
			return
		}

		if message := validate(value); message != "" {
			errs = append(errs, openapi.FieldError{Field: field, Message: message})
		}
	}

	check("email", request.Email, func(v *string) string {
		switch {
		case blank(v):
			return openapi.MessageBlank
		case !emailRegex.MatchString(*v):
			return openapi.MessageEmailInvalid
		case taken(*v):
			return openapi.MessageEmailTaken
		}

		return ""
	})

	check("name", request.Name, func(v *string) string {
		if blank(v) {
			return openapi.MessageBlank
		}

		return ""
	})

	check("gender", request.Gender, func(v *string) string {
		if v == nil {
			return openapi.MessageGenderInvalid
		}

		switch openapi.Gender(*v) {
		case openapi.GenderMale, openapi.GenderFemale:
			return ""
		}

		return openapi.MessageGenderInvalid
	})

	check("status", request.Status, func(v *string) string {
		if v == nil {
			return openapi.MessageBlank
		}

		switch openapi.Status(*v) {
		case openapi.StatusActive, openapi.StatusInactive:
			return ""
		}

		return openapi.MessageBlank
	})

	return errs
}

// validatePost returns failures in the order the service reports them.
func validatePost(request *postRequest, userExists bool) []openapi.FieldError {
	var errs []openapi.FieldError

	if !userExists {
		errs = append(errs, openapi.FieldError{Field: "user", Message: openapi.MessageMustExist})
	}

	if blank(request.Title) {
		errs = append(errs, openapi.FieldError{Field: "title", Message: openapi.MessageBlank})
	}

	if blank(request.Body) {
		errs = append(errs, openapi.FieldError{Field: "body", Message: openapi.MessageBlank})
	}

	return errs
}
