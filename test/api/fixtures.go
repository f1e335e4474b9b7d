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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gorest-qa/conformance/pkg/fixtures"
	"github.com/gorest-qa/conformance/pkg/logging"
	"github.com/gorest-qa/conformance/pkg/openapi"
)

// CreateUserWithCleanup creates a random user and schedules automatic cleanup.
func CreateUserWithCleanup(ctx context.Context, client *APIClient, logger *logging.Logger) *openapi.User {
	GinkgoHelper()

	return CreateGivenUserWithCleanup(ctx, client, logger, fixtures.GenerateUser())
}

// CreateGivenUserWithCleanup creates the given user and schedules automatic cleanup.
// Anything but a 201 fails the enclosing setup node.
func CreateGivenUserWithCleanup(ctx context.Context, client *APIClient, logger *logging.Logger, user openapi.User) *openapi.User {
	GinkgoHelper()

	resp, err := client.Post(ctx, client.Endpoints().Users(), user)
	if err != nil {
		logger.Errorf("Setup Failed: Could not create user: %v", err)
		Fail(fmt.Sprintf("Setup Failed: Could not create user: %v", err))
	}

	if resp.StatusCode != http.StatusCreated {
		logger.Errorf("Setup Failed: Could not create user. Status: %d. Body: %s", resp.StatusCode, string(resp.Body))
		Fail(fmt.Sprintf("Setup Failed: Could not create user. Status: %d", resp.StatusCode))
	}

	var created openapi.User

	Expect(resp.Decode(&created)).To(Succeed())

	logger.Infof("Created user with ID: %d", created.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		logger.Debugf("Cleaning up user: %d", created.ID)

		if deleteErr := client.DeleteUser(ctx, created.ID); deleteErr != nil {
			logger.Errorf("Warning: Failed to delete user %d: %v", created.ID, deleteErr)
		}
	})

	return &created
}

// ExpectStatus asserts the response status, logging the body when it differs.
func ExpectStatus(logger *logging.Logger, resp *Response, expected int) {
	GinkgoHelper()

	if resp.StatusCode != expected {
		logger.Errorf("Expected status %d but got %d. Body: %s (trace ID: %s)", expected, resp.StatusCode, string(resp.Body), resp.TraceID)
	}

	Expect(resp.StatusCode).To(Equal(expected), "unexpected status, body: %s", string(resp.Body))
}

// ExpectFieldErrors asserts a 422 body carries exactly the given errors in order.
func ExpectFieldErrors(logger *logging.Logger, resp *Response, expected ...openapi.FieldError) {
	GinkgoHelper()

	ExpectStatus(logger, resp, http.StatusUnprocessableEntity)

	errs, err := resp.FieldErrors()
	Expect(err).NotTo(HaveOccurred())

	if !slices.Equal(errs, expected) {
		logger.Errorf("Expected field errors %v but got %v. Status: %d. Body: %s", expected, errs, resp.StatusCode, string(resp.Body))
	}

	Expect(errs).To(Equal(expected))
}

// ExpectMessage asserts a {message} body.
func ExpectMessage(logger *logging.Logger, resp *Response, status int, expected string) {
	GinkgoHelper()

	ExpectStatus(logger, resp, status)

	message, err := resp.Message()
	Expect(err).NotTo(HaveOccurred())

	if message != expected {
		logger.Errorf("Expected message %q but got %q. Status: %d. Body: %s", expected, message, resp.StatusCode, string(resp.Body))
	}

	Expect(message).To(Equal(expected))
}
