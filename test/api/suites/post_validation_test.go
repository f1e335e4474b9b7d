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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gorest-qa/conformance/pkg/openapi"
	"github.com/gorest-qa/conformance/test/api"
)

// missingUserID is never allocated by the service.
const missingUserID = 999999

var _ = Describe("User Posts Validation", func() {
	Context("When creating posts with invalid data", Ordered, ContinueOnFailure, func() {
		var (
			user      *openapi.User
			userPosts string
		)

		mustExist := openapi.FieldError{Field: "user", Message: openapi.MessageMustExist}
		blankTitle := openapi.FieldError{Field: "title", Message: openapi.MessageBlank}
		blankBody := openapi.FieldError{Field: "body", Message: openapi.MessageBlank}

		BeforeAll(func() {
			user = api.CreateUserWithCleanup(ctx, client, logger)

			var err error

			userPosts, err = client.Endpoints().UserPosts(user.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Given a user that does not exist", func() {
			It("should reject the user in the path", func() {
				path, err := client.Endpoints().UserPosts(missingUserID)
				Expect(err).NotTo(HaveOccurred())

				resp, err := client.Post(ctx, path, api.NewPostPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, mustExist)
			})

			It("should reject the user in the body", func() {
				resp, err := client.Post(ctx, client.Endpoints().Posts(), api.NewPostPayload().WithUserID(missingUserID).Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, mustExist)
			})
		})

		Describe("Given null title and body", func() {
			It("should reject them with the user in the path", func() {
				resp, err := client.Post(ctx, userPosts, api.NewPostPayload().WithNullContent().Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, blankTitle, blankBody)
			})

			It("should reject them with the user in the body", func() {
				resp, err := client.Post(ctx, client.Endpoints().Posts(), api.NewPostPayload().WithUserID(user.ID).WithNullContent().Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, blankTitle, blankBody)
			})
		})

		Describe("Given bad credentials", func() {
			It("should reject an invalid token", func() {
				resp, err := client.Post(ctx, userPosts, api.NewPostPayload().Build(), api.WithToken("123456"))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectMessage(logger, resp, http.StatusUnauthorized, openapi.MessageInvalidToken)
			})

			It("should reject a missing token", func() {
				resp, err := client.Post(ctx, userPosts, api.NewPostPayload().Build(), api.WithoutAuth())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectMessage(logger, resp, http.StatusUnauthorized, openapi.MessageAuthFailed)
			})
		})
	})
})
