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

	"github.com/gorest-qa/conformance/pkg/fixtures"
	"github.com/gorest-qa/conformance/pkg/openapi"
	"github.com/gorest-qa/conformance/test/api"
)

var _ = Describe("User Resource Validation", func() {
	Context("When creating a user with invalid data", func() {
		Describe("Given an email that is already registered", func() {
			It("should reject the second registration", func() {
				user := fixtures.GenerateUser()

				resp, err := client.Post(ctx, client.Endpoints().Users(), user)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, http.StatusCreated)

				var created openapi.User

				Expect(resp.Decode(&created)).To(Succeed())

				DeferCleanup(func() {
					Expect(client.DeleteUser(ctx, created.ID)).To(Succeed())
				})

				resp, err = client.Post(ctx, client.Endpoints().Users(), user)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, openapi.FieldError{Field: "email", Message: openapi.MessageEmailTaken})
			})
		})

		Describe("Given an enumerated field outside its domain", func() {
			It("should reject an unknown gender", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().WithGender("Lanang").Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, openapi.FieldError{Field: "gender", Message: openapi.MessageGenderInvalid})
			})

			It("should reject an unknown status", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().WithStatus("Sick").Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, openapi.FieldError{Field: "status", Message: openapi.MessageBlank})
			})
		})

		Describe("Given mandatory fields are missing", func() {
			It("should report gender then status", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().Without("gender", "status").Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp,
					openapi.FieldError{Field: "gender", Message: openapi.MessageGenderInvalid},
					openapi.FieldError{Field: "status", Message: openapi.MessageBlank},
				)
			})
		})

		Describe("Given a malformed email", func() {
			It("should reject an address without an at sign", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().WithEmail("fadidajunaedy.com").Build())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectFieldErrors(logger, resp, openapi.FieldError{Field: "email", Message: openapi.MessageEmailInvalid})
			})
		})
	})
})
