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

var _ = Describe("User Resource", func() {
	Context("When managing the lifecycle of a user", Ordered, ContinueOnFailure, func() {
		var (
			submitted openapi.User
			created   openapi.User
			path      string
		)

		BeforeAll(func() {
			submitted = fixtures.GenerateUser()
		})

		AfterAll(func() {
			// Only needed when the delete spec did not get that far.
			if created.ID != 0 {
				Expect(client.DeleteUser(ctx, created.ID)).To(Succeed())
			}
		})

		It("should create a new user", func() {
			resp, err := client.Post(ctx, client.Endpoints().Users(), submitted)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusCreated)

			Expect(resp.Decode(&created)).To(Succeed())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Name).To(Equal(submitted.Name))
			Expect(created.Email).To(Equal(submitted.Email))
			Expect(created.Gender).To(Equal(submitted.Gender))
			Expect(created.Status).To(Equal(submitted.Status))

			path, err = client.Endpoints().User(created.ID)
			Expect(err).NotTo(HaveOccurred())

			logger.Infof("Created user with ID: %d", created.ID)
		})

		It("should read the user back unchanged", func() {
			Expect(path).NotTo(BeEmpty(), "user was not created")

			resp, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusOK)

			var read openapi.User

			Expect(resp.Decode(&read)).To(Succeed())
			Expect(read.ID).To(Equal(created.ID))
			Expect(read.Name).To(Equal(submitted.Name))
			Expect(read.Email).To(Equal(submitted.Email))
		})

		It("should update the user status", func() {
			Expect(path).NotTo(BeEmpty(), "user was not created")

			status := created.Status.Toggle()

			resp, err := client.Patch(ctx, path, map[string]any{"status": status})
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusOK)

			var updated openapi.User

			Expect(resp.Decode(&updated)).To(Succeed())
			Expect(updated.Status).To(Equal(status))
			Expect(updated.Name).To(Equal(submitted.Name))
			Expect(updated.Email).To(Equal(submitted.Email))
		})

		It("should delete the user", func() {
			Expect(path).NotTo(BeEmpty(), "user was not created")

			resp, err := client.Delete(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusNoContent)
			Expect(resp.Body).To(BeEmpty())

			created.ID = 0
		})

		It("should no longer find the deleted user", func() {
			Expect(path).NotTo(BeEmpty(), "user was not created")

			resp, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectMessage(logger, resp, http.StatusNotFound, openapi.MessageNotFound)
		})
	})
})
