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

var _ = Describe("User Resource Teardown", func() {
	Context("When a user has already been deleted", Ordered, ContinueOnFailure, func() {
		var path string

		BeforeAll(func() {
			user := api.CreateUserWithCleanup(ctx, client, logger)

			var err error

			path, err = client.Endpoints().User(user.ID)
			Expect(err).NotTo(HaveOccurred())

			resp, err := client.Delete(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(logger, resp, http.StatusNoContent)
		})

		It("should report the user as not found on a second delete", func() {
			resp, err := client.Delete(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectMessage(logger, resp, http.StatusNotFound, openapi.MessageNotFound)
		})

		It("should report the user as not found on read", func() {
			resp, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectMessage(logger, resp, http.StatusNotFound, openapi.MessageNotFound)
		})
	})
})
