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

var _ = Describe("Security and Authentication", func() {
	Context("When creating a user with different authentication states", func() {
		Describe("Given no authentication", func() {
			It("should reject requests with missing authentication", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().Build(), api.WithoutAuth())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectMessage(logger, resp, http.StatusUnauthorized, openapi.MessageAuthFailed)
			})
		})

		Describe("Given invalid authentication", func() {
			It("should reject requests with invalid tokens", func() {
				resp, err := client.Post(ctx, client.Endpoints().Users(), api.NewUserPayload().Build(), api.WithToken("123456"))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectMessage(logger, resp, http.StatusUnauthorized, openapi.MessageInvalidToken)
			})
		})
	})
})
