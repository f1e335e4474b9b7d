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
	"k8s.io/utils/ptr"

	"github.com/gorest-qa/conformance/pkg/fixtures"
	"github.com/gorest-qa/conformance/pkg/openapi"
	"github.com/gorest-qa/conformance/test/api"
)

var _ = Describe("User Posts", func() {
	Context("When a user publishes posts", Ordered, ContinueOnFailure, func() {
		var (
			user    *openapi.User
			created []openapi.Post
		)

		BeforeAll(func() {
			user = api.CreateUserWithCleanup(ctx, client, logger)
		})

		Describe("Given the user in the path", func() {
			It("should create the post for that user", func() {
				path, err := client.Endpoints().UserPosts(user.ID)
				Expect(err).NotTo(HaveOccurred())

				submitted := fixtures.GeneratePost(nil)

				resp, err := client.Post(ctx, path, submitted)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, http.StatusCreated)

				var post openapi.Post

				Expect(resp.Decode(&post)).To(Succeed())
				Expect(post.ID).NotTo(BeZero())
				Expect(post.UserID).To(Equal(ptr.To(user.ID)))
				Expect(post.Title).To(Equal(submitted.Title))
				Expect(post.Body).To(Equal(submitted.Body))

				created = append(created, post)
			})
		})

		Describe("Given the user in the body", func() {
			It("should create the post for that user", func() {
				submitted := fixtures.GeneratePost(ptr.To(user.ID))

				resp, err := client.Post(ctx, client.Endpoints().Posts(), submitted)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(logger, resp, http.StatusCreated)

				var post openapi.Post

				Expect(resp.Decode(&post)).To(Succeed())
				Expect(post.UserID).To(Equal(ptr.To(user.ID)))
				Expect(post.Title).To(Equal(submitted.Title))
				Expect(post.Body).To(Equal(submitted.Body))

				created = append(created, post)
			})
		})

		Describe("Given posts have been created", func() {
			It("should list them under the user", func() {
				posts, err := client.ListUserPosts(ctx, user.ID)
				Expect(err).NotTo(HaveOccurred())

				for _, post := range created {
					Expect(posts).To(ContainElement(post))
				}
			})
		})
	})
})
