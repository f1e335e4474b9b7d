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

// Package fixtures generates random, schema-valid request payloads.
package fixtures

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-faker/faker/v4"

	"github.com/gorest-qa/conformance/pkg/openapi"
)

const (
	// MaxTitleLength is the longest title the service accepts.
	MaxTitleLength = 200

	// MaxBodyLength is the longest post body the service accepts.
	MaxBodyLength = 500
)

//nolint:gochecknoglobals
var (
	mailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com"}
	separators  = []string{".", "_"}
)

func pick[T any](values []T) T {
	return values[rand.IntN(len(values))]
}

// GenerateUser returns a random user with a name matching its gender and an
// email derived from that name.
func GenerateUser() openapi.User {
	gender := pick(openapi.Genders())

	firstName := faker.FirstNameFemale()
	if gender == openapi.GenderMale {
		firstName = faker.FirstNameMale()
	}

	lastName := faker.LastName()

	return openapi.User{
		Name:   firstName + " " + lastName,
		Gender: gender,
		Email:  Email(firstName, lastName),
		Status: pick(openapi.Statuses()),
	}
}

// Email derives a lower case address from a first and last name.  A numeric
// suffix keeps collisions with other users of a shared service unlikely.
func Email(firstName, lastName string) string {
	local := localPart(firstName) + pick(separators) + localPart(lastName) + strconv.Itoa(rand.IntN(100000))

	return local + "@" + pick(mailDomains)
}

// localPart lower cases s and drops anything that isn't a letter or digit.
func localPart(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "user"
	}

	return b.String()
}

// GeneratePost returns a random post.  A nil userID leaves the owner to be
// implied by the request path.
func GeneratePost(userID *int) openapi.Post {
	return openapi.Post{
		UserID: userID,
		Title:  truncate(faker.Sentence(), MaxTitleLength),
		Body:   truncate(faker.Paragraph(), MaxBodyLength),
	}
}

// truncate shortens s to at most n bytes, at a word boundary where there is one.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	s = s[:n]

	if i := strings.LastIndexByte(s, ' '); i > 0 {
		s = s[:i]
	}

	return s
}
