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
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/gorest-qa/conformance/pkg/openapi"

	"k8s.io/utils/ptr"
)

// MemoryStore holds all twin state in memory.
type MemoryStore struct {
	lock       sync.Mutex
	users      map[int]openapi.User
	posts      map[int]openapi.Post
	nextUserID int
	nextPostID int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.reset()

	return s
}

func (s *MemoryStore) reset() {
	s.users = map[int]openapi.User{}
	s.posts = map[int]openapi.Post{}
	s.nextUserID = 1
	s.nextPostID = 1
}

// Reset clears all state.
func (s *MemoryStore) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.reset()
}

// emailTaken reports whether another user already owns email.  The caller
// must hold the lock.
func (s *MemoryStore) emailTaken(email string, except int) bool {
	for id, user := range s.users {
		if id != except && strings.EqualFold(user.Email, email) {
			return true
		}
	}

	return false
}

// CreateUser validates and stores a new user.
func (s *MemoryStore) CreateUser(request *userRequest) (openapi.User, []openapi.FieldError) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if errs := validateUser(request, false, func(email string) bool { return s.emailTaken(email, 0) }); len(errs) != 0 {
		return openapi.User{}, errs
	}

	user := openapi.User{
		ID:     s.nextUserID,
		Name:   *request.Name,
		Email:  *request.Email,
		Gender: openapi.Gender(*request.Gender),
		Status: openapi.Status(*request.Status),
	}

	s.users[user.ID] = user
	s.nextUserID++

	return user, nil
}

// GetUser returns a user by id.
func (s *MemoryStore) GetUser(id int) (openapi.User, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[id]

	return user, ok
}

// UpdateUser applies the fields present in request to an existing user.
func (s *MemoryStore) UpdateUser(id int, request *userRequest) (openapi.User, []openapi.FieldError, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[id]
	if !ok {
		return openapi.User{}, nil, false
	}

	if errs := validateUser(request, true, func(email string) bool { return s.emailTaken(email, id) }); len(errs) != 0 {
		return openapi.User{}, errs, true
	}

	if request.Name != nil {
		user.Name = *request.Name
	}

	if request.Email != nil {
		user.Email = *request.Email
	}

	if request.Gender != nil {
		user.Gender = openapi.Gender(*request.Gender)
	}

	if request.Status != nil {
		user.Status = openapi.Status(*request.Status)
	}

	s.users[id] = user

	return user, nil, true
}

// DeleteUser removes a user and everything they own.
func (s *MemoryStore) DeleteUser(id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}

	delete(s.users, id)

	for postID, post := range s.posts {
		if post.UserID != nil && *post.UserID == id {
			delete(s.posts, postID)
		}
	}

	return true
}

// CreatePost validates and stores a new post owned by userID.
func (s *MemoryStore) CreatePost(userID *int, request *postRequest) (openapi.Post, []openapi.FieldError) {
	s.lock.Lock()
	defer s.lock.Unlock()

	exists := false

	if userID != nil {
		_, exists = s.users[*userID]
	}

	if errs := validatePost(request, exists); len(errs) != 0 {
		return openapi.Post{}, errs
	}

	post := openapi.Post{
		ID:     s.nextPostID,
		UserID: ptr.To(*userID),
		Title:  *request.Title,
		Body:   *request.Body,
	}

	s.posts[post.ID] = post
	s.nextPostID++

	return post, nil
}

// ListUserPosts returns a user's posts, newest first.
func (s *MemoryStore) ListUserPosts(userID int) []openapi.Post {
	s.lock.Lock()
	defer s.lock.Unlock()

	posts := []openapi.Post{}

	for _, post := range s.posts {
		if post.UserID != nil && *post.UserID == userID {
			posts = append(posts, post)
		}
	}

	slices.SortFunc(posts, func(a, b openapi.Post) int {
		return cmp.Compare(b.ID, a.ID)
	})

	return posts
}
