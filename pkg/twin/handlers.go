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
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var request userRequest
	if !decode(w, r, &request) {
		return
	}

	user, errs := s.store.CreateUser(&request)
	if errs != nil {
		JSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	JSON(w, http.StatusCreated, user)
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	user, ok := s.store.GetUser(id)
	if !ok {
		notFound(w)
		return
	}

	JSON(w, http.StatusOK, user)
}

// UpdateUser handles PATCH and PUT /users/{id}.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var request userRequest
	if !decode(w, r, &request) {
		return
	}

	user, errs, ok := s.store.UpdateUser(id, &request)

	switch {
	case !ok:
		notFound(w)
	case errs != nil:
		JSON(w, http.StatusUnprocessableEntity, errs)
	default:
		JSON(w, http.StatusOK, user)
	}
}

// DeleteUser handles DELETE /users/{id}.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok || !s.store.DeleteUser(id) {
		notFound(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUserPosts handles GET /users/{id}/posts.
func (s *Server) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	JSON(w, http.StatusOK, s.store.ListUserPosts(id))
}

// CreateUserPost handles POST /users/{id}/posts, the owner comes from the
// path and any user_id in the body is ignored.
func (s *Server) CreateUserPost(w http.ResponseWriter, r *http.Request) {
	var request postRequest
	if !decode(w, r, &request) {
		return
	}

	var userID *int

	if id, ok := pathID(r); ok {
		userID = &id
	}

	s.createPost(w, userID, &request)
}

// CreatePost handles POST /posts, the owner comes from user_id in the body.
func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	var request postRequest
	if !decode(w, r, &request) {
		return
	}

	s.createPost(w, request.UserID, &request)
}

func (s *Server) createPost(w http.ResponseWriter, userID *int, request *postRequest) {
	post, errs := s.store.CreatePost(userID, request)
	if errs != nil {
		JSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	JSON(w, http.StatusCreated, post)
}
