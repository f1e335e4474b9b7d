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

// Package twin is an in-memory implementation of the GoREST users and posts
// API.  It mirrors the status codes, bodies and validation ordering of the
// real service closely enough to run the conformance suite without network
// access.
package twin

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gorest-qa/conformance/pkg/logging"
	"github.com/gorest-qa/conformance/pkg/openapi"
)

// DefaultToken is accepted when no token is configured.
const DefaultToken = "twin-token"

// Options configure a twin.
type Options struct {
	// Token is the only bearer token accepted.
	Token string

	// Logger receives request logs at debug level.
	Logger *logging.Logger
}

// Server is the twin's HTTP handler.
type Server struct {
	store  *MemoryStore
	token  string
	logger *logging.Logger
	router *chi.Mux
}

// New creates a twin with an empty store.
func New(options Options) *Server {
	s := &Server{
		store:  NewMemoryStore(),
		token:  options.Token,
		logger: options.Logger,
	}

	if s.token == "" {
		s.token = DefaultToken
	}

	if s.logger == nil {
		s.logger = logging.Nop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLog)
	r.Use(s.bearerAuth)

	s.routes(r)
	s.router = r

	return s
}

// Store exposes the backing store for inspection in tests.
func (s *Server) Store() *MemoryStore {
	return s.store
}

// Token returns the accepted bearer token.
func (s *Server) Token() string {
	return s.token
}

// ServeHTTP implements http.Handler so the twin can be mounted in httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.CreateUser)
		r.Get("/{id}", s.GetUser)
		r.Patch("/{id}", s.UpdateUser)
		r.Put("/{id}", s.UpdateUser)
		r.Delete("/{id}", s.DeleteUser)
		r.Get("/{id}/posts", s.ListUserPosts)
		r.Post("/{id}/posts", s.CreateUserPost)
	})

	r.Post("/posts", s.CreatePost)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debugf("twin %s %s status=%d duration=%s request_id=%s", r.Method, r.URL.Path, ww.Status(), time.Since(start), chimw.GetReqID(r.Context()))
	})
}

// bearerAuth lets anonymous reads through, as the public service does, but
// requires a valid token on writes.  A token that is present is always checked.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		if header == "" {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			JSON(w, http.StatusUnauthorized, openapi.Message{Message: openapi.MessageAuthFailed})

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != s.token {
			JSON(w, http.StatusUnauthorized, openapi.Message{Message: openapi.MessageInvalidToken})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func notFound(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, openapi.Message{Message: openapi.MessageNotFound})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		JSON(w, http.StatusBadRequest, openapi.Message{Message: openapi.MessageMalformedInput})
		return false
	}

	return true
}
