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

// Package api provides integration test utilities for the GoREST API.
//
// # Separate Client Implementation
//
// This package deliberately keeps a hand written HTTP client (APIClient)
// rather than a generated one.  Scenarios need to send payloads a typed
// client would refuse to build, such as an unknown gender or a null title,
// and need direct access to status codes and raw bodies.
//
// The client provides:
//   - W3C trace context propagation for request correlation
//   - Status and body logging through the structured logger
//   - Per request authentication overrides
//   - Optional validation of every response against the embedded contract
//
// # Running
//
// Configuration comes from the environment or a .env file, see LoadTestConfig.
// Setting GOREST_USE_TWIN=true runs the suites against an in-process twin of
// the API instead of the public service.
package api
