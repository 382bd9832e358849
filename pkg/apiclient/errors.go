/*
Copyright 2025.

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

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrTransport marks failures where no usable response was received.
var ErrTransport = errors.New("transport failure")

// genericMessage is shown when the backend returned a non-2xx status
// without a parsable message field.
const genericMessage = "request failed"

// APIError is the normalized shape of every non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether the failure should route the user to a
// login or unauthorized view instead of an inline form error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err into an *APIError when the failure came from a
// backend response rather than the transport.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// serverMessage extracts the backend's message from an error body. The
// backend is inconsistent about the field name, so both are tried.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Err != "" {
			return payload.Err
		}
	}
	return genericMessage
}
