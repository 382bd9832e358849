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

// Package institute wraps the institute management REST backend, one file
// per resource. Every method takes its credentials from the api client's
// token source and returns the adapter's normalized errors untouched.
package institute

import (
	"github.com/go-playground/validator/v10"

	"github.com/edusync-dev/edusync/pkg/apiclient"
)

// Client groups the per-resource operations against one backend origin.
type Client struct {
	api      *apiclient.Client
	validate *validator.Validate
}

// NewClient builds a Client over the given adapter.
func NewClient(api *apiclient.Client) *Client {
	return &Client{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
