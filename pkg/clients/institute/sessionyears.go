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

package institute

import (
	"context"

	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// SessionYearForm is the create/update payload for an academic year.
type SessionYearForm struct {
	StartMonth  string `json:"startMonth" validate:"required"`
	StartYear   string `json:"startYear" validate:"required"`
	EndYear     string `json:"endYear" validate:"required"`
	DefaultYear bool   `json:"defaultYear"`
}

// ListSessionYears fetches all academic years.
func (c *Client) ListSessionYears(ctx context.Context) ([]structs.SessionYear, error) {
	var years []structs.SessionYear
	if err := c.api.Get(ctx, "/session-years", nil, &years); err != nil {
		return nil, err
	}
	return years, nil
}

// CreateSessionYear adds an academic year.
func (c *Client) CreateSessionYear(ctx context.Context, form SessionYearForm) (*structs.SessionYear, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		SessionYear structs.SessionYear `json:"sessionYear"`
	}
	if err := c.api.Post(ctx, "/create-session-year", form, &resp); err != nil {
		return nil, err
	}
	return &resp.SessionYear, nil
}

// UpdateSessionYear replaces an academic year's fields.
func (c *Client) UpdateSessionYear(ctx context.Context, id string, form SessionYearForm) (*structs.SessionYear, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		SessionYear structs.SessionYear `json:"sessionYear"`
	}
	if err := c.api.Put(ctx, "/update-session-year/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.SessionYear, nil
}

// DeleteSessionYear removes an academic year.
func (c *Client) DeleteSessionYear(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete-session-year/"+id, nil, nil)
}
