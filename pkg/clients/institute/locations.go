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

// LocationForm is the create/update payload for a venue.
type LocationForm struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
}

// ListLocations fetches all venues.
func (c *Client) ListLocations(ctx context.Context) ([]structs.Location, error) {
	var resp struct {
		Locations []structs.Location `json:"locations"`
	}
	if err := c.api.Get(ctx, "/locations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// CreateLocation adds a venue.
func (c *Client) CreateLocation(ctx context.Context, form LocationForm) (*structs.Location, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Location structs.Location `json:"location"`
	}
	if err := c.api.Post(ctx, "/location", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// UpdateLocation replaces a venue's fields.
func (c *Client) UpdateLocation(ctx context.Context, id string, form LocationForm) (*structs.Location, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Location structs.Location `json:"location"`
	}
	if err := c.api.Put(ctx, "/location/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// DeleteLocation removes a venue.
func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/location/"+id, nil, nil)
}
