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

// BatchForm is the create payload for a cohort. The backend expects the
// location as a one-element array.
type BatchForm struct {
	Name          string   `json:"name" validate:"required"`
	SessionYearID string   `json:"sessionYearId" validate:"required"`
	LocationIDs   []string `json:"locationId" validate:"min=1"`
}

// ListBatches fetches all cohorts.
func (c *Client) ListBatches(ctx context.Context) ([]structs.Batch, error) {
	var resp struct {
		Batches []structs.Batch `json:"batches"`
	}
	if err := c.api.Get(ctx, "/batches", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Batches, nil
}

// CreateBatch adds a cohort.
func (c *Client) CreateBatch(ctx context.Context, form BatchForm) (*structs.Batch, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Batch structs.Batch `json:"batch"`
	}
	if err := c.api.Post(ctx, "/create-batch", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Batch, nil
}

// DeleteBatch removes a cohort.
func (c *Client) DeleteBatch(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete-batch/"+id, nil, nil)
}
