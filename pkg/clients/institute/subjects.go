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

// SubjectForm is the create/update payload for a subject.
type SubjectForm struct {
	Name        string  `json:"name" validate:"required"`
	SubjectType string  `json:"subjecttype,omitempty"`
	SubjectFee  float64 `json:"subjectFee" validate:"gte=0"`
}

// ListSubjects fetches all subjects.
func (c *Client) ListSubjects(ctx context.Context) ([]structs.Subject, error) {
	var resp struct {
		Subjects []structs.Subject `json:"subjects"`
	}
	if err := c.api.Get(ctx, "/subjects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subjects, nil
}

// CreateSubject adds a subject.
func (c *Client) CreateSubject(ctx context.Context, form SubjectForm) (*structs.Subject, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Subject structs.Subject `json:"subject"`
	}
	if err := c.api.Post(ctx, "/create_subject", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Subject, nil
}

// UpdateSubject replaces a subject's fields.
func (c *Client) UpdateSubject(ctx context.Context, id string, form SubjectForm) (*structs.Subject, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Subject structs.Subject `json:"subject"`
	}
	if err := c.api.Put(ctx, "/update_subject/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.Subject, nil
}

// DeleteSubject removes a subject.
func (c *Client) DeleteSubject(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete_subject/"+id, nil, nil)
}
