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

	"github.com/edusync-dev/edusync/pkg/apiclient"
	"github.com/edusync-dev/edusync/pkg/common/structs"
	"github.com/edusync-dev/edusync/pkg/logger"
)

// InstitutePage is one server page of institutes.
type InstitutePage struct {
	Institutes  []structs.Institute `json:"institutes"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
}

// InstituteForm is the create/update payload. Logo rides as a multipart
// file part when present.
type InstituteForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"omitempty,email"`
	Phone   string
	Address string
	Contact string
	Logo    *apiclient.File
}

func (f InstituteForm) fields() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"phone":   f.Phone,
		"address": f.Address,
		"contact": f.Contact,
	}
}

func (f InstituteForm) files() []apiclient.File {
	if f.Logo == nil {
		return nil
	}
	return []apiclient.File{*f.Logo}
}

// ListInstitutes fetches one page of institutes matching the query.
func (c *Client) ListInstitutes(ctx context.Context, q ListQuery) (*InstitutePage, error) {
	log := logger.Logger(ctx).WithField("resource", "institutes")
	log.Debug("fetching institutes")

	var page InstitutePage
	if err := c.api.Get(ctx, "/institutes", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetInstitute fetches one institute by id.
func (c *Client) GetInstitute(ctx context.Context, id string) (*structs.Institute, error) {
	var resp struct {
		Institute structs.Institute `json:"institute"`
	}
	if err := c.api.Get(ctx, "/institute/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Institute, nil
}

// CreateInstitute submits the institute form, logo included.
func (c *Client) CreateInstitute(ctx context.Context, form InstituteForm) (*structs.Institute, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Institute structs.Institute `json:"institute"`
	}
	if err := c.api.PostMultipart(ctx, "/institute", form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Institute, nil
}

// UpdateInstitute replaces the institute's editable fields.
func (c *Client) UpdateInstitute(ctx context.Context, id string, form InstituteForm) (*structs.Institute, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Institute structs.Institute `json:"institute"`
	}
	if err := c.api.PutMultipart(ctx, "/institute/"+id, form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Institute, nil
}

// DeleteInstitute removes the institute record.
func (c *Client) DeleteInstitute(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/institute/"+id, nil, nil)
}
