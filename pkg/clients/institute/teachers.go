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

// TeacherForm is the create/update payload for faculty.
type TeacherForm struct {
	Name    string `validate:"required"`
	Subject string
	Phone   string
	Gender  string
	Address string
	Photo   *apiclient.File
}

func (f TeacherForm) fields() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"subject": f.Subject,
		"phone":   f.Phone,
		"gender":  f.Gender,
		"address": f.Address,
	}
}

func (f TeacherForm) files() []apiclient.File {
	if f.Photo == nil {
		return nil
	}
	return []apiclient.File{*f.Photo}
}

// ListTeachers fetches all faculty.
func (c *Client) ListTeachers(ctx context.Context) ([]structs.Teacher, error) {
	log := logger.Logger(ctx).WithField("resource", "teachers")
	log.Debug("fetching teachers")

	var resp struct {
		Teachers []structs.Teacher `json:"teachers"`
	}
	if err := c.api.Get(ctx, "/teachers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teachers, nil
}

// GetTeacher fetches one faculty record by id.
func (c *Client) GetTeacher(ctx context.Context, id string) (*structs.Teacher, error) {
	var resp struct {
		Teacher structs.Teacher `json:"teacher"`
	}
	if err := c.api.Get(ctx, "/teacher/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Teacher, nil
}

// CreateTeacher submits the faculty form, photo included.
func (c *Client) CreateTeacher(ctx context.Context, form TeacherForm) (*structs.Teacher, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Teacher structs.Teacher `json:"teacher"`
	}
	if err := c.api.PostMultipart(ctx, "/teacher", form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Teacher, nil
}

// UpdateTeacher replaces the teacher's editable fields.
func (c *Client) UpdateTeacher(ctx context.Context, id string, form TeacherForm) (*structs.Teacher, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Teacher structs.Teacher `json:"teacher"`
	}
	if err := c.api.PutMultipart(ctx, "/teacher/"+id, form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Teacher, nil
}

// DeleteTeacher removes the faculty record.
func (c *Client) DeleteTeacher(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete/teacher/"+id, nil, nil)
}
