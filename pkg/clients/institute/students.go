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
	"net/url"
	"strconv"

	"github.com/edusync-dev/edusync/pkg/apiclient"
	"github.com/edusync-dev/edusync/pkg/common/structs"
	"github.com/edusync-dev/edusync/pkg/logger"
)

// ListQuery carries server-side pagination and search parameters.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Filter string
}

func (q ListQuery) values() url.Values {
	vals := url.Values{}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.Filter != "" {
		vals.Set("filter", q.Filter)
	}
	return vals
}

// StudentPage is one server page of students.
type StudentPage struct {
	Students    []structs.Student `json:"students"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// StudentForm is the create/update payload. Photo rides as a multipart
// file part when present.
type StudentForm struct {
	Name         string `validate:"required"`
	FatherName   string
	MotherName   string
	Gender       string
	StudentPhone string
	FatherPhone  string
	MotherPhone  string
	Email        string `validate:"omitempty,email"`
	DOB          string
	Address      string
	Photo        *apiclient.File
}

func (f StudentForm) fields() map[string]string {
	return map[string]string{
		"name":         f.Name,
		"fatherName":   f.FatherName,
		"motherName":   f.MotherName,
		"gender":       f.Gender,
		"studentPhone": f.StudentPhone,
		"fatherPhone":  f.FatherPhone,
		"motherPhone":  f.MotherPhone,
		"email":        f.Email,
		"dob":          f.DOB,
		"address":      f.Address,
	}
}

func (f StudentForm) files() []apiclient.File {
	if f.Photo == nil {
		return nil
	}
	return []apiclient.File{*f.Photo}
}

// ListStudents fetches one page of students matching the query.
func (c *Client) ListStudents(ctx context.Context, q ListQuery) (*StudentPage, error) {
	log := logger.Logger(ctx).WithField("resource", "students")
	log.Debug("fetching students")

	var page StudentPage
	if err := c.api.Get(ctx, "/students", q.values(), &page); err != nil {
		return nil, err
	}
	log.WithField("count", len(page.Students)).Debug("fetched students")
	return &page, nil
}

// CreateStudent submits the admission form, photo included.
func (c *Client) CreateStudent(ctx context.Context, form StudentForm) (*structs.Student, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Student structs.Student `json:"student"`
	}
	if err := c.api.PostMultipart(ctx, "/student", form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Student, nil
}

// UpdateStudent replaces the student's editable fields.
func (c *Client) UpdateStudent(ctx context.Context, id string, form StudentForm) (*structs.Student, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Student structs.Student `json:"student"`
	}
	if err := c.api.PutMultipart(ctx, "/update/student/"+id, form.fields(), form.files(), &resp); err != nil {
		return nil, err
	}
	return &resp.Student, nil
}

// DeleteStudent removes the student record.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete/student/"+id, nil, nil)
}
