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

// BatchStudentForm enrolls a student into a batch. NumberOfInstallments
// starts at 1 so single-payment enrollments pass validation; the earlier
// dashboard omitted the field from the form state and every submission
// failed its own check.
type BatchStudentForm struct {
	StudentID            string  `json:"studentId" validate:"required"`
	BatchID              string  `json:"batchId" validate:"required"`
	Status               string  `json:"status,omitempty"`
	PayableFees          float64 `json:"payableFees" validate:"gte=0"`
	DiscountComment      string  `json:"discountComment,omitempty"`
	InstallmentType      string  `json:"installmentType,omitempty"`
	NumberOfInstallments int     `json:"numberOfInstallments" validate:"min=1"`
}

// NewBatchStudentForm returns a form with the defaults the enrollment
// page starts from.
func NewBatchStudentForm() BatchStudentForm {
	return BatchStudentForm{
		Status:               "Attending",
		NumberOfInstallments: 1,
	}
}

// ListBatchStudents fetches all enrollments.
func (c *Client) ListBatchStudents(ctx context.Context) ([]structs.BatchStudent, error) {
	var resp struct {
		BatchStudents []structs.BatchStudent `json:"batchStudents"`
	}
	if err := c.api.Get(ctx, "/batch-students", nil, &resp); err != nil {
		return nil, err
	}
	return resp.BatchStudents, nil
}

// CreateBatchStudent enrolls a student.
func (c *Client) CreateBatchStudent(ctx context.Context, form BatchStudentForm) (*structs.BatchStudent, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		BatchStudent structs.BatchStudent `json:"batchStudent"`
	}
	if err := c.api.Post(ctx, "/batch-student", form, &resp); err != nil {
		return nil, err
	}
	return &resp.BatchStudent, nil
}
