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

// BatchClassPage is one server page of batch classes.
type BatchClassPage struct {
	BatchClasses []structs.BatchClass `json:"batchClasses"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
}

// BatchClassForm assigns faculty and a time window to a batch.
type BatchClassForm struct {
	BatchID                string   `json:"batchId" validate:"required"`
	FacultyIDs             []string `json:"facultyIds" validate:"min=1"`
	StartDate              string   `json:"startDate" validate:"required"`
	ExpectedEndDate        string   `json:"expectedEndDate,omitempty"`
	StartTime              string   `json:"startTime" validate:"required"`
	EndTime                string   `json:"endTime" validate:"required"`
	AttendanceStartTime    string   `json:"attendanceStartTime,omitempty"`
	AbsenteeNotification   bool     `json:"absenteeNotification"`
	PresentNotification    bool     `json:"presentNotification"`
	AbsentNotificationTime string   `json:"absentNotificationTime,omitempty"`
	NotificationType       []string `json:"notificationType,omitempty"`
	Status                 string   `json:"status,omitempty"`
	Comments               string   `json:"comments,omitempty"`
}

// ListBatchClasses fetches one page of batch classes. The endpoint keeps
// the backend's spelling.
func (c *Client) ListBatchClasses(ctx context.Context, q ListQuery) (*BatchClassPage, error) {
	var page BatchClassPage
	if err := c.api.Get(ctx, "/batch-classess", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateBatchClass adds a faculty/time assignment.
func (c *Client) CreateBatchClass(ctx context.Context, form BatchClassForm) (*structs.BatchClass, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		BatchClass structs.BatchClass `json:"batchClass"`
	}
	if err := c.api.Post(ctx, "/batch-class", form, &resp); err != nil {
		return nil, err
	}
	return &resp.BatchClass, nil
}

// UpdateBatchClass replaces an assignment's fields.
func (c *Client) UpdateBatchClass(ctx context.Context, id string, form BatchClassForm) (*structs.BatchClass, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		BatchClass structs.BatchClass `json:"batchClass"`
	}
	if err := c.api.Put(ctx, "/batch-class/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.BatchClass, nil
}

// DeleteBatchClass removes an assignment.
func (c *Client) DeleteBatchClass(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/batch-class/"+id, nil, nil)
}
