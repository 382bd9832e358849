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

	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// AttendanceQuery filters the attendance listing. Zero-value fields are
// omitted from the request.
type AttendanceQuery struct {
	SessionID        string
	StudentID        string
	AttendanceSource string
	AttendanceType   string
	Page             int
	Limit            int
}

func (q AttendanceQuery) values() url.Values {
	vals := url.Values{}
	if q.SessionID != "" {
		vals.Set("sessionId", q.SessionID)
	}
	if q.StudentID != "" {
		vals.Set("studentId", q.StudentID)
	}
	if q.AttendanceSource != "" {
		vals.Set("attendanceSource", q.AttendanceSource)
	}
	if q.AttendanceType != "" {
		vals.Set("attendanceType", q.AttendanceType)
	}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	return vals
}

// AttendancePage is one server page of attendance records.
type AttendancePage struct {
	AttendanceRecords []structs.Attendance `json:"attendanceRecords"`
	Pagination        struct {
		CurrentPage  int `json:"currentPage"`
		TotalPages   int `json:"totalPages"`
		TotalRecords int `json:"totalRecords"`
	} `json:"pagination"`
}

// AttendanceForm marks a student present or absent for a session.
type AttendanceForm struct {
	SessionID        string   `json:"sessionId" validate:"required"`
	StudentID        string   `json:"studentId" validate:"required"`
	AttendanceType   string   `json:"attendanceType" validate:"required"`
	AttendanceSource string   `json:"source,omitempty"`
	AttendanceDate   string   `json:"attendanceDate,omitempty"`
	AttendanceTime   string   `json:"attendanceTime,omitempty"`
	NotificationSent []string `json:"notificationSent,omitempty"`
}

// ListAttendance fetches one page of attendance records matching the
// filters.
func (c *Client) ListAttendance(ctx context.Context, q AttendanceQuery) (*AttendancePage, error) {
	var page AttendancePage
	if err := c.api.Get(ctx, "/attendances", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateAttendance records one attendance mark.
func (c *Client) CreateAttendance(ctx context.Context, form AttendanceForm) (*structs.Attendance, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Attendance structs.Attendance `json:"attendance"`
	}
	if err := c.api.Post(ctx, "/attendance", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Attendance, nil
}

// UpdateAttendance corrects an attendance mark.
func (c *Client) UpdateAttendance(ctx context.Context, id string, form AttendanceForm) (*structs.Attendance, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Attendance structs.Attendance `json:"attendance"`
	}
	if err := c.api.Put(ctx, "/attendance/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.Attendance, nil
}

// DeleteAttendance removes an attendance mark.
func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/attendance/"+id, nil, nil)
}
