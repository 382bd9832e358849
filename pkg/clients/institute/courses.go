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
	"github.com/edusync-dev/edusync/pkg/logger"
)

// CourseForm is the create/update payload. CourseFee is the derived sum
// of the selected subjects' fees (see derived.FeeCalculator); the backend
// rejects forms without subjects.
type CourseForm struct {
	Name        string   `json:"name" validate:"required"`
	CourseType  string   `json:"courseType,omitempty"`
	CourseFee   float64  `json:"courseFee" validate:"gte=0"`
	SessionYear string   `json:"sessionYear" validate:"required"`
	SubjectIDs  []string `json:"subjectIds" validate:"min=1"`
}

// ListCourses fetches all courses.
func (c *Client) ListCourses(ctx context.Context) ([]structs.Course, error) {
	var resp struct {
		Courses []structs.Course `json:"courses"`
	}
	if err := c.api.Get(ctx, "/courses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// CreateCourse adds a course.
func (c *Client) CreateCourse(ctx context.Context, form CourseForm) (*structs.Course, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Course structs.Course `json:"course"`
	}
	if err := c.api.Post(ctx, "/create_course", form, &resp); err != nil {
		return nil, err
	}
	return &resp.Course, nil
}

// UpdateCourse replaces a course's fields.
func (c *Client) UpdateCourse(ctx context.Context, id string, form CourseForm) (*structs.Course, error) {
	if err := c.validate.Struct(form); err != nil {
		return nil, err
	}
	var resp struct {
		Course structs.Course `json:"course"`
	}
	if err := c.api.Put(ctx, "/update_course/"+id, form, &resp); err != nil {
		return nil, err
	}
	return &resp.Course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/delete_course/"+id, nil, nil)
}

// --- batch association sub-resource ---

// ListCourseBatches fetches the batches associated with a course.
func (c *Client) ListCourseBatches(ctx context.Context, courseID string) ([]structs.Batch, error) {
	log := logger.Logger(ctx).WithField("resource", "course-batches")
	log.Debug("fetching batches for course")

	var resp struct {
		Batches []structs.Batch `json:"batches"`
	}
	if err := c.api.Get(ctx, "/batchebycourse/"+courseID+"/batches", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Batches, nil
}

// AddCourseBatches associates batches with a course.
func (c *Client) AddCourseBatches(ctx context.Context, courseID string, batchIDs []string) ([]structs.Batch, error) {
	body := map[string]interface{}{
		"courseId": courseID,
		"batchIds": batchIDs,
	}
	var resp struct {
		Batches []structs.Batch `json:"batches"`
	}
	if err := c.api.Post(ctx, "/add-batches", body, &resp); err != nil {
		return nil, err
	}
	return resp.Batches, nil
}

// RemoveCourseBatch detaches one batch from a course. The backend models
// this as a DELETE with a body.
func (c *Client) RemoveCourseBatch(ctx context.Context, courseID, batchID string) error {
	body := map[string]string{
		"courseId": courseID,
		"batchId":  batchID,
	}
	return c.api.Delete(ctx, "/remove-batch", body, nil)
}
