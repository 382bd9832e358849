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

// SessionPayload is the shaped create/update body for a class session.
// derived.BuildSessionPayload produces it from the session form; only the
// recurrence fields relevant to the chosen session type survive shaping.
type SessionPayload struct {
	BatchClassID        string                  `json:"batchClassId"`
	BatchDate           string                  `json:"batchDate,omitempty"`
	Status              string                  `json:"status,omitempty"`
	ClassType           string                  `json:"classType,omitempty"`
	SessionMode         string                  `json:"sessionMode,omitempty"`
	SubjectID           string                  `json:"subjectId,omitempty"`
	TeacherID           string                  `json:"teacherId,omitempty"`
	AbsentNotification  bool                    `json:"absentNotification"`
	PresentNotification bool                    `json:"presentNotification"`
	ScheduleDetails     structs.ScheduleDetails `json:"scheduleDetails"`
}

// ListSessions fetches all class sessions.
func (c *Client) ListSessions(ctx context.Context) ([]structs.ClassSession, error) {
	log := logger.Logger(ctx).WithField("resource", "sessions")
	log.Debug("fetching sessions")

	var resp struct {
		Sessions []structs.ClassSession `json:"sessions"`
	}
	if err := c.api.Get(ctx, "/sessions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// GetSession fetches one class session by id.
func (c *Client) GetSession(ctx context.Context, id string) (*structs.ClassSession, error) {
	var resp struct {
		Session structs.ClassSession `json:"session"`
	}
	if err := c.api.Get(ctx, "/sessions/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// CreateSession schedules a class session (or recurrence rule).
func (c *Client) CreateSession(ctx context.Context, payload SessionPayload) (*structs.ClassSession, error) {
	var resp struct {
		Session structs.ClassSession `json:"session"`
	}
	if err := c.api.Post(ctx, "/sessions", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// UpdateSession replaces a class session.
func (c *Client) UpdateSession(ctx context.Context, id string, payload SessionPayload) (*structs.ClassSession, error) {
	var resp struct {
		Session structs.ClassSession `json:"session"`
	}
	if err := c.api.Put(ctx, "/sessions/"+id, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// DeleteSession removes a class session.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/sessions/"+id, nil, nil)
}

// ListEligibleStudents fetches the students who can be marked for a
// session's attendance.
func (c *Client) ListEligibleStudents(ctx context.Context, sessionID string) ([]structs.Student, error) {
	var resp struct {
		Students []structs.Student `json:"students"`
	}
	if err := c.api.Get(ctx, "/sessions/"+sessionID+"/eligible-students", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Students, nil
}
