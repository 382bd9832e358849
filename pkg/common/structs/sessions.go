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

package structs

// ScheduleDetails describes when a class session (or its recurrence rule)
// takes place. Only the fields relevant to the session type are populated;
// the rest stay zero and are dropped from the wire payload.
type ScheduleDetails struct {
	SessionType string   `json:"sessionType"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	WeeklyDays  []string `json:"weeklyDays,omitempty"`
	RepeatEvery int      `json:"repeatEvery,omitempty"`
	OnDay       int      `json:"onDay,omitempty"`
	OnThe       string   `json:"onThe,omitempty"`
}

// ClassSession is one scheduled occurrence (or recurrence rule) of
// instruction for a batch class.
type ClassSession struct {
	ID                  string          `json:"_id"`
	BatchClassID        Ref             `json:"batchClassId,omitempty"`
	BatchDate           string          `json:"batchDate,omitempty"`
	Status              string          `json:"status,omitempty"`
	ClassType           string          `json:"classType,omitempty"`
	SessionMode         string          `json:"sessionMode,omitempty"`
	SubjectID           Ref             `json:"subjectId,omitempty"`
	TeacherID           Ref             `json:"teacherId,omitempty"`
	AbsentNotification  bool            `json:"absentNotification,omitempty"`
	PresentNotification bool            `json:"presentNotification,omitempty"`
	ScheduleDetails     ScheduleDetails `json:"scheduleDetails,omitempty"`
}

func (c ClassSession) GetID() string {
	return c.ID
}

// Attendance is one attendance mark for a student in a session.
type Attendance struct {
	ID               string   `json:"_id"`
	SessionID        Ref      `json:"sessionId,omitempty"`
	StudentID        Ref      `json:"studentId,omitempty"`
	AttendanceType   string   `json:"attendanceType,omitempty"`
	AttendanceSource string   `json:"attendanceSource,omitempty"`
	AttendanceDate   string   `json:"attendanceDate,omitempty"`
	AttendanceTime   string   `json:"attendanceTime,omitempty"`
	NotificationSent []string `json:"notificationSent,omitempty"`
}

func (a Attendance) GetID() string {
	return a.ID
}
