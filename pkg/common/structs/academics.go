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

// Subject carries the per-subject fee the course builder sums from.
type Subject struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	SubjectType string  `json:"subjecttype,omitempty"`
	SubjectFee  float64 `json:"subjectFee,omitempty"`
}

func (s Subject) GetID() string {
	return s.ID
}

// Course groups subjects under a session year; CourseFee is derived from
// the selected subjects, never entered directly.
type Course struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	CourseType  string   `json:"courseType,omitempty"`
	CourseFee   float64  `json:"courseFee,omitempty"`
	SessionYear Ref      `json:"sessionYear,omitempty"`
	SubjectIDs  []string `json:"subjectIds,omitempty"`
}

func (c Course) GetID() string {
	return c.ID
}

// SessionYear bounds course and batch validity.
type SessionYear struct {
	ID          string `json:"_id"`
	YearName    string `json:"yearName,omitempty"`
	StartMonth  string `json:"startMonth,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
	DefaultYear bool   `json:"defaultYear,omitempty"`
}

func (s SessionYear) GetID() string {
	return s.ID
}

// Batch is a cohort of students within a location and session year.
// The backend expects LocationIDs as an array even for a single venue.
type Batch struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	SessionYearID Ref      `json:"sessionYearId,omitempty"`
	LocationIDs   []string `json:"locationId,omitempty"`
}

func (b Batch) GetID() string {
	return b.ID
}

// BatchClass assigns faculty and a time window to a batch.
type BatchClass struct {
	ID                    string   `json:"_id"`
	BatchID               Ref      `json:"batchId,omitempty"`
	FacultyIDs            []string `json:"facultyIds,omitempty"`
	StartDate             string   `json:"startDate,omitempty"`
	ExpectedEndDate       string   `json:"expectedEndDate,omitempty"`
	StartTime             string   `json:"startTime,omitempty"`
	EndTime               string   `json:"endTime,omitempty"`
	AttendanceStartTime   string   `json:"attendanceStartTime,omitempty"`
	AbsenteeNotification  bool     `json:"absenteeNotification,omitempty"`
	PresentNotification   bool     `json:"presentNotification,omitempty"`
	AbsentNotificationTime string  `json:"absentNotificationTime,omitempty"`
	NotificationType      []string `json:"notificationType,omitempty"`
	Status                string   `json:"status,omitempty"`
	Comments              string   `json:"comments,omitempty"`
}

func (b BatchClass) GetID() string {
	return b.ID
}

// BatchStudent enrolls a student into a batch with a fee plan.
type BatchStudent struct {
	ID                   string  `json:"_id"`
	StudentID            Ref     `json:"studentId,omitempty"`
	BatchID              Ref     `json:"batchId,omitempty"`
	Status               string  `json:"status,omitempty"`
	PayableFees          float64 `json:"payableFees,omitempty"`
	DiscountComment      string  `json:"discountComment,omitempty"`
	InstallmentType      string  `json:"installmentType,omitempty"`
	NumberOfInstallments int     `json:"numberOfInstallments,omitempty"`
}

func (b BatchStudent) GetID() string {
	return b.ID
}
