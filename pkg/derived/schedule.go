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

package derived

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edusync-dev/edusync/pkg/clients/institute"
	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// SessionKind selects the recurrence rule of a class session. The kinds
// are mutually exclusive; only the fields relevant to the chosen kind
// survive payload shaping.
type SessionKind string

const (
	KindSingle   SessionKind = "Single"
	KindEveryDay SessionKind = "Every Day"
	KindWeekly   SessionKind = "Weekly"
	KindMonthly  SessionKind = "Monthly"
)

var weekdays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

var ordinals = map[string]bool{
	"First": true, "Second": true, "Third": true, "Fourth": true, "Last": true,
}

// SessionForm is the raw session-creation form before shaping. Fields
// irrelevant to the chosen kind may be filled in by earlier edits; they
// are dropped, not rejected.
type SessionForm struct {
	Kind                SessionKind `validate:"required"`
	BatchClassID        string      `validate:"required"`
	BatchDate           string
	Status              string
	ClassType           string
	SessionMode         string
	SubjectID           string
	TeacherID           string
	AbsentNotification  bool
	PresentNotification bool

	StartDate   string `validate:"required"`
	EndDate     string
	StartTime   string `validate:"required"`
	EndTime     string `validate:"required"`
	WeeklyDays  []string
	RepeatEvery int
	OnDay       int
	OnThe       string
}

var formValidate = validator.New(validator.WithRequiredStructEnabled())

// BuildSessionPayload validates the form for its kind and shapes the
// wire payload so that only the relevant recurrence fields are present.
func BuildSessionPayload(form SessionForm) (*institute.SessionPayload, error) {
	if err := formValidate.Struct(form); err != nil {
		return nil, err
	}

	details := structs.ScheduleDetails{
		SessionType: string(form.Kind),
		StartDate:   form.StartDate,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
	}

	switch form.Kind {
	case KindSingle:
		// one occurrence, no recurrence fields

	case KindEveryDay:
		details.EndDate = form.EndDate

	case KindWeekly:
		if len(form.WeeklyDays) == 0 {
			return nil, fmt.Errorf("weekly sessions need at least one weekday")
		}
		for _, day := range form.WeeklyDays {
			if !weekdays[day] {
				return nil, fmt.Errorf("unknown weekday %q", day)
			}
		}
		if form.RepeatEvery < 1 {
			return nil, fmt.Errorf("repeat interval must be at least 1")
		}
		details.EndDate = form.EndDate
		details.WeeklyDays = form.WeeklyDays
		details.RepeatEvery = form.RepeatEvery

	case KindMonthly:
		if form.RepeatEvery < 1 {
			return nil, fmt.Errorf("repeat interval must be at least 1")
		}
		hasDay := form.OnDay != 0
		hasOrdinal := form.OnThe != ""
		if hasDay == hasOrdinal {
			return nil, fmt.Errorf("monthly sessions need either a day of month or an ordinal weekday, not both")
		}
		if hasDay {
			if form.OnDay < 1 || form.OnDay > 31 {
				return nil, fmt.Errorf("day of month %d out of range", form.OnDay)
			}
			details.OnDay = form.OnDay
		} else {
			if err := validateOrdinal(form.OnThe); err != nil {
				return nil, err
			}
			details.OnThe = form.OnThe
		}
		details.EndDate = form.EndDate
		details.RepeatEvery = form.RepeatEvery

	default:
		return nil, fmt.Errorf("unknown session kind %q", form.Kind)
	}

	return &institute.SessionPayload{
		BatchClassID:        form.BatchClassID,
		BatchDate:           form.BatchDate,
		Status:              form.Status,
		ClassType:           form.ClassType,
		SessionMode:         form.SessionMode,
		SubjectID:           form.SubjectID,
		TeacherID:           form.TeacherID,
		AbsentNotification:  form.AbsentNotification,
		PresentNotification: form.PresentNotification,
		ScheduleDetails:     details,
	}, nil
}

// validateOrdinal checks an ordinal-weekday pair like "Second Monday".
func validateOrdinal(onThe string) error {
	parts := strings.Fields(onThe)
	if len(parts) != 2 || !ordinals[parts[0]] || !weekdays[parts[1]] {
		return fmt.Errorf("invalid ordinal weekday %q", onThe)
	}
	return nil
}
