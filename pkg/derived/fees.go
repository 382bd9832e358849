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

// Package derived holds page-local computations layered on top of the
// fetched collections: fee totals, recurrence payload shaping, free-text
// filtering and CSV export. Nothing here mutates a store.
package derived

import (
	"github.com/edusync-dev/edusync/pkg/common/structs"
)

// FeeCalculator tracks the subject selection in the course builder and
// derives the course fee from it. The total is read-only in the UI; it
// is never entered directly.
type FeeCalculator struct {
	order    []string
	fees     map[string]float64
	selected map[string]bool
}

// NewFeeCalculator seeds the calculator with the fetched subjects.
func NewFeeCalculator(subjects []structs.Subject) *FeeCalculator {
	f := &FeeCalculator{
		fees:     make(map[string]float64, len(subjects)),
		selected: make(map[string]bool, len(subjects)),
	}
	for _, s := range subjects {
		f.order = append(f.order, s.ID)
		f.fees[s.ID] = s.SubjectFee
	}
	return f
}

// Toggle flips a subject in or out of the selection. Unknown identifiers
// are ignored.
func (f *FeeCalculator) Toggle(subjectID string) {
	if _, ok := f.fees[subjectID]; !ok {
		return
	}
	if f.selected[subjectID] {
		delete(f.selected, subjectID)
		return
	}
	f.selected[subjectID] = true
}

// Selected returns the selected subject identifiers in subject-list order.
func (f *FeeCalculator) Selected() []string {
	var ids []string
	for _, id := range f.order {
		if f.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Total is the derived course fee: the sum of every selected subject's
// fee.
func (f *FeeCalculator) Total() float64 {
	var total float64
	for id, on := range f.selected {
		if on {
			total += f.fees[id]
		}
	}
	return total
}
