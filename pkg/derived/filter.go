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
	"strings"
)

// Filter narrows items to those whose display fields contain query,
// case-insensitively. It returns a rendered subset; the underlying
// collection is untouched. An empty query returns everything.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return append([]T(nil), items...)
	}
	needle := strings.ToLower(query)

	var matched []T
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
