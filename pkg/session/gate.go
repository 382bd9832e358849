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

package session

// Decision tells the page renderer what to do with a route request.
type Decision int

const (
	// Allow renders the requested page.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated user to the login view.
	RedirectLogin
	// RedirectUnauthorized sends an authenticated user whose role is not
	// permitted to the unauthorized view.
	RedirectUnauthorized
)

// Gate evaluates a route's permitted roles against the current session.
// An empty permitted set admits any authenticated user.
func (s *Store) Gate(permitted ...string) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snap.IsAuthenticated {
		return RedirectLogin
	}
	if len(permitted) == 0 {
		return Allow
	}
	for _, role := range permitted {
		if role == s.snap.Role {
			return Allow
		}
	}
	return RedirectUnauthorized
}
