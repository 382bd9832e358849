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

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref is a foreign-key field. The backend returns it either as a raw
// identifier string or, when it has joined the relation, as an expanded
// sub-object carrying "_id". Callers branch on Resolved instead of
// shape-sniffing at every use site.
type Ref struct {
	id  string
	raw json.RawMessage
}

// RefID builds an unresolved reference from a raw identifier.
func RefID(id string) Ref {
	return Ref{id: id}
}

// ID returns the referenced identifier regardless of expansion state.
func (r Ref) ID() string {
	return r.id
}

// Resolved reports whether the backend supplied the expanded sub-object.
func (r Ref) Resolved() bool {
	return len(r.raw) > 0
}

// Expand unmarshals the expanded sub-object into out. It fails when the
// backend only sent the raw identifier.
func (r Ref) Expand(out interface{}) error {
	if !r.Resolved() {
		return fmt.Errorf("ref %q is not expanded", r.id)
	}
	return json.Unmarshal(r.raw, out)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{id: id}
		return nil
	}
	var envelope struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("ref: unexpected shape: %w", err)
	}
	*r = Ref{id: envelope.ID, raw: append(json.RawMessage(nil), data...)}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Resolved() {
		return r.raw, nil
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}
