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

// Institute is one managed institute/branch.
type Institute struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Contact string `json:"contact,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

func (i Institute) GetID() string {
	return i.ID
}

// Location is a teaching venue within an institute.
type Location struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func (l Location) GetID() string {
	return l.ID
}
