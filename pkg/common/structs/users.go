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

// User is the authenticated principal returned by the login endpoint.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) GetID() string {
	return u.ID
}

// Student is one learner record. BatchID may arrive raw or expanded
// depending on whether the backend joined the batch relation.
type Student struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	FatherName   string `json:"fatherName,omitempty"`
	MotherName   string `json:"motherName,omitempty"`
	Gender       string `json:"gender,omitempty"`
	StudentPhone string `json:"studentPhone,omitempty"`
	FatherPhone  string `json:"fatherPhone,omitempty"`
	MotherPhone  string `json:"motherPhone,omitempty"`
	Email        string `json:"email,omitempty"`
	DOB          string `json:"dob,omitempty"`
	Address      string `json:"address,omitempty"`
	Photo        string `json:"photo,omitempty"`
	BatchID      Ref    `json:"batchId,omitempty"`
}

func (s Student) GetID() string {
	return s.ID
}

// Teacher is one faculty record.
type Teacher struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Subject string `json:"subject,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Address string `json:"address,omitempty"`
	Photo   string `json:"photo,omitempty"`
}

func (t Teacher) GetID() string {
	return t.ID
}
