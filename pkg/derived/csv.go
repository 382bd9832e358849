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
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// idGetter is satisfied by reference fields; exports flatten them to the
// raw identifier.
type idGetter interface {
	ID() string
}

// ExportCSV serializes the already-loaded records to w. It never fetches:
// a paginated page exports exactly that page. The server identifier
// column is dropped, matching the dashboard's export.
func ExportCSV[T any](w io.Writer, items []T) error {
	t := reflect.TypeOf(*new(T))
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("csv export needs a struct type, got %s", t.Kind())
	}

	var columns []int
	var header []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := columnName(field)
		if name == "" || name == "_id" {
			continue
		}
		columns = append(columns, i)
		header = append(header, name)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, item := range items {
		v := reflect.ValueOf(item)
		row := make([]string, 0, len(columns))
		for _, i := range columns {
			row = append(row, cellValue(v.Field(i)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func columnName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return field.Name
	}
	return strings.Split(tag, ",")[0]
}

func cellValue(v reflect.Value) string {
	if ref, ok := v.Interface().(idGetter); ok {
		return ref.ID()
	}
	switch v.Kind() {
	case reflect.Slice:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, cellValue(v.Index(i)))
		}
		return strings.Join(parts, ";")
	default:
		return fmt.Sprint(v.Interface())
	}
}
