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

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
)

// File is one uploaded part of a multipart form (student photo,
// institute logo).
type File struct {
	Field   string
	Name    string
	Content io.Reader
}

// PostMultipart issues a POST with multipart/form-data encoding. Field
// order is made deterministic so request bodies are reproducible in tests.
func (c *Client) PostMultipart(ctx context.Context, path string,
	fields map[string]string, files []File, out interface{}) error {
	return c.doMultipart(ctx, http.MethodPost, path, fields, files, out)
}

// PutMultipart issues a PUT with multipart/form-data encoding.
func (c *Client) PutMultipart(ctx context.Context, path string,
	fields map[string]string, files []File, out interface{}) error {
	return c.doMultipart(ctx, http.MethodPut, path, fields, files, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string,
	fields map[string]string, files []File, out interface{}) error {

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return fmt.Errorf("writing form field %q: %w", name, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("creating form file %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("copying form file %q: %w", f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	return c.do(ctx, method, path, nil, w.FormDataContentType(), &buf, out)
}
