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

package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.JSONFormatter{})
}

// SetLevel configures the global log level. Unknown levels fall back to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	base.SetLevel(parsed)
}

// Logger returns the entry carried by ctx, or a fresh entry on the shared
// logger when the context has none.
func Logger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(base)
}

// WithFields returns a context whose logger carries the given fields in
// addition to any already present.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return context.WithValue(ctx, ctxKey{}, Logger(ctx).WithFields(fields))
}
