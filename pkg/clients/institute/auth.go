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

package institute

import (
	"context"
	"fmt"

	"github.com/edusync-dev/edusync/pkg/common/structs"
	"github.com/edusync-dev/edusync/pkg/logger"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the principal the backend issues on successful login.
type LoginResult struct {
	User  structs.User `json:"user"`
	Token string       `json:"token"`
	Role  string       `json:"role"`
}

// Login exchanges credentials for a user, token and role. Token issuance
// itself is owned by the backend.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	log := logger.Logger(ctx).WithField("resource", "auth")

	if err := c.validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("invalid credentials form: %w", err)
	}

	var result LoginResult
	if err := c.api.Post(ctx, "/auth/login", creds, &result); err != nil {
		log.WithError(err).Warn("login failed")
		return nil, err
	}
	log.WithField("role", result.Role).Info("logged in")
	return &result, nil
}
