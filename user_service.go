/*
 * Copyright 2025 filmoteca.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package catalog

import (
	"context"

	"github.com/filmoteca/catalog/auth"
	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/model"
	"github.com/filmoteca/catalog/types"
)

// UserCreate is the payload for registering an account.
type UserCreate struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService exposes the generic lifecycle for accounts plus registration
// with password hashing.
type UserService struct {
	Service[model.User]
}

// NewUserService constructs the user service over the given store.
func NewUserService(store *database.Store) *UserService {
	return &UserService{Service: NewService[model.User](store, "user")}
}

// Create hashes the password, validates, and persists a new account. The
// returned user has its password blanked; the plain value is never stored.
func (s *UserService) Create(ctx context.Context, data UserCreate) (*model.User, error) {
	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, model.NewValidationError("password", err.Error())
	}

	user := &model.User{
		Name:     data.Name,
		LastName: data.LastName,
		Address:  data.Address,
		Email:    data.Email,
		Password: hash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Authenticate checks an email/password pair against the stored hash. The
// same NotFound error covers an unknown email and a wrong password, so
// callers cannot distinguish which one failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	page, err := s.Page(ctx, types.NewPageRequestWithFilter(0, 1, types.NewQueryFilter("email = ?", email)))
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, model.NewNotFoundError("user", email)
	}
	user := page.Items[0]
	if !auth.VerifyPassword(password, user.Password) {
		return nil, model.NewNotFoundError("user", email)
	}
	user.Password = ""
	return user, nil
}
