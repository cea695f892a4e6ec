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

package model

import (
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/filmoteca/catalog/database"
)

// User is a catalog account. Password always holds a bcrypt hash; services
// blank it before returning a user to callers.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	Name      string     `bun:"name" json:"name"`
	LastName  string     `bun:"last_name" json:"last_name"`
	Address   string     `bun:"address" json:"address"`
	Email     string     `bun:"email,notnull,unique" json:"email"`
	Password  string     `bun:"password" json:"-"`
	Enabled   *bool      `bun:"enabled,default:true" json:"enabled,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at" json:"deleted_at,omitempty"`
}

// Validate checks that the account has a plausible email address.
func (u *User) Validate() error {
	email := strings.TrimSpace(u.Email)
	if email == "" {
		return NewValidationError("email", "must be provided")
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return NewValidationError("email", "must be a valid email address")
	}
	return nil
}

func init() {
	database.RegisterModel(database.NewModelAdapter((*User)(nil), 1))
}
