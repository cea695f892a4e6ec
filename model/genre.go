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
	"time"

	"github.com/uptrace/bun"

	"github.com/filmoteca/catalog/database"
)

const GenreNameMaxLen = 50

// Genre groups movies. Deleting a genre never cascades to its movies; the
// foreign key on movies.genre_id is declared NO ACTION.
type Genre struct {
	bun.BaseModel `bun:"table:genres,alias:g"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	Name      string     `bun:"name,notnull,unique" json:"name"`
	Enabled   *bool      `bun:"enabled,default:true" json:"enabled,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at" json:"deleted_at,omitempty"`
}

// Validate checks the genre name bounds.
func (g *Genre) Validate() error {
	if n := len(g.Name); n < 1 || n > GenreNameMaxLen {
		return NewValidationError("name", "must be between 1 and 50 characters")
	}
	return nil
}

func init() {
	database.RegisterModel(database.NewModelAdapter((*Genre)(nil), 1))
}
