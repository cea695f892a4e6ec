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

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/filmoteca/catalog/database"
)

// Field range bounds enforced before persistence. Violations are rejected,
// never clamped.
const (
	TitleMinLen    = 3
	TitleMaxLen    = 255
	DirectorMaxLen = 100
	YearMin        = 1880
	YearMax        = 2030
	DurationMin    = 1
	DurationMax    = 600
	RatingMin      = 0
	RatingMax      = 10
	DescMaxLen     = 1000
)

// Movie is one catalog entry. Duplicate rows with the same title and director
// represent additional stock units of the same release.
type Movie struct {
	bun.BaseModel `bun:"table:movies,alias:m"`

	ID          int64           `bun:"id,pk,autoincrement" json:"id"`
	Title       string          `bun:"title,notnull" json:"title"`
	Director    string          `bun:"director,notnull" json:"director"`
	Year        int             `bun:"year,notnull" json:"year"`
	GenreID     int64           `bun:"genre_id,notnull" json:"genre_id"`
	Genre       *Genre          `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
	Price       decimal.Decimal `bun:"price,notnull,type:numeric(10,2)" json:"price"`
	Duration    *int            `bun:"duration" json:"duration,omitempty"`
	Rating      *int            `bun:"rating" json:"rating,omitempty"`
	Description *string         `bun:"description,type:varchar(1000)" json:"description,omitempty"`
	IsWatched   bool            `bun:"is_watched,notnull,default:false" json:"is_watched"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Validate checks every field-range invariant of the movie. The first
// violation found is returned as a *ValidationError.
func (m *Movie) Validate() error {
	if n := len(m.Title); n < TitleMinLen || n > TitleMaxLen {
		return NewValidationError("title", "must be between 3 and 255 characters")
	}
	if n := len(m.Director); n < 1 || n > DirectorMaxLen {
		return NewValidationError("director", "must be between 1 and 100 characters")
	}
	if m.Year < YearMin || m.Year > YearMax {
		return NewValidationError("year", "must be between 1880 and 2030")
	}
	if m.GenreID <= 0 {
		return NewValidationError("genre_id", "must reference an existing genre")
	}
	if !m.Price.IsPositive() {
		return NewValidationError("price", "must be greater than zero")
	}
	if m.Duration != nil && (*m.Duration < DurationMin || *m.Duration > DurationMax) {
		return NewValidationError("duration", "must be between 1 and 600")
	}
	if m.Rating != nil && (*m.Rating < RatingMin || *m.Rating > RatingMax) {
		return NewValidationError("rating", "must be between 0 and 10")
	}
	if m.Description != nil && len(*m.Description) > DescMaxLen {
		return NewValidationError("description", "must not exceed 1000 characters")
	}
	return nil
}

func init() {
	// Genres are created before movies so the genre_id constraint can attach.
	database.RegisterModel(database.NewModelAdapter((*Movie)(nil), 10))
}
