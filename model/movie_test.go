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
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovie() *Movie {
	return &Movie{
		Title:    "Stalker",
		Director: "Andrei Tarkovsky",
		Year:     1979,
		GenreID:  1,
		Price:    decimal.NewFromInt(10),
	}
}

func TestMovieValidate(t *testing.T) {
	require.NoError(t, validMovie().Validate())

	// Bounds are inclusive on both ends.
	edge := validMovie()
	edge.Year = YearMin
	assert.NoError(t, edge.Validate())
	edge.Year = YearMax
	assert.NoError(t, edge.Validate())

	duration := DurationMax
	edge.Duration = &duration
	rating := RatingMax
	edge.Rating = &rating
	assert.NoError(t, edge.Validate())

	cases := []struct {
		name   string
		mutate func(*Movie)
		field  string
	}{
		{"title too short", func(m *Movie) { m.Title = "ab" }, "title"},
		{"title too long", func(m *Movie) { m.Title = strings.Repeat("x", TitleMaxLen+1) }, "title"},
		{"director empty", func(m *Movie) { m.Director = "" }, "director"},
		{"director too long", func(m *Movie) { m.Director = strings.Repeat("x", DirectorMaxLen+1) }, "director"},
		{"year too early", func(m *Movie) { m.Year = YearMin - 1 }, "year"},
		{"year too late", func(m *Movie) { m.Year = YearMax + 1 }, "year"},
		{"missing genre", func(m *Movie) { m.GenreID = 0 }, "genre_id"},
		{"zero price", func(m *Movie) { m.Price = decimal.Zero }, "price"},
		{"negative price", func(m *Movie) { m.Price = decimal.NewFromInt(-1) }, "price"},
		{"duration too short", func(m *Movie) { d := 0; m.Duration = &d }, "duration"},
		{"duration too long", func(m *Movie) { d := DurationMax + 1; m.Duration = &d }, "duration"},
		{"rating too high", func(m *Movie) { r := RatingMax + 1; m.Rating = &r }, "rating"},
		{"description too long", func(m *Movie) { d := strings.Repeat("x", DescMaxLen+1); m.Description = &d }, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			movie := validMovie()
			tc.mutate(movie)
			err := movie.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestGenreValidate(t *testing.T) {
	assert.NoError(t, (&Genre{Name: "Horror"}).Validate())
	assert.Error(t, (&Genre{}).Validate())
	assert.Error(t, (&Genre{Name: strings.Repeat("x", GenreNameMaxLen+1)}).Validate())
}

func TestUserValidate(t *testing.T) {
	assert.NoError(t, (&User{Email: "ana@example.com"}).Validate())
	for _, email := range []string{"", "   ", "not-an-email", "@example.com", "ana@"} {
		assert.Error(t, (&User{Email: email}).Validate(), "email %q", email)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	nfe := NewNotFoundError("movie", int64(42))
	assert.True(t, errors.Is(nfe, ErrNotFound))
	assert.False(t, errors.Is(nfe, ErrInvalid))
	assert.Contains(t, nfe.Error(), "movie")

	ve := NewValidationError("year", "must be between 1880 and 2030")
	assert.True(t, errors.Is(ve, ErrInvalid))
	assert.False(t, errors.Is(ve, ErrNotFound))

	pe := NewPersistenceError("create genre", errors.New("UNIQUE constraint failed: genres.name"))
	assert.True(t, errors.Is(pe, ErrPersistence))
	assert.True(t, IsConstraintViolation(pe))
	assert.False(t, IsConstraintViolation(ve))
}
