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

package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmoteca/catalog"
	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/model"
	"github.com/filmoteca/catalog/repository"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	cfg := &database.Config{Connection: *database.DefaultConnectionConfig()}
	cfg.Connection.Type = "sqlite"
	cfg.Connection.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	cfg.Connection.HealthCheckInterval = 0
	cfg.Schema.CreateOnOpen = true

	store, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

func createMovie(t *testing.T, svc *catalog.MovieService, genreID int64, title string, year int, p string) *model.Movie {
	t.Helper()
	movie, err := svc.Create(context.Background(), catalog.MovieCreate{
		Title:    title,
		Director: "Some Director",
		Year:     year,
		GenreID:  genreID,
		Price:    price(p),
	})
	require.NoError(t, err)
	return movie
}

func TestMovieServiceCreateValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	genres := catalog.NewGenreService(store)
	moviesSvc := catalog.NewMovieService(store)

	genre, err := genres.Create(ctx, "Horror")
	require.NoError(t, err)

	valid := catalog.MovieCreate{
		Title:    "The Thing",
		Director: "John Carpenter",
		Year:     1982,
		GenreID:  genre.ID,
		Price:    price("9.50"),
	}

	cases := []struct {
		name   string
		mutate func(*catalog.MovieCreate)
		field  string
	}{
		{"short title", func(m *catalog.MovieCreate) { m.Title = "ab" }, "title"},
		{"empty director", func(m *catalog.MovieCreate) { m.Director = "" }, "director"},
		{"year below range", func(m *catalog.MovieCreate) { m.Year = 1879 }, "year"},
		{"year above range", func(m *catalog.MovieCreate) { m.Year = 2031 }, "year"},
		{"zero price", func(m *catalog.MovieCreate) { m.Price = decimal.Zero }, "price"},
		{"duration out of range", func(m *catalog.MovieCreate) { m.Duration = intPtr(601) }, "duration"},
		{"rating out of range", func(m *catalog.MovieCreate) { m.Rating = intPtr(11) }, "rating"},
		{"unknown genre", func(m *catalog.MovieCreate) { m.GenreID = 9999 }, "genre_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := valid
			tc.mutate(&payload)
			_, err := moviesSvc.Create(ctx, payload)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalid))

			var ve *model.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	// Nothing was persisted by any of the rejected payloads.
	count, err := moviesSvc.Search(ctx, repository.SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, count)

	movie, err := moviesSvc.Create(ctx, valid)
	require.NoError(t, err)
	assert.NotZero(t, movie.ID)
}

func TestMovieServiceSearchPriceRangeValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	moviesSvc := catalog.NewMovieService(store)

	_, err := moviesSvc.Search(ctx, repository.SearchParams{PriceMin: price("-1.00")})
	assert.True(t, errors.Is(err, model.ErrInvalid))

	_, err = moviesSvc.Search(ctx, repository.SearchParams{
		PriceMin: price("10.00"),
		PriceMax: decPtr("5.00"),
	})
	require.Error(t, err)
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "price_min", ve.Field)

	// Equal bounds are a legal, single-price window.
	_, err = moviesSvc.Search(ctx, repository.SearchParams{
		PriceMin: price("5.00"),
		PriceMax: decPtr("5.00"),
	})
	assert.NoError(t, err)
}

func TestMovieServiceReportYearRangeValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	moviesSvc := catalog.NewMovieService(store)

	_, err := moviesSvc.ReportSummary(ctx, catalog.ReportFilter{
		YearFrom: intPtr(2000),
		YearTo:   intPtr(1990),
	})
	require.Error(t, err)
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "year_from", ve.Field)

	// A single bound needs no cross-field check.
	summary, err := moviesSvc.ReportSummary(ctx, catalog.ReportFilter{YearFrom: intPtr(2000)})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalUnits)

	// Equal bounds describe a single year.
	_, err = moviesSvc.ReportSummary(ctx, catalog.ReportFilter{
		YearFrom: intPtr(2000),
		YearTo:   intPtr(2000),
	})
	assert.NoError(t, err)
}

func TestMovieServicePartialUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	genres := catalog.NewGenreService(store)
	moviesSvc := catalog.NewMovieService(store)

	genre, err := genres.Create(ctx, "Crime")
	require.NoError(t, err)
	movie := createMovie(t, moviesSvc, genre.ID, "Fargo", 1996, "8.25")

	// Only the price is present in the payload.
	updated, err := moviesSvc.Update(ctx, movie.ID, catalog.MovieUpdate{Price: decPtr("4.75")})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price("4.75")))

	fetched, err := moviesSvc.GetByIDOrFail(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fargo", fetched.Title)
	assert.Equal(t, "Some Director", fetched.Director)
	assert.Equal(t, 1996, fetched.Year)
	assert.True(t, fetched.Price.Equal(price("4.75")))

	// A merged payload still has to pass full validation.
	_, err = moviesSvc.Update(ctx, movie.ID, catalog.MovieUpdate{Year: intPtr(1700)})
	assert.True(t, errors.Is(err, model.ErrInvalid))

	// The rejected merge left the row untouched.
	fetched, err = moviesSvc.GetByIDOrFail(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 1996, fetched.Year)

	_, err = moviesSvc.Update(ctx, 424242, catalog.MovieUpdate{Price: decPtr("1.00")})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestMovieServiceDeleteDryRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	genres := catalog.NewGenreService(store)
	moviesSvc := catalog.NewMovieService(store)

	genre, err := genres.Create(ctx, "War")
	require.NoError(t, err)
	movie := createMovie(t, moviesSvc, genre.ID, "Come and See", 1985, "6.50")

	require.NoError(t, moviesSvc.DeleteByID(ctx, movie.ID, false))
	still, err := moviesSvc.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	require.NoError(t, moviesSvc.DeleteByID(ctx, movie.ID, true))
	gone, err := moviesSvc.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGenreServiceDuplicateName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	genres := catalog.NewGenreService(store)

	_, err := genres.Create(ctx, "Mystery")
	require.NoError(t, err)

	_, err = genres.Create(ctx, "Mystery")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrPersistence))
	assert.True(t, model.IsConstraintViolation(err))

	_, err = genres.Create(ctx, "")
	assert.True(t, errors.Is(err, model.ErrInvalid))
}

func TestUserServiceCreateAndAuthenticate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	users := catalog.NewUserService(store)

	user, err := users.Create(ctx, catalog.UserCreate{
		Name:     "Ana",
		LastName: "Gomez",
		Email:    "ana@example.com",
		Password: "hunter42!",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	// The plain password never comes back.
	assert.Empty(t, user.Password)

	authed, err := users.Authenticate(ctx, "ana@example.com", "hunter42!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Empty(t, authed.Password)

	// Wrong password and unknown email fail identically.
	_, err = users.Authenticate(ctx, "ana@example.com", "wrong")
	assert.True(t, errors.Is(err, model.ErrNotFound))
	_, err = users.Authenticate(ctx, "nobody@example.com", "hunter42!")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestUserServiceCreateValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	users := catalog.NewUserService(store)

	_, err := users.Create(ctx, catalog.UserCreate{Email: "ana@example.com", Password: "short"})
	require.Error(t, err)
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)

	_, err = users.Create(ctx, catalog.UserCreate{Email: "not-an-email", Password: "hunter42!"})
	require.Error(t, err)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
}
