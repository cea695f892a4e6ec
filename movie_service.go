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
	"time"

	"github.com/shopspring/decimal"

	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/model"
	"github.com/filmoteca/catalog/repository"
	"github.com/filmoteca/catalog/types"
	"github.com/filmoteca/catalog/utils"
)

// MovieCreate is the payload for constructing a movie. All required fields
// must be present and within range.
type MovieCreate struct {
	Title       string          `json:"title"`
	Director    string          `json:"director"`
	Year        int             `json:"year"`
	GenreID     int64           `json:"genre_id"`
	Price       decimal.Decimal `json:"price"`
	Duration    *int            `json:"duration,omitempty"`
	Rating      *int            `json:"rating,omitempty"`
	Description *string         `json:"description,omitempty"`
	IsWatched   bool            `json:"is_watched"`
}

// MovieUpdate is a partial-update payload. Only non-nil fields are applied;
// everything else keeps its prior value.
type MovieUpdate struct {
	Title       *string          `json:"title,omitempty"`
	Director    *string          `json:"director,omitempty"`
	Year        *int             `json:"year,omitempty"`
	GenreID     *int64           `json:"genre_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Rating      *int             `json:"rating,omitempty"`
	Description *string          `json:"description,omitempty"`
	IsWatched   *bool            `json:"is_watched,omitempty"`
}

// ReportFilter bundles the optional report inputs. Genre and director are
// substring matches; the year range is inclusive.
type ReportFilter struct {
	Genre    *string `json:"genre,omitempty"`
	Director *string `json:"director,omitempty"`
	YearFrom *int    `json:"year_from,omitempty"`
	YearTo   *int    `json:"year_to,omitempty"`
}

// MovieService validates movie inputs and delegates to the movie repository.
type MovieService struct {
	repo   *repository.MovieRepository
	genres repository.Repository[model.Genre]
	logger *utils.Logger
}

// NewMovieService constructs the movie service over the given store.
func NewMovieService(store *database.Store) *MovieService {
	return &MovieService{
		repo:   repository.NewMovieRepository(store.DB()),
		genres: repository.NewRepository[model.Genre](store.DB(), "genre"),
		logger: utils.NewLogger("SERVICE"),
	}
}

// Create validates the payload and the genre reference, then persists a new
// movie and returns it with its assigned id.
func (s *MovieService) Create(ctx context.Context, data MovieCreate) (*model.Movie, error) {
	movie := &model.Movie{
		Title:       data.Title,
		Director:    data.Director,
		Year:        data.Year,
		GenreID:     data.GenreID,
		Price:       data.Price,
		Duration:    data.Duration,
		Rating:      data.Rating,
		Description: data.Description,
		IsWatched:   data.IsWatched,
	}
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.genres.Exists(ctx, map[string]any{"id": data.GenreID})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewValidationError("genre_id", "must reference an existing genre")
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		s.logger.WithField("title", data.Title).Error("failed to create movie: ", err)
		return nil, err
	}
	return movie, nil
}

// GetByID returns the movie or nil when absent.
func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByIDOrFail returns the movie or a NotFound error.
func (s *MovieService) GetByIDOrFail(ctx context.Context, id int64) (*model.Movie, error) {
	return s.repo.GetByIDOrFail(ctx, id)
}

// Search validates the price range and delegates to the repository search.
func (s *MovieService) Search(ctx context.Context, params repository.SearchParams) ([]*model.Movie, error) {
	if params.PriceMin.IsNegative() {
		return nil, model.NewValidationError("price_min", "must not be negative")
	}
	if params.PriceMax != nil && params.PriceMin.GreaterThan(*params.PriceMax) {
		return nil, model.NewValidationError("price_min", "must not exceed price_max")
	}
	return s.repo.Search(ctx, params)
}

// List returns all movies under the composite three-key ordering.
func (s *MovieService) List(ctx context.Context, params repository.ListParams) ([]*model.Movie, error) {
	return s.repo.ListOrdered(ctx, params)
}

// TopByPrice returns the n most expensive movies.
func (s *MovieService) TopByPrice(ctx context.Context, n int) ([]*model.Movie, error) {
	return s.repo.TopByPrice(ctx, n)
}

// ReportSummary validates the year range, then computes the inventory
// aggregates under the same predicates a search with this filter would use.
func (s *MovieService) ReportSummary(ctx context.Context, filter ReportFilter) (*types.ReportSummary, error) {
	if filter.YearFrom != nil && filter.YearTo != nil && *filter.YearFrom > *filter.YearTo {
		return nil, model.NewValidationError("year_from", "must not exceed year_to")
	}
	return s.repo.ReportSummary(ctx, &repository.MovieFilter{
		Genre:    filter.Genre,
		Director: filter.Director,
		YearFrom: filter.YearFrom,
		YearTo:   filter.YearTo,
	})
}

// Update fetches the movie, applies only the fields present in the payload,
// revalidates, and persists the result.
func (s *MovieService) Update(ctx context.Context, id int64, data MovieUpdate) (*model.Movie, error) {
	movie, err := s.repo.GetByIDOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	if data.Title != nil {
		movie.Title = *data.Title
	}
	if data.Director != nil {
		movie.Director = *data.Director
	}
	if data.Year != nil {
		movie.Year = *data.Year
	}
	if data.GenreID != nil {
		movie.GenreID = *data.GenreID
	}
	if data.Price != nil {
		movie.Price = *data.Price
	}
	if data.Duration != nil {
		movie.Duration = data.Duration
	}
	if data.Rating != nil {
		movie.Rating = data.Rating
	}
	if data.Description != nil {
		movie.Description = data.Description
	}
	if data.IsWatched != nil {
		movie.IsWatched = *data.IsWatched
	}
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	movie.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteByID removes the movie. With confirm=false the existence check runs
// and a NotFound error is still possible, but the row is kept.
func (s *MovieService) DeleteByID(ctx context.Context, id int64, confirm bool) error {
	return s.repo.DeleteByID(ctx, id, confirm)
}
