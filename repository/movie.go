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

package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/filmoteca/catalog/model"
	"github.com/filmoteca/catalog/types"
)

const defaultTopN = 5

// MovieFilter is the one predicate specification shared by every movie query
// path. Search and ReportSummary both consume it, so a report computed for a
// filter and a search using the same filter can never diverge in which rows
// they consider matching.
//
// Nil pointers mean "unset". Zero values held by non-nil pointers are real
// bounds: PriceMax of 0 filters to free movies, it does not disable the bound.
type MovieFilter struct {
	// Search matches case-insensitively as a substring against title,
	// director, and genre name, combined with OR.
	Search *string

	// Genre and Director are case-insensitive substring matches on their
	// respective single fields.
	Genre    *string
	Director *string

	// YearFrom and YearTo form an inclusive year range.
	YearFrom *int
	YearTo   *int

	// PriceMin is always applied; the zero value keeps every positive price.
	PriceMin decimal.Decimal
	PriceMax *decimal.Decimal
}

// Apply adds the filter's predicates to a movie select query. The query must
// join genres under the alias "genre" when Search or Genre is set.
func (f *MovieFilter) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	if f == nil {
		return q
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		pattern := containsPattern(*f.Search)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("lower(m.title) LIKE ?", pattern).
				WhereOr("lower(m.director) LIKE ?", pattern).
				WhereOr("lower(genre.name) LIKE ?", pattern)
		})
	}
	if f.Genre != nil && strings.TrimSpace(*f.Genre) != "" {
		q = q.Where("lower(genre.name) LIKE ?", containsPattern(*f.Genre))
	}
	if f.Director != nil && strings.TrimSpace(*f.Director) != "" {
		q = q.Where("lower(m.director) LIKE ?", containsPattern(*f.Director))
	}
	if f.YearFrom != nil {
		q = q.Where("m.year >= ?", *f.YearFrom)
	}
	if f.YearTo != nil {
		q = q.Where("m.year <= ?", *f.YearTo)
	}
	q = q.Where("m.price >= ?", f.PriceMin)
	if f.PriceMax != nil {
		q = q.Where("m.price <= ?", *f.PriceMax)
	}
	return q
}

// containsPattern builds the lowered LIKE pattern in Go so the predicate
// stays portable across all three dialects.
func containsPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// SearchParams bundles the inputs of a movie search.
type SearchParams struct {
	Search        *string
	YearOrderAsc  bool
	PriceOrderAsc bool
	PriceMin      decimal.Decimal
	PriceMax      *decimal.Decimal
	Offset        int
	Fetch         int
}

// ListParams bundles the inputs of an ordered, unfiltered listing.
type ListParams struct {
	TitleOrderAsc bool
	YearOrderAsc  bool
	PriceOrderAsc bool
	Offset        int
	Fetch         int
}

// MovieRepository extends the generic repository with catalog search and
// reporting over movies.
type MovieRepository struct {
	Repository[model.Movie]
	db *bun.DB
}

// NewMovieRepository returns a movie repository backed by the provided Bun DB.
func NewMovieRepository(db *bun.DB) *MovieRepository {
	return &MovieRepository{
		Repository: NewRepository[model.Movie](db, "movie"),
		db:         db,
	}
}

// Search lists movies under the filter, ordered by year then price with the
// requested directions. The fetch count is clamped to the hard ceiling.
func (r *MovieRepository) Search(ctx context.Context, params SearchParams) ([]*model.Movie, error) {
	filter := &MovieFilter{
		Search:   params.Search,
		PriceMin: params.PriceMin,
		PriceMax: params.PriceMax,
	}

	var movies []*model.Movie
	q := r.db.NewSelect().
		Model(&movies).
		Relation("Genre")
	q = filter.Apply(q)
	err := q.
		OrderExpr("m.year ?", bun.Safe(direction(params.YearOrderAsc))).
		OrderExpr("m.price ?", bun.Safe(direction(params.PriceOrderAsc))).
		Offset(params.Offset).
		Limit(types.ClampFetch(params.Fetch)).
		Scan(ctx)
	if err != nil {
		return nil, model.NewPersistenceError("search movies", err)
	}
	return movies, nil
}

// ListOrdered lists all movies with the three-key composite order: year,
// then title, then price, each with its own direction.
func (r *MovieRepository) ListOrdered(ctx context.Context, params ListParams) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.NewSelect().
		Model(&movies).
		Relation("Genre").
		OrderExpr("m.year ?", bun.Safe(direction(params.YearOrderAsc))).
		OrderExpr("m.title ?", bun.Safe(direction(params.TitleOrderAsc))).
		OrderExpr("m.price ?", bun.Safe(direction(params.PriceOrderAsc))).
		Offset(params.Offset).
		Limit(types.ClampFetch(params.Fetch)).
		Scan(ctx)
	if err != nil {
		return nil, model.NewPersistenceError("list movies ordered", err)
	}
	return movies, nil
}

// TopByPrice returns the n most expensive movies, unfiltered. Ties keep the
// store-defined relative order.
func (r *MovieRepository) TopByPrice(ctx context.Context, n int) ([]*model.Movie, error) {
	if n <= 0 {
		n = defaultTopN
	}
	var movies []*model.Movie
	err := r.db.NewSelect().
		Model(&movies).
		Relation("Genre").
		OrderExpr("m.price DESC").
		Limit(types.ClampFetch(n)).
		Scan(ctx)
	if err != nil {
		return nil, model.NewPersistenceError("top movies by price", err)
	}
	return movies, nil
}

// ReportSummary computes the inventory aggregates under the same predicates a
// search with this filter would use. With no matching rows every aggregate is
// zero; the price total is never null.
func (r *MovieRepository) ReportSummary(ctx context.Context, filter *MovieFilter) (*types.ReportSummary, error) {
	summary := types.NewEmptyReportSummary()

	totals := filter.Apply(r.reportBase()).
		ColumnExpr("count(*)").
		ColumnExpr("coalesce(sum(m.price), 0)")
	if err := totals.Scan(ctx, &summary.TotalUnits, &summary.TotalPrice); err != nil {
		return nil, model.NewPersistenceError("report movie totals", err)
	}

	// Distinct (title, director) pairs collapse duplicate stock rows into
	// one logical product. COUNT(DISTINCT a, b) is MySQL-only, so count over
	// a distinct subquery instead.
	distinct := filter.Apply(r.reportBase()).
		ColumnExpr("m.title").
		ColumnExpr("m.director").
		Distinct()
	err := r.db.NewSelect().
		ColumnExpr("count(*)").
		TableExpr("(?) AS logical_movies", distinct).
		Scan(ctx, &summary.TotalMovies)
	if err != nil {
		return nil, model.NewPersistenceError("report distinct movies", err)
	}
	return summary, nil
}

// reportBase starts a movie query with the genres join that Apply's genre
// predicates expect. Aggregations cannot use Relation loading, so the join is
// written out under the same "genre" alias the relation would produce.
func (r *MovieRepository) reportBase() *bun.SelectQuery {
	return r.db.NewSelect().
		Model((*model.Movie)(nil)).
		Join(`LEFT JOIN genres AS genre ON genre.id = m.genre_id`)
}

func direction(asc bool) string {
	if asc {
		return "ASC"
	}
	return "DESC"
}
