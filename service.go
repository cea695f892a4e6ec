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

// Package catalog wires the movie catalog services over the generic and
// specialized repositories. Services validate cross-field input and merge
// partial updates; they hold no query logic of their own.
package catalog

import (
	"context"

	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/repository"
	"github.com/filmoteca/catalog/types"
)

// Service is the entity-agnostic orchestration surface over a generic
// repository.
type Service[T any] interface {
	// Get returns a single entity by id, or nil when absent.
	Get(ctx context.Context, id int64) (*T, error)

	// GetOrFail returns a single entity by id or a NotFound error.
	GetOrFail(ctx context.Context, id int64) (*T, error)

	// List returns a page of entities.
	List(ctx context.Context, offset, limit int) ([]*T, error)

	// Page returns a paginated, optionally filtered and ordered listing.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// Save inserts a new entity.
	Save(ctx context.Context, entity *T) error

	// Update persists mutations applied to a previously fetched entity.
	Update(ctx context.Context, entity *T) error

	// DeleteByID removes an entity; confirm=false validates existence only.
	DeleteByID(ctx context.Context, id int64, confirm bool) error

	// Count returns the number of entities matching equality filters.
	Count(ctx context.Context, filters map[string]any) (int, error)

	// Exists reports whether any entity matches the equality filters.
	Exists(ctx context.Context, filters map[string]any) (bool, error)
}

type baseServiceImpl[T any] struct {
	repo repository.Repository[T]
}

// NewService returns a Service backed by a generic repository over the given
// store. The name identifies the entity type in errors.
func NewService[T any](store *database.Store, name string) Service[T] {
	return &baseServiceImpl[T]{repo: repository.NewRepository[T](store.DB(), name)}
}

// NewServiceWithRepository returns a Service over an existing repository.
func NewServiceWithRepository[T any](repo repository.Repository[T]) Service[T] {
	return &baseServiceImpl[T]{repo: repo}
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *baseServiceImpl[T]) GetOrFail(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByIDOrFail(ctx, id)
}

func (s *baseServiceImpl[T]) List(ctx context.Context, offset, limit int) ([]*T, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *baseServiceImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.repo.Page(ctx, page)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, entity *T) error {
	return s.repo.Create(ctx, entity)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, entity *T) error {
	return s.repo.Update(ctx, entity)
}

func (s *baseServiceImpl[T]) DeleteByID(ctx context.Context, id int64, confirm bool) error {
	return s.repo.DeleteByID(ctx, id, confirm)
}

func (s *baseServiceImpl[T]) Count(ctx context.Context, filters map[string]any) (int, error) {
	return s.repo.Count(ctx, filters)
}

func (s *baseServiceImpl[T]) Exists(ctx context.Context, filters map[string]any) (bool, error) {
	return s.repo.Exists(ctx, filters)
}
