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

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/filmoteca/catalog/types"
)

// CrudRepository defines the entity-agnostic persistence primitive. Every
// write runs in its own transaction and is rolled back in full on failure;
// absence is always signaled explicitly, never folded into a default value.
type CrudRepository[T any] interface {
	// GetByID returns the entity, or (nil, nil) when no row exists. Absence
	// is not an error at this layer.
	GetByID(ctx context.Context, id int64) (*T, error)

	// GetByIDOrFail returns the entity or a *model.NotFoundError carrying the
	// entity name and id. Callers above this layer treat that as a client
	// error, not a system fault.
	GetByIDOrFail(ctx context.Context, id int64) (*T, error)

	// List returns a page of entities. No ordering is implied; callers that
	// need a stable order use Page with explicit order keys.
	List(ctx context.Context, offset, limit int) ([]*T, error)

	// Page returns a paginated, optionally filtered and ordered listing with
	// the total matching row count.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	Create(ctx context.Context, entity *T) error

	Update(ctx context.Context, entity *T) error

	Delete(ctx context.Context, entity *T) error

	// DeleteByID verifies the row exists (NotFound when absent) and removes
	// it. With confirm=false the existence check still runs but the delete is
	// skipped, so callers get a safe dry-run.
	DeleteByID(ctx context.Context, id int64, confirm bool) error

	// Count returns the number of rows matching equality filters keyed by
	// column name. An empty filter map counts all rows.
	Count(ctx context.Context, filters map[string]any) (int, error)

	// Exists reports whether at least one row matches the equality filters.
	Exists(ctx context.Context, filters map[string]any) (bool, error)
}

// TransactionRepository defines write operations executed inside a caller
// owned transaction, for services that compose multi-step writes.
type TransactionRepository[T any] interface {
	CreateTx(ctx context.Context, idb bun.IDB, entity *T) error
	UpdateTx(ctx context.Context, idb bun.IDB, entity *T) error
	DeleteTx(ctx context.Context, idb bun.IDB, entity *T) error
}

// Repository combines CRUD and transactional operations and exposes Bun query
// builders for specialized repositories layered on top.
type Repository[T any] interface {
	CrudRepository[T]
	TransactionRepository[T]
	EntityName() string
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
