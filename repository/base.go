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
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/filmoteca/catalog/model"
	"github.com/filmoteca/catalog/types"
)

type baseRepositoryImpl[T any] struct {
	db   *bun.DB
	name string
}

// NewRepository returns a generic repository backed by the provided Bun DB.
// The name identifies the entity type in NotFound and persistence errors.
func NewRepository[T any](db *bun.DB, name string) Repository[T] {
	return &baseRepositoryImpl[T]{db: db, name: name}
}

func (r *baseRepositoryImpl[T]) EntityName() string { return r.name }

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, model.NewPersistenceError(fmt.Sprintf("get %s by id", r.name), err)
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetByIDOrFail(ctx context.Context, id int64) (*T, error) {
	entity, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, model.NewNotFoundError(r.name, id)
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T]) List(ctx context.Context, offset, limit int) ([]*T, error) {
	var entities []*T
	err := r.db.NewSelect().
		Model(&entities).
		Offset(offset).
		Limit(types.ClampFetch(limit)).
		Scan(ctx)
	if err != nil {
		return nil, model.NewPersistenceError(fmt.Sprintf("list %s", r.name), err)
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	var entities []*T
	query := r.db.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Schema, pageRequest.GetFilter().Args...)
	}
	pagination := types.NewDefaultPagination[T](pageRequest.GetOffset(), pageRequest.GetFetch())
	total, err := query.Count(ctx)
	if err != nil {
		return nil, model.NewPersistenceError(fmt.Sprintf("count %s page", r.name), err)
	}
	if total == 0 {
		return pagination, nil
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetFetch()).
		Order(pageRequest.GetOrders()...).
		Scan(ctx)
	if err != nil {
		return nil, model.NewPersistenceError(fmt.Sprintf("page %s", r.name), err)
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity *T) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return r.CreateTx(ctx, tx, entity)
	})
	if err != nil {
		return wrapPersistence(fmt.Sprintf("create %s", r.name), err)
	}
	return nil
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return r.UpdateTx(ctx, tx, entity)
	})
	if err != nil {
		return wrapPersistence(fmt.Sprintf("update %s", r.name), err)
	}
	return nil
}

func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, entity *T) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return r.DeleteTx(ctx, tx, entity)
	})
	if err != nil {
		return wrapPersistence(fmt.Sprintf("delete %s", r.name), err)
	}
	return nil
}

func (r *baseRepositoryImpl[T]) DeleteByID(ctx context.Context, id int64, confirm bool) error {
	entity, err := r.GetByIDOrFail(ctx, id)
	if err != nil {
		return err
	}
	// confirm=false is a dry-run: the existence check above already ran.
	if !confirm {
		return nil
	}
	return r.Delete(ctx, entity)
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context, filters map[string]any) (int, error) {
	query := r.db.NewSelect().Model((*T)(nil))
	query = applyEqualityFilters(query, filters)
	count, err := query.Count(ctx)
	if err != nil {
		return 0, model.NewPersistenceError(fmt.Sprintf("count %s", r.name), err)
	}
	return count, nil
}

func (r *baseRepositoryImpl[T]) Exists(ctx context.Context, filters map[string]any) (bool, error) {
	query := r.db.NewSelect().Model((*T)(nil))
	query = applyEqualityFilters(query, filters)
	exists, err := query.Exists(ctx)
	if err != nil {
		return false, model.NewPersistenceError(fmt.Sprintf("check %s exists", r.name), err)
	}
	return exists, nil
}

func (r *baseRepositoryImpl[T]) CreateTx(ctx context.Context, idb bun.IDB, entity *T) error {
	_, err := idb.NewInsert().Model(entity).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) UpdateTx(ctx context.Context, idb bun.IDB, entity *T) error {
	_, err := idb.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) DeleteTx(ctx context.Context, idb bun.IDB, entity *T) error {
	_, err := idb.NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

func applyEqualityFilters(query *bun.SelectQuery, filters map[string]any) *bun.SelectQuery {
	for column, value := range filters {
		query = query.Where("? = ?", bun.Ident(column), value)
	}
	return query
}

// wrapPersistence keeps NotFound errors intact and wraps everything else as a
// persistence failure for the given operation.
func wrapPersistence(op string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return err
	}
	var pe *model.PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return model.NewPersistenceError(op, err)
}
