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

package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateTables creates a table for every registered model in priority order,
// emitting foreign keys from the model relation definitions. Existing tables
// are left untouched; the core otherwise assumes a stable schema.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, m := range RegisteredModels() {
		_, err := db.NewCreateTable().
			Model(m.Instance()).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for %T: %w", m.Instance(), err)
		}
	}
	return nil
}

// DropTables drops all registered model tables in reverse priority order so
// referencing tables go before referenced ones.
func DropTables(ctx context.Context, db *bun.DB) error {
	models := RegisteredModels()
	for i := len(models) - 1; i >= 0; i-- {
		_, err := db.NewDropTable().
			Model(models[i].Instance()).
			IfExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", models[i].Instance(), err)
		}
	}
	return nil
}

// ResetTables drops and recreates every registered model table.
func ResetTables(ctx context.Context, db *bun.DB) error {
	if err := DropTables(ctx, db); err != nil {
		return err
	}
	return CreateTables(ctx, db)
}
