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

// Store is the explicitly owned database handle. It is constructed once,
// passed into repositories, and closed by whoever opened it. There is no
// package-level store instance.
type Store struct {
	manager Manager
	logger  Logger
}

// Open connects to the configured database and optionally bootstraps the
// schema for all registered models.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}

	logger := NewDefaultLogger()
	manager := NewManager(&cfg.Connection)
	manager.SetLogger(logger)

	if err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{manager: manager, logger: logger}

	if cfg.Schema.CreateOnOpen {
		if err := CreateTables(ctx, store.DB()); err != nil {
			_ = manager.Disconnect()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
		if cfg.Schema.EnableForeignKey && cfg.Connection.Type != "sqlite" {
			fkm := NewForeignKeyManagerFromConfig(logger, cfg.Schema.ForeignKeyFile)
			if err := fkm.AddAllForeignKeys(ctx, store.DB()); err != nil {
				_ = manager.Disconnect()
				return nil, fmt.Errorf("failed to apply foreign keys: %w", err)
			}
		}
	}

	logger.Info("Store initialization completed", "type", cfg.Connection.Type)
	return store, nil
}

// DB returns the underlying Bun database.
func (s *Store) DB() *bun.DB {
	return s.manager.GetDB()
}

// Health runs a health check against the store.
func (s *Store) Health(ctx context.Context) *HealthStatus {
	return s.manager.HealthCheck(ctx)
}

// Stats returns connection pool statistics.
func (s *Store) Stats() *DBStats {
	return s.manager.GetStats()
}

// Close releases the store's connection pool.
func (s *Store) Close() error {
	return s.manager.Disconnect()
}
