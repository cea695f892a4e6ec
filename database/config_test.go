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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
connection:
  type: postgres
  host: db.internal
  port: 5432
  username: catalog
  dbname: filmoteca
  sslmode: disable
schema:
  create_on_open: true
  enable_foreign_key: true
auth:
  forced_token: backend-token
  forced_client_key: backend-key
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Connection.Type)
	assert.Equal(t, "db.internal", cfg.Connection.Host)
	assert.Equal(t, 5432, cfg.Connection.Port)
	assert.Equal(t, "filmoteca", cfg.Connection.DBName)
	assert.True(t, cfg.Schema.CreateOnOpen)
	assert.True(t, cfg.Schema.EnableForeignKey)
	assert.Equal(t, "backend-token", cfg.Auth.ForcedToken)
	assert.Equal(t, "backend-key", cfg.Auth.ForcedClientKey)

	// Pool settings the file does not mention keep their defaults.
	defaults := DefaultConnectionConfig()
	assert.Equal(t, defaults.MaxOpenConns, cfg.Connection.MaxOpenConns)
	assert.Equal(t, defaults.ConnMaxLifetime, cfg.Connection.ConnMaxLifetime)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfig(writeConfigFile(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "override.internal", cfg.Connection.Host)
	assert.Equal(t, 6543, cfg.Connection.Port)
	assert.Equal(t, "secret", cfg.Connection.Password)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "connection: [not a mapping"))
	require.Error(t, err)
}

func TestForeignKeyManagerDefaults(t *testing.T) {
	fkm := NewForeignKeyManager(nil)
	constraints := fkm.Constraints()
	require.Len(t, constraints, 1)

	fk := constraints[0]
	assert.Equal(t, "movies", fk.Table)
	assert.Equal(t, "genre_id", fk.Column)
	assert.Equal(t, "genres", fk.ReferenceTable)
	// Deleting a genre must never cascade into its movies.
	assert.Equal(t, "NO ACTION", fk.OnDelete)
	assert.Equal(t, "NO ACTION", fk.OnUpdate)

	assert.Equal(t, "fk_movies_genre_id", fk.GenerateConstraintName())
	assert.Equal(t,
		"ALTER TABLE movies ADD CONSTRAINT fk_movies_genre_id FOREIGN KEY (genre_id) REFERENCES genres(id) ON DELETE NO ACTION ON UPDATE NO ACTION",
		fk.GenerateSQL())
	assert.Empty(t, fkm.ValidateConstraints())
}

func TestForeignKeyManagerFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
foreign_keys:
  - table: movies
    column: genre_id
    reference_table: genres
    reference_column: id
    on_delete: RESTRICT
`), 0o600))

	fkm := NewForeignKeyManagerFromConfig(nil, path)
	constraints := fkm.Constraints()
	require.Len(t, constraints, 1)
	assert.Equal(t, "RESTRICT", constraints[0].OnDelete)

	// An unreadable file falls back to the built-in constraints.
	fkm = NewForeignKeyManagerFromConfig(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Len(t, fkm.Constraints(), 1)
	assert.Equal(t, "NO ACTION", fkm.Constraints()[0].OnDelete)
}

func TestForeignKeyValidateConstraints(t *testing.T) {
	fkm := &ForeignKeyManager{constraints: []ForeignKeyConstraint{
		{Table: "", Column: "genre_id", ReferenceTable: "genres", ReferenceColumn: "id"},
		{Table: "movies", Column: "genre_id", ReferenceTable: "genres", ReferenceColumn: "id", OnDelete: "EXPLODE"},
	}}
	errs := fkm.ValidateConstraints()
	assert.Len(t, errs, 2)
}
