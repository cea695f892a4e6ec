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

	"github.com/filmoteca/catalog/database"
	"github.com/filmoteca/catalog/model"
)

// GenreService exposes the generic lifecycle for genres. Genres have no
// specialized search or reporting behavior.
type GenreService struct {
	Service[model.Genre]
}

// NewGenreService constructs the genre service over the given store.
func NewGenreService(store *database.Store) *GenreService {
	return &GenreService{Service: NewService[model.Genre](store, "genre")}
}

// Create validates and persists a new genre. A duplicate name surfaces as a
// constraint violation from the store, never as a partial write.
func (s *GenreService) Create(ctx context.Context, name string) (*model.Genre, error) {
	genre := &model.Genre{Name: name}
	if err := genre.Validate(); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}
