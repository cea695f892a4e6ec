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

package model

import (
	"errors"
	"fmt"

	"github.com/filmoteca/catalog/database"
)

// Sentinel errors for the three expected failure classes. Callers match them
// with errors.Is and extract detail with errors.As on the concrete types.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalid     = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failure")
)

// NotFoundError reports that no entity of the given type exists under the
// given identifier. It maps to a missing-resource response at the transport
// boundary, never to a system fault.
type NotFoundError struct {
	Entity string
	ID     any
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a field or cross-field constraint violated before
// the store was reached.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// PersistenceError wraps a store failure. The wrapped operation was rolled
// back in full; Kind carries the classified driver error when recognizable.
type PersistenceError struct {
	Op   string
	Kind database.SQLError
	Err  error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	_, kind := database.ClassifyError(err)
	return &PersistenceError{Op: op, Kind: kind, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// IsConstraintViolation reports whether the error is a persistence failure
// caused by a uniqueness, foreign key, not-null, or check constraint.
func IsConstraintViolation(err error) bool {
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		return false
	}
	switch pe.Kind {
	case database.DuplicateKeyErr,
		database.ForeignKeyViolationErr,
		database.NotNullViolationErr,
		database.CheckConstraintViolationErr:
		return true
	}
	return false
}
