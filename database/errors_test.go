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
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifyErrorMySQLNumbers(t *testing.T) {
	cases := []struct {
		number uint16
		want   SQLError
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1451, ForeignKeyViolationErr},
		{1452, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1146, NoTableErr},
		{1050, ExistTableErr},
		{1054, NoColumnErr},
		{1265, DataTruncatedErr},
		{9999, UnknownErr},
	}
	for _, tc := range cases {
		err := &mysql.MySQLError{Number: tc.number, Message: "driver failure"}
		is, kind := ClassifyError(err)
		assert.True(t, is, "number %d", tc.number)
		assert.Equal(t, tc.want, kind, "number %d", tc.number)
	}
}

func TestClassifyErrorMessages(t *testing.T) {
	cases := []struct {
		msg  string
		want SQLError
	}{
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"UNIQUE constraint failed: genres.name", DuplicateKeyErr},
		{"NOT NULL constraint failed: movies.title", NotNullViolationErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"ERROR: insert violates foreign key violation (SQLSTATE 23503)", ForeignKeyViolationErr},
		{"CHECK constraint failed: price_positive", CheckConstraintViolationErr},
		{"no such table: movies", NoTableErr},
		{"no such column: m.rating", NoColumnErr},
		{"table movies already exists", ExistTableErr},
		{"dial tcp: connection refused", ConnectionErr},
		{"driver: bad connection", ConnectionErr},
	}
	for _, tc := range cases {
		is, kind := ClassifyError(errors.New(tc.msg))
		assert.True(t, is, tc.msg)
		assert.Equal(t, tc.want, kind, tc.msg)
	}
}

func TestClassifyErrorUnknown(t *testing.T) {
	is, kind := ClassifyError(fmt.Errorf("something unrelated happened"))
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)

	is, kind = ClassifyError(nil)
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)
}
