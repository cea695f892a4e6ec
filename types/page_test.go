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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampFetch(t *testing.T) {
	assert.Equal(t, DefaultFetch, ClampFetch(0))
	assert.Equal(t, DefaultFetch, ClampFetch(-5))
	assert.Equal(t, 1, ClampFetch(1))
	assert.Equal(t, MaxFetch, ClampFetch(MaxFetch))
	assert.Equal(t, MaxFetch, ClampFetch(MaxFetch+1))
	assert.Equal(t, MaxFetch, ClampFetch(100000))
}

func TestPageRequestNormalization(t *testing.T) {
	page := NewDefaultPageRequest(-3, 500)
	assert.Equal(t, 0, page.GetOffset())
	assert.Equal(t, MaxFetch, page.GetFetch())
	assert.Nil(t, page.GetFilter())
	assert.Empty(t, page.GetOrders())

	filter := NewQueryFilter("year >= ?", 2000)
	page = NewPageRequest(10, 20, filter, []string{"year ASC", "price DESC"})
	assert.Equal(t, 10, page.GetOffset())
	assert.Equal(t, 20, page.GetFetch())
	assert.Equal(t, filter, page.GetFilter())
	assert.Equal(t, []string{"year ASC", "price DESC"}, page.GetOrders())
}
