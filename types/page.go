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

// MaxFetch is the hard ceiling on the number of rows a single listing or
// search query may return. Requests above it are clamped, not rejected.
const MaxFetch = 100

// DefaultFetch is used when the caller does not supply a row count.
const DefaultFetch = 100

// ClampFetch normalizes a requested row count: non-positive values fall back
// to DefaultFetch and anything above MaxFetch is reduced to MaxFetch.
func ClampFetch(fetch int) int {
	if fetch <= 0 {
		return DefaultFetch
	}
	if fetch > MaxFetch {
		return MaxFetch
	}
	return fetch
}

// QueryFilter describes a WHERE clause schema and its argument values.
type QueryFilter struct {
	Schema string
	Args   []interface{}
}

// NewQueryFilter creates a new query filter with schema and args.
func NewQueryFilter(schema string, args ...interface{}) *QueryFilter {
	return &QueryFilter{schema, args}
}

// PageRequest describes offset pagination, an optional filter, and ordering.
type PageRequest struct {
	offset int
	fetch  int
	filter *QueryFilter
	orders []string // "year ASC", "price DESC"
}

func (p *PageRequest) GetFetch() int {
	return ClampFetch(p.fetch)
}

func (p *PageRequest) GetOffset() int {
	if p.offset < 0 {
		return 0
	}
	return p.offset
}

func (p *PageRequest) GetFilter() *QueryFilter {
	return p.filter
}

func (p *PageRequest) GetOrders() []string {
	return p.orders
}

// NewPageRequest constructs a PageRequest with filter and order settings.
func NewPageRequest(offset int, fetch int, filter *QueryFilter, orders []string) *PageRequest {
	return &PageRequest{offset, fetch, filter, orders}
}

// NewPageRequestWithFilter constructs a PageRequest with a filter only.
func NewPageRequestWithFilter(offset int, fetch int, filter *QueryFilter) *PageRequest {
	return NewPageRequest(offset, fetch, filter, make([]string, 0))
}

// NewPageRequestWithOrders constructs a PageRequest with ordering only.
func NewPageRequestWithOrders(offset int, fetch int, orders []string) *PageRequest {
	return NewPageRequest(offset, fetch, nil, orders)
}

// NewDefaultPageRequest constructs a PageRequest with no filter or ordering.
func NewDefaultPageRequest(offset int, fetch int) *PageRequest {
	return NewPageRequest(offset, fetch, nil, make([]string, 0))
}

// Pagination holds paged result items along with pagination metadata.
type Pagination[T any] struct {
	Offset int
	Fetch  int
	Total  int
	Items  []*T
}

// NewDefaultPagination constructs an empty pagination container.
func NewDefaultPagination[T any](offset int, fetch int) *Pagination[T] {
	return &Pagination[T]{offset, fetch, 0, make([]*T, 0)}
}
