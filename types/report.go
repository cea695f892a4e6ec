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

import "github.com/shopspring/decimal"

// ReportSummary is the single-row inventory aggregate computed under the same
// filter predicates as a movie search.
//
// TotalMovies counts distinct (title, director) pairs, so duplicate stock rows
// of the same release collapse into one logical product. TotalUnits is the raw
// matching row count. TotalPrice is the exact decimal sum of prices over the
// matching rows and is zero, never null, when nothing matches.
type ReportSummary struct {
	TotalMovies int             `json:"total_movies"`
	TotalUnits  int             `json:"total_units"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// NewEmptyReportSummary returns a summary with all aggregates at zero.
func NewEmptyReportSummary() *ReportSummary {
	return &ReportSummary{TotalPrice: decimal.Zero}
}
