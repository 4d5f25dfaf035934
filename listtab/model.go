// Copyright 2025 ModCheck Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package listtab

import (
	"fmt"
	"sort"
)

// Stripe is the zebra tag carried by each row.
type Stripe int

const (
	// StripeEven marks rows at even display positions.
	StripeEven Stripe = iota
	// StripeOdd marks rows at odd display positions.
	StripeOdd
)

// String returns the string representation of a Stripe.
func (s Stripe) String() string {
	if s == StripeOdd {
		return "odd"
	}
	return "even"
}

// Row is one display row: a lookup key, one cell per column, and the
// current stripe tag.
type Row struct {
	Key    string
	Cells  []string
	Stripe Stripe
}

// model owns the rows and the sort state, independent of any rendering.
// All mutation goes through addItem, clearItems and sortColumn so the
// widget layer only ever reads.
type model struct {
	columns []Column
	rows    []Row

	// nextOdd is the stripe parity assigned to the next inserted row.
	// The first row after construction or a clear is tagged odd.
	nextOdd bool

	// nextReverse remembers, per column, the direction the next header
	// click on that column will sort in. A missing entry means ascending.
	nextReverse map[int]bool
}

func newModel(columns []Column) *model {
	return &model{
		columns:     columns,
		nextOdd:     true,
		nextReverse: make(map[int]bool),
	}
}

// addItem appends a row keyed by name. The value count must match the
// declared column count.
func (m *model) addItem(name string, values []string) error {
	if len(values) != len(m.columns) {
		return fmt.Errorf("%w: got %d values for %d columns",
			ErrColumnCount, len(values), len(m.columns))
	}

	stripe := StripeEven
	if m.nextOdd {
		stripe = StripeOdd
	}
	m.rows = append(m.rows, Row{
		Key:    name,
		Cells:  append([]string(nil), values...),
		Stripe: stripe,
	})
	m.nextOdd = !m.nextOdd
	return nil
}

// clearItems removes every row and resets the stripe parity, so a refill
// stripes identically to a fresh tab.
func (m *model) clearItems() {
	m.rows = nil
	m.nextOdd = true
}

// sortColumn reorders the rows by the given column. Cells that parse as
// sizes compare numerically in bytes, everything else compares
// case-insensitively. The sort is stable, and rows are restriped by their
// final position (position 0 is even). The column's next toggle direction
// is armed to the opposite of reverse; other columns keep theirs.
func (m *model) sortColumn(col int, reverse bool) error {
	if col < 0 || col >= len(m.columns) {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}

	keys := make([]sortKey, len(m.rows))
	for i, r := range m.rows {
		keys[i] = newSortKey(r.Cells[col])
	}

	order := make([]int, len(m.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		c := compareKeys(keys[order[i]], keys[order[j]])
		if reverse {
			return c > 0
		}
		return c < 0
	})

	sorted := make([]Row, len(m.rows))
	for pos, idx := range order {
		r := m.rows[idx]
		if pos%2 == 0 {
			r.Stripe = StripeEven
		} else {
			r.Stripe = StripeOdd
		}
		sorted[pos] = r
	}
	m.rows = sorted

	m.nextReverse[col] = !reverse
	return nil
}

// sortToggle runs the header-click path: sort using the column's pending
// direction, which sortColumn then flips for the next click.
func (m *model) sortToggle(col int) error {
	return m.sortColumn(col, m.nextReverse[col])
}

func (m *model) rowAt(i int) (Row, bool) {
	if i < 0 || i >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[i], true
}
