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
	"strconv"
	"strings"
)

// sizeToBytes parses a human-readable size of the form "<number> <unit>"
// where unit is one of B, Kb, Mb or Gb (binary, 1024-scaled) and returns the
// value in bytes. Any other shape, including plain numbers without a unit,
// reports ok=false so the caller falls back to textual comparison.
func sizeToBytes(text string) (float64, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, false
	}

	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}

	switch fields[1] {
	case "B":
		return n, true
	case "Kb":
		return n * 1024, true
	case "Mb":
		return n * 1024 * 1024, true
	case "Gb":
		return n * 1024 * 1024 * 1024, true
	}
	return 0, false
}

// sortKey is the normalized comparison key derived from one cell.
// A cell is either numeric (a recognized size string) or textual
// (lower-cased for case-insensitive ordering).
type sortKey struct {
	num    float64
	isNum  bool
	text   string
}

func newSortKey(cell string) sortKey {
	if n, ok := sizeToBytes(cell); ok {
		return sortKey{num: n, isNum: true}
	}
	return sortKey{text: strings.ToLower(cell)}
}

// compareKeys returns a negative value when a orders before b, positive when
// after, zero when equal. Numeric keys order before textual keys so a column
// mixing sizes and free text still has a deterministic total order.
func compareKeys(a, b sortKey) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case a.isNum:
		return -1
	case b.isNum:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}
