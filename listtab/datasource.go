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

	"fyne.io/fyne/v2"
)

// DataSource resolves a row key to the object behind it. A ListTab only ever
// calls Lookup on the activation path; it never enumerates or mutates the
// source.
type DataSource interface {
	// Lookup returns the object stored under key, or an error wrapping
	// ErrUnknownKey when the key is not present.
	Lookup(key string) (any, error)
}

// MapSource is a DataSource over an in-memory map. The zero value is not
// usable; allocate with make or a literal. Hosts may mutate the map between
// activations, typically when reloading the data the tabs display.
type MapSource map[string]any

// Lookup implements DataSource.
func (m MapSource) Lookup(key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return v, nil
}

// DetailFunc presents the detail view for an activated row. It receives the
// window hosting the tab (nil when the tab was never attached to one), the
// activated row's key and the object the DataSource resolved it to.
type DetailFunc func(win fyne.Window, key string, item any)
