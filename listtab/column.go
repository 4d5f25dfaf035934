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

// Package listtab provides a reusable tabbed list-view widget for Fyne
// applications: a titled, scrollable, multi-column list with zebra striping,
// click-to-sort column headers and double-click row activation.
package listtab

import "fyne.io/fyne/v2"

// Column describes one column of a ListTab. The column set is fixed at
// construction time and its order is significant: row values are matched to
// columns positionally.
type Column struct {
	// Label is the header text shown in the clickable column header.
	Label string

	// Width is a fixed column width in device-independent pixels.
	// Zero lets the column flex to share the remaining space.
	Width float32

	// Stretch marks a column that absorbs leftover horizontal space even
	// when Width is set (Width then acts as a minimum).
	Stretch bool

	// Align is the text alignment for the column's cells.
	Align fyne.TextAlign
}

// flexible reports whether the column participates in distributing leftover
// horizontal space.
func (c Column) flexible() bool {
	return c.Width == 0 || c.Stretch
}

// columnsLayout places a row of canvas objects side by side according to the
// column options. The header row and every data row share one instance so
// headers and cells stay aligned.
type columnsLayout struct {
	columns []Column
}

func (l *columnsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for i, o := range objects {
		min := o.MinSize()
		if i < len(l.columns) && l.columns[i].Width > 0 {
			w += l.columns[i].Width
		} else {
			w += min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	return fyne.NewSize(w, h)
}

func (l *columnsLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var base float32
	flexCount := 0
	for i, o := range objects {
		if i < len(l.columns) {
			if l.columns[i].Width > 0 {
				base += l.columns[i].Width
			} else {
				base += o.MinSize().Width
			}
			if l.columns[i].flexible() {
				flexCount++
			}
		}
	}

	var extra float32
	if flexCount > 0 && size.Width > base {
		extra = (size.Width - base) / float32(flexCount)
	}

	var x float32
	for i, o := range objects {
		w := o.MinSize().Width
		if i < len(l.columns) {
			if l.columns[i].Width > 0 {
				w = l.columns[i].Width
			}
			if l.columns[i].flexible() {
				w += extra
			}
		}
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(w, size.Height))
		x += w
	}
}
