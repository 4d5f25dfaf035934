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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config carries the construction contract for a ListTab. Columns and Source
// are required; everything else has a usable zero value or a default supplied
// by DefaultConfig.
type Config struct {
	// Title is shown bold and centered above the list.
	Title string

	// Description is optional explanatory text, word-wrapped under the
	// title.
	Description string

	// Columns declares the column set. Fixed after construction.
	Columns []Column

	// Source resolves row keys on activation. Required.
	Source DataSource

	// OnActivate presents the detail view for a double-clicked row.
	// Nil disables activation.
	OnActivate DetailFunc

	// OnError receives activation failures, typically unknown row keys.
	// With no handler installed an activation failure is fatal: the tab
	// displays keys the host put there, so a failed lookup means the host
	// and the source disagree.
	OnError func(error)

	// EvenRowColor and OddRowColor are the zebra stripe fills.
	EvenRowColor color.Color
	OddRowColor  color.Color
}

// DefaultConfig returns a Config with the default zebra palette: a faint
// overlay on even rows that reads on both light and dark themes.
func DefaultConfig() Config {
	return Config{
		EvenRowColor: color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0x30},
		OddRowColor:  color.Transparent,
	}
}

// ListTab is a titled, scrollable, sortable multi-column list. Rows are
// keyed strings with one value per column; clicking a column header sorts by
// that column and flips its direction for the next click; double-clicking a
// row resolves its key through the DataSource and invokes OnActivate.
type ListTab struct {
	widget.BaseWidget

	cfg    Config
	model  *model
	window fyne.Window

	layout  *columnsLayout
	title   *widget.Label
	desc    *widget.Label
	headers []*widget.Button
	list    *widget.List

	// sorted tracks the last sorted column for the header indicator,
	// -1 when unsorted.
	sorted        int
	sortedReverse bool
}

// New creates a ListTab from cfg. It returns an error when no columns are
// declared or no data source is provided.
func New(cfg Config) (*ListTab, error) {
	if len(cfg.Columns) == 0 {
		return nil, ErrNoColumns
	}
	if cfg.Source == nil {
		return nil, ErrNoDataSource
	}
	if cfg.EvenRowColor == nil {
		cfg.EvenRowColor = DefaultConfig().EvenRowColor
	}
	if cfg.OddRowColor == nil {
		cfg.OddRowColor = DefaultConfig().OddRowColor
	}

	t := &ListTab{
		cfg:    cfg,
		model:  newModel(cfg.Columns),
		layout: &columnsLayout{columns: cfg.Columns},
		sorted: -1,
	}
	t.ExtendBaseWidget(t)

	t.title = widget.NewLabel(cfg.Title)
	t.title.TextStyle = fyne.TextStyle{Bold: true}
	t.title.Alignment = fyne.TextAlignCenter

	t.desc = widget.NewLabel(cfg.Description)
	t.desc.Wrapping = fyne.TextWrapWord

	t.headers = make([]*widget.Button, len(cfg.Columns))
	for i, col := range cfg.Columns {
		i := i
		t.headers[i] = widget.NewButton(col.Label, func() {
			if err := t.model.sortToggle(i); err != nil {
				t.fail(err)
				return
			}
			t.sorted = i
			// sortToggle armed the opposite direction, so the sort
			// just applied is the inverse of what is pending.
			t.sortedReverse = !t.model.nextReverse[i]
			t.refreshAll()
		})
	}

	t.list = widget.NewList(
		func() int {
			return len(t.model.rows)
		},
		func() fyne.CanvasObject {
			return newRowItem(t)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*rowItem).bind(id)
		},
	)

	return t, nil
}

// CreateRenderer implements fyne.Widget.
func (t *ListTab) CreateRenderer() fyne.WidgetRenderer {
	headerObjects := make([]fyne.CanvasObject, len(t.headers))
	for i, h := range t.headers {
		headerObjects[i] = h
	}
	headerRow := container.New(t.layout, headerObjects...)

	top := container.NewVBox(t.title)
	if t.cfg.Description != "" {
		top.Add(t.desc)
	}
	top.Add(headerRow)
	top.Add(widget.NewSeparator())

	return widget.NewSimpleRenderer(
		container.NewBorder(top, nil, nil, nil, t.list))
}

// SetWindow attaches the window passed to OnActivate. Hosts call this once
// after placing the tab in a window.
func (t *ListTab) SetWindow(w fyne.Window) {
	t.window = w
}

// AddItem appends a row keyed by name with one value per column. The new row
// takes the pending stripe parity; the first row added to a fresh or cleared
// tab is tagged odd.
func (t *ListTab) AddItem(name string, values []string) error {
	if err := t.model.addItem(name, values); err != nil {
		return err
	}
	t.list.Refresh()
	return nil
}

// ClearItems removes every row and resets the stripe parity and the display,
// leaving the per-column sort directions as they were.
func (t *ListTab) ClearItems() {
	t.model.clearItems()
	t.list.Refresh()
}

// SortColumn sorts by the given column in the given direction and arms the
// opposite direction for that column's next header click.
func (t *ListTab) SortColumn(col int, reverse bool) error {
	if err := t.model.sortColumn(col, reverse); err != nil {
		return err
	}
	t.sorted = col
	t.sortedReverse = reverse
	t.refreshAll()
	return nil
}

// Len returns the current row count.
func (t *ListTab) Len() int {
	return len(t.model.rows)
}

// Rows returns a copy of the rows in display order.
func (t *ListTab) Rows() []Row {
	out := make([]Row, len(t.model.rows))
	copy(out, t.model.rows)
	return out
}

// Columns returns the declared column set.
func (t *ListTab) Columns() []Column {
	return t.cfg.Columns
}

// Title returns the tab's title text.
func (t *ListTab) Title() string {
	return t.cfg.Title
}

func (t *ListTab) refreshAll() {
	for i, h := range t.headers {
		label := t.cfg.Columns[i].Label
		if i == t.sorted {
			if t.sortedReverse {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		h.SetText(label)
	}
	t.list.Refresh()
}

// activateRow runs the double-click path for the row at display position i.
func (t *ListTab) activateRow(i int) {
	r, ok := t.model.rowAt(i)
	if !ok {
		return
	}
	item, err := t.cfg.Source.Lookup(r.Key)
	if err != nil {
		t.fail(fmt.Errorf("activate row %q: %w", r.Key, err))
		return
	}
	if t.cfg.OnActivate != nil {
		t.cfg.OnActivate(t.window, r.Key, item)
	}
}

func (t *ListTab) fail(err error) {
	if t.cfg.OnError != nil {
		t.cfg.OnError(err)
		return
	}
	panic(err)
}

// rowItem is one visible row: a stripe rectangle behind a line of cell
// labels. The list template rebinds it to different model rows as the user
// scrolls.
type rowItem struct {
	widget.BaseWidget

	tab *ListTab
	row int

	background *canvas.Rectangle
	cells      []*widget.Label
}

var _ fyne.DoubleTappable = (*rowItem)(nil)

func newRowItem(t *ListTab) *rowItem {
	r := &rowItem{
		tab:        t,
		row:        -1,
		background: canvas.NewRectangle(color.Transparent),
		cells:      make([]*widget.Label, len(t.cfg.Columns)),
	}
	for i, col := range t.cfg.Columns {
		l := widget.NewLabel("")
		l.Alignment = col.Align
		l.Truncation = fyne.TextTruncateEllipsis
		r.cells[i] = l
	}
	r.ExtendBaseWidget(r)
	return r
}

// bind points the item at model row id and repaints it.
func (r *rowItem) bind(id int) {
	r.row = id
	row, ok := r.tab.model.rowAt(id)
	if !ok {
		return
	}
	for i, l := range r.cells {
		l.SetText(row.Cells[i])
	}
	if row.Stripe == StripeEven {
		r.background.FillColor = r.tab.cfg.EvenRowColor
	} else {
		r.background.FillColor = r.tab.cfg.OddRowColor
	}
	r.background.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (r *rowItem) CreateRenderer() fyne.WidgetRenderer {
	cells := make([]fyne.CanvasObject, len(r.cells))
	for i, l := range r.cells {
		cells[i] = l
	}
	return widget.NewSimpleRenderer(container.NewStack(
		r.background,
		container.New(r.tab.layout, cells...),
	))
}

// DoubleTapped implements fyne.DoubleTappable.
func (r *rowItem) DoubleTapped(_ *fyne.PointEvent) {
	r.tab.activateRow(r.row)
}
