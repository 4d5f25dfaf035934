package windows

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"modcheck/listtab"
)

// ExportActiveTab saves the visible rows of the selected tab. The export
// format follows the chosen file extension (.csv, .json or .parquet).
func (t *MainWindow) ExportActiveTab() {
	item := t.tabs.Selected()
	if item == nil {
		return
	}
	tab, ok := item.Content.(*listtab.ListTab)
	if !ok {
		return
	}
	if tab.Len() == 0 {
		t.SetStatus("Nothing to export")
		return
	}

	sd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := ExportTab(tab, path); err != nil {
			t.log.Error().Err(err).Str("path", path).Msg("export failed")
			t.SetStatus("Export failed")
			dialog.ShowError(err, t.w)
			return
		}
		t.log.Info().Str("path", path).Int("rows", tab.Len()).Msg("tab exported")
		t.SetStatus("Exported to " + path)
	}, t.w)
	sd.SetFileName(cleanFilename(tab.Title()) + ".csv")
	sd.Show()
}

// ExportTab writes the tab's rows to path, picking the format from the file
// extension. Unknown extensions fall back to CSV.
func ExportTab(tab *listtab.ListTab, path string) error {
	table := buildTabTable(tab)
	defer table.Release()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ExportToJSON(table, path)
	case ".parquet":
		return ExportToParquet(table, path)
	default:
		return ExportToCSV(table, path)
	}
}

// buildTabTable converts a tab's rows, in display order, into an Arrow table
// with one string column per tab column.
func buildTabTable(tab *listtab.ListTab) arrow.Table {
	cols := tab.Columns()
	rows := tab.Rows()

	fields := make([]arrow.Field, len(cols))
	for i, c := range cols {
		fields[i] = arrow.Field{Name: c.Label, Type: arrow.BinaryTypes.String}
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	columns := make([]arrow.Column, len(cols))
	for i := range cols {
		b := array.NewStringBuilder(pool)
		for _, r := range rows {
			b.Append(r.Cells[i])
		}
		arr := b.NewArray()
		chunked := arrow.NewChunked(arrow.BinaryTypes.String, []arrow.Array{arr})
		columns[i] = *arrow.NewColumn(fields[i], chunked)
		b.Release()
	}

	return array.NewTable(schema, columns, int64(len(rows)))
}

// ExportToParquet exports the Arrow table to a Parquet file
func ExportToParquet(table arrow.Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(table.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteTable(table, table.NumRows()); err != nil {
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	return nil
}

// ExportToCSV exports the Arrow table to a CSV file
func ExportToCSV(table arrow.Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	schema := table.Schema()
	headers := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headers[i] = field.Name
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		numRows := rec.NumRows()

		for rowIdx := int64(0); rowIdx < numRows; rowIdx++ {
			row := make([]string, rec.NumCols())
			for colIdx, col := range rec.Columns() {
				row[colIdx] = columnValue(col, int(rowIdx))
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	if tr.Err() != nil {
		return fmt.Errorf("error reading table: %w", tr.Err())
	}

	return nil
}

// ExportToJSON exports the Arrow table to a JSON file
func ExportToJSON(table arrow.Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	var records []map[string]interface{}
	schema := table.Schema()

	for tr.Next() {
		rec := tr.Record()
		numRows := rec.NumRows()

		for rowIdx := int64(0); rowIdx < numRows; rowIdx++ {
			record := make(map[string]interface{})
			for colIdx, col := range rec.Columns() {
				record[schema.Field(colIdx).Name] = columnValue(col, int(rowIdx))
			}
			records = append(records, record)
		}
	}

	if tr.Err() != nil {
		return fmt.Errorf("error reading table: %w", tr.Err())
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// columnValue converts an Arrow column value at a specific position to a
// string. Tab tables only carry string columns; anything else is formatted
// generically.
func columnValue(col arrow.Array, pos int) string {
	if col.IsNull(pos) {
		return ""
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		s := col.(*array.String)
		return s.Value(pos)

	case arrow.BINARY:
		b := col.(*array.Binary)
		return string(b.Value(pos))

	default:
		return fmt.Sprintf("%v", col)
	}
}

// cleanFilename turns a tab title into a safe default file name.
func cleanFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-':
			return '_'
		default:
			return -1
		}
	}, name)
}
