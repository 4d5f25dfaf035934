package windows

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcheck/listtab"
)

func newExportTab(t *testing.T) *listtab.ListTab {
	t.Helper()
	test.NewApp()

	cfg := listtab.DefaultConfig()
	cfg.Title = "Good Mods"
	cfg.Columns = []listtab.Column{{Label: "Name"}, {Label: "Size"}}
	cfg.Source = listtab.MapSource{}

	tab, err := listtab.New(cfg)
	require.NoError(t, err)
	require.NoError(t, tab.AddItem("FS22_A", []string{"FS22_A", "1.0 Kb"}))
	require.NoError(t, tab.AddItem("FS22_B", []string{"FS22_B", "2.0 Mb"}))
	return tab
}

func TestBuildTabTable(t *testing.T) {
	tab := newExportTab(t)

	table := buildTabTable(tab)
	defer table.Release()

	require.EqualValues(t, 2, table.NumRows())
	require.EqualValues(t, 2, table.NumCols())
	assert.Equal(t, "Name", table.Schema().Field(0).Name)
	assert.Equal(t, "Size", table.Schema().Field(1).Name)

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	require.True(t, tr.Next())
	rec := tr.Record()
	names := rec.Column(0).(*array.String)
	sizes := rec.Column(1).(*array.String)
	assert.Equal(t, "FS22_A", names.Value(0))
	assert.Equal(t, "FS22_B", names.Value(1))
	assert.Equal(t, "1.0 Kb", sizes.Value(0))
	assert.Equal(t, "2.0 Mb", sizes.Value(1))
}

func TestBuildTabTableFollowsSortOrder(t *testing.T) {
	tab := newExportTab(t)
	require.NoError(t, tab.SortColumn(1, true))

	table := buildTabTable(tab)
	defer table.Release()

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	require.True(t, tr.Next())
	names := tr.Record().Column(0).(*array.String)
	assert.Equal(t, "FS22_B", names.Value(0))
	assert.Equal(t, "FS22_A", names.Value(1))
}

func TestExportTabCSV(t *testing.T) {
	tab := newExportTab(t)
	path := filepath.Join(t.TempDir(), "good.csv")

	require.NoError(t, ExportTab(tab, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,Size\nFS22_A,1.0 Kb\nFS22_B,2.0 Mb\n", string(data))
}

func TestExportTabJSON(t *testing.T) {
	tab := newExportTab(t)
	path := filepath.Join(t.TempDir(), "good.json")

	require.NoError(t, ExportTab(tab, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "FS22_A", rows[0]["Name"])
	assert.Equal(t, "2.0 Mb", rows[1]["Size"])
}

func TestExportTabParquet(t *testing.T) {
	tab := newExportTab(t)
	path := filepath.Join(t.TempDir(), "good.parquet")

	require.NoError(t, ExportTab(tab, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "Good_Mods", cleanFilename("Good Mods"))
	assert.Equal(t, "ab_c2", cleanFilename("a/b c2!"))
}
