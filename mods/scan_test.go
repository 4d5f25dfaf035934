package mods

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDesc = `<?xml version="1.0" encoding="utf-8"?>
<modDesc descVersion="60">
    <version>1.2.0.0</version>
    <title>
        <en>Example Mod</en>
    </title>
</modDesc>`

func writeModZip(t *testing.T, dir, name, desc string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	if desc != "" {
		w, err := zw.Create("modDesc.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte(desc))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func byName(t *testing.T, records []Record, name string) Record {
	t.Helper()
	for _, r := range records {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no record named %q", name)
	return Record{}
}

func TestScanClassifiesEntries(t *testing.T) {
	dir := t.TempDir()

	writeModZip(t, dir, "FS22_Example.zip", exampleDesc)
	writeModZip(t, dir, "FS22_NoDesc.zip", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	modDir := filepath.Join(dir, "FS22_Unpacked")
	require.NoError(t, os.Mkdir(modDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(modDir, "modDesc.xml"), []byte(exampleDesc), 0o644))

	records, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, records, 4)

	good := byName(t, records, "FS22_Example")
	assert.False(t, good.Broken())
	assert.Equal(t, "Example Mod", good.Title)
	assert.Equal(t, "1.2.0.0", good.Version)
	assert.False(t, good.IsFolder)
	assert.Positive(t, good.Size)

	noDesc := byName(t, records, "FS22_NoDesc")
	assert.True(t, noDesc.Broken())

	garbage := byName(t, records, "notes")
	require.True(t, garbage.Broken())
	assert.Contains(t, garbage.Issues[0], "not a mod")

	folder := byName(t, records, "FS22_Unpacked")
	assert.True(t, folder.IsFolder)
	assert.False(t, folder.Broken())
	assert.Equal(t, "Example Mod", folder.Title)
	assert.Equal(t, int64(len(exampleDesc)), folder.Size)
}

func TestScanFlagsBadNames(t *testing.T) {
	dir := t.TempDir()
	writeModZip(t, dir, "FS22 bad name.zip", exampleDesc)

	records, err := Scan(dir)
	require.NoError(t, err)

	r := byName(t, records, "FS22 bad name")
	require.True(t, r.Broken())
	assert.Contains(t, r.Issues[0], "characters the game rejects")
}

func TestScanFlagsCopies(t *testing.T) {
	dir := t.TempDir()
	writeModZip(t, dir, "FS22_Example.zip", exampleDesc)
	writeModZip(t, dir, "FS22_Example - Copy.zip", exampleDesc)
	writeModZip(t, dir, "FS22_Example (2).zip", exampleDesc)
	writeModZip(t, dir, "FS22_Other (2).zip", exampleDesc)

	records, err := Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, "FS22_Example", byName(t, records, "FS22_Example - Copy").CopyOf)
	assert.Equal(t, "FS22_Example", byName(t, records, "FS22_Example (2)").CopyOf)

	// No original present, so the numbered name is not marked as a copy.
	assert.Empty(t, byName(t, records, "FS22_Other (2)").CopyOf)
	assert.Empty(t, byName(t, records, "FS22_Example").CopyOf)
}

func TestScanSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), []byte("x"), 0o644))

	records, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScanMissingFolder(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{1024, "1.0 Kb"},
		{665702, "650.1 Kb"},
		{2 * 1024 * 1024, "2.0 Mb"},
		{3 * 1024 * 1024 * 1024, "3.0 Gb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in))
	}
}
