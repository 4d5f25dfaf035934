// Package mods loads and classifies the contents of a savegame mod folder.
package mods

import "fmt"

// Record describes one entry found in a mod folder.
type Record struct {
	// Name is the entry's base name without extension. It is the key the
	// list tabs and the detail lookup use.
	Name string

	// Title is the display title read from the mod's descriptor, falling
	// back to Name when no descriptor is present.
	Title string

	// Version is the version string from the descriptor, "-" when unknown.
	Version string

	// Size is the on-disk size in bytes.
	Size int64

	// IsFolder marks an unpacked mod directory rather than a zip file.
	IsFolder bool

	// CopyOf names the mod this entry appears to be a duplicate of,
	// empty when the entry is not a copy.
	CopyOf string

	// Issues lists everything wrong with the entry. Empty means the mod
	// is usable as-is.
	Issues []string
}

// Broken reports whether the entry cannot be used at all.
func (r Record) Broken() bool {
	return len(r.Issues) > 0
}

// FormatSize renders a byte count the way the list tabs display sizes:
// "<value> <unit>" with unit B, Kb, Mb or Gb on a binary scale. The output
// parses back through the tabs' sort normalizer.
func FormatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	f := float64(n) / 1024
	if f < 1024 {
		return fmt.Sprintf("%.1f Kb", f)
	}
	f /= 1024
	if f < 1024 {
		return fmt.Sprintf("%.1f Mb", f)
	}
	return fmt.Sprintf("%.1f Gb", f/1024)
}
