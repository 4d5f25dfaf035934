package mods

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Mod names the game accepts: letters, digits and underscores, not starting
// with a digit.
var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Windows-style duplicate suffixes: "Mod - Copy", "Mod - Copy (2)", "Mod (3)".
var copySuffix = regexp.MustCompile(`(?i)^(.+?)(?: - copy)?(?: \((\d+)\))?$`)

// modDesc is the subset of a mod's modDesc.xml descriptor that the detail
// view shows.
type modDesc struct {
	XMLName xml.Name `xml:"modDesc"`
	Version string   `xml:"version"`
	Title   struct {
		EN string `xml:"en"`
	} `xml:"title"`
}

// Scan reads a mod folder and classifies every entry. It returns one Record
// per entry, sorted by name. Hidden entries are skipped. The scan itself only
// fails when the folder cannot be read; a malformed individual mod becomes a
// Record with Issues, not an error.
func Scan(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mod folder: %w", err)
	}

	records := make([]Record, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			r := scanFolder(dir, name)
			records = append(records, r)
			seen[r.Name] = true
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if !strings.EqualFold(filepath.Ext(name), ".zip") {
			records = append(records, Record{
				Name:   strings.TrimSuffix(name, filepath.Ext(name)),
				Title:  name,
				Size:   info.Size(),
				Issues: []string{"not a mod: only zip files and folders are loaded"},
			})
			continue
		}

		r := scanZip(filepath.Join(dir, name), info.Size())
		records = append(records, r)
		seen[r.Name] = true
	}

	markCopies(records, seen)

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

func scanFolder(dir, name string) Record {
	r := Record{
		Name:     name,
		Title:    name,
		Version:  "-",
		IsFolder: true,
	}
	r.Size = folderSize(filepath.Join(dir, name))

	if !validName.MatchString(name) {
		r.Issues = append(r.Issues, "folder name contains characters the game rejects")
	}

	desc, err := readDesc(filepath.Join(dir, name, "modDesc.xml"))
	if err != nil {
		r.Issues = append(r.Issues, "no readable modDesc.xml: not a mod folder")
	} else {
		applyDesc(&r, desc)
	}
	return r
}

func scanZip(path string, size int64) Record {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r := Record{
		Name:    base,
		Title:   base,
		Version: "-",
		Size:    size,
	}

	if !validName.MatchString(base) {
		r.Issues = append(r.Issues, "file name contains characters the game rejects")
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		r.Issues = append(r.Issues, "zip file cannot be opened")
		return r
	}
	defer zr.Close()

	desc, err := readZipDesc(&zr.Reader)
	if err != nil {
		r.Issues = append(r.Issues, "no readable modDesc.xml inside the zip")
		return r
	}
	applyDesc(&r, desc)
	return r
}

func readDesc(path string) (*modDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d modDesc
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func readZipDesc(zr *zip.Reader) (*modDesc, error) {
	f, err := zr.Open("modDesc.xml")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var d modDesc
	if err := xml.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func applyDesc(r *Record, d *modDesc) {
	if t := strings.TrimSpace(d.Title.EN); t != "" {
		r.Title = t
	}
	if v := strings.TrimSpace(d.Version); v != "" {
		r.Version = v
	}
}

// markCopies flags entries whose name looks like a duplicate of another
// entry that is actually present.
func markCopies(records []Record, seen map[string]bool) {
	for i := range records {
		m := copySuffix.FindStringSubmatch(records[i].Name)
		if m == nil {
			continue
		}
		original := m[1]
		if original == records[i].Name || !seen[original] {
			continue
		}
		records[i].CopyOf = original
		records[i].Issues = append(records[i].Issues,
			fmt.Sprintf("probable duplicate of %s", original))
	}
}

func folderSize(dir string) int64 {
	var total int64
	filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
