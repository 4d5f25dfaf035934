package windows

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"modcheck/config"
	"modcheck/listtab"
	"modcheck/mods"
)

const (
	tabBroken    = "Broken Mods"
	tabConflicts = "Possible Conflicts"
	tabGood      = "Good Mods"
)

type MainWindow struct {
	a   fyne.App
	w   fyne.Window
	cfg *config.Config
	log zerolog.Logger

	// source backs every tab's detail lookup; populate rewrites it in
	// place so the tabs keep pointing at the same map.
	source listtab.MapSource

	tabs        *container.AppTabs
	tabsByTitle map[string]*listtab.ListTab
	statusBar   *widget.Label
	folder      string
}

func CreateMainWindow(cfg *config.Config, log zerolog.Logger) *MainWindow {
	var v MainWindow
	v.NewMainWindow(cfg, log)
	return &v
}

// SetStatus updates the status bar message
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

func (t *MainWindow) NewMainWindow(cfg *config.Config, log zerolog.Logger) {
	t.cfg = cfg
	t.log = log
	t.source = listtab.MapSource{}
	t.tabsByTitle = make(map[string]*listtab.ListTab)

	t.a = app.NewWithID("modcheck")
	t.a.Settings().SetTheme(&CustomTheme{})
	t.w = t.a.NewWindow("ModCheck")
	t.w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	// Create status bar
	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}

	t.tabs = container.NewAppTabs()
	t.newListTab(tabBroken,
		"These mods cannot be loaded by the game. Double-click an entry for details.",
		[]listtab.Column{
			{Label: "Name", Width: 260},
			{Label: "Issue", Stretch: true},
		})
	t.newListTab(tabConflicts,
		"These mods look like duplicates of another mod in the folder. Keep one copy.",
		[]listtab.Column{
			{Label: "Name", Width: 260},
			{Label: "Duplicate Of", Stretch: true},
			{Label: "Size", Width: 110, Align: fyne.TextAlignTrailing},
		})
	t.newListTab(tabGood,
		"These mods loaded cleanly.",
		[]listtab.Column{
			{Label: "Name", Width: 260},
			{Label: "Title", Stretch: true},
			{Label: "Version", Width: 110},
			{Label: "Size", Width: 110, Align: fyne.TextAlignTrailing},
		})

	top := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), t.OpenFolder),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), t.Rescan),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.ExportActiveTab),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), t.ShowAbout),
	)

	bottom := container.NewHBox(t.statusBar)
	t.w.SetContent(container.NewBorder(top, bottom, nil, nil, t.tabs))

	t.w.SetCloseIntercept(func() {
		size := t.w.Canvas().Size()
		t.cfg.WindowWidth = size.Width
		t.cfg.WindowHeight = size.Height
		t.cfg.ModFolder = t.folder
		if err := t.cfg.Save(""); err != nil {
			t.log.Warn().Err(err).Msg("could not save preferences")
		}
		t.w.Close()
	})

	if cfg.ModFolder != "" {
		t.loadFolder(cfg.ModFolder)
	}

	t.w.ShowAndRun()
}

func (t *MainWindow) newListTab(title, description string, columns []listtab.Column) {
	cfg := listtab.DefaultConfig()
	cfg.Title = title
	cfg.Description = description
	cfg.Columns = columns
	cfg.Source = t.source
	cfg.OnActivate = t.showDetail
	cfg.OnError = func(err error) {
		t.log.Error().Err(err).Msg("row activation failed")
		dialog.ShowError(err, t.w)
	}

	tab, err := listtab.New(cfg)
	if err != nil {
		// Static column sets make this unreachable.
		t.log.Panic().Err(err).Str("tab", title).Msg("cannot build tab")
	}
	tab.SetWindow(t.w)

	t.tabsByTitle[title] = tab
	t.tabs.Append(container.NewTabItem(title, tab))
}

func (t *MainWindow) OpenFolder() {
	fd := NewFolderDialog(t.w, t.folder, func(path string) {
		t.loadFolder(path)
	})
	fd.Show()
}

func (t *MainWindow) Rescan() {
	if t.folder == "" {
		t.SetStatus("No mod folder selected yet")
		return
	}
	t.loadFolder(t.folder)
}

func (t *MainWindow) loadFolder(path string) {
	t.SetStatus("Scanning " + path + "...")

	records, err := mods.Scan(path)
	if err != nil {
		t.log.Error().Err(err).Str("folder", path).Msg("scan failed")
		t.SetStatus("Error scanning folder")
		dialog.ShowError(err, t.w)
		return
	}

	t.folder = path
	t.populate(records)
	t.log.Info().Str("folder", path).Int("entries", len(records)).Msg("folder scanned")
}

// populate routes scanned records into the tabs and rebuilds the shared
// detail lookup map.
func (t *MainWindow) populate(records []mods.Record) {
	clear(t.source)
	for _, tab := range t.tabsByTitle {
		tab.ClearItems()
	}

	var broken, conflicts, good int
	for _, r := range records {
		t.source[r.Name] = r
		switch {
		case r.CopyOf != "":
			conflicts++
			t.addRow(tabConflicts, r.Name,
				[]string{r.Name, r.CopyOf, mods.FormatSize(r.Size)})
		case r.Broken():
			broken++
			t.addRow(tabBroken, r.Name, []string{r.Name, r.Issues[0]})
		default:
			good++
			t.addRow(tabGood, r.Name,
				[]string{r.Name, r.Title, r.Version, mods.FormatSize(r.Size)})
		}
	}

	t.SetStatus(fmt.Sprintf("%d entries: %d good, %d broken, %d possible conflicts",
		len(records), good, broken, conflicts))
}

func (t *MainWindow) addRow(tabTitle, name string, values []string) {
	if err := t.tabsByTitle[tabTitle].AddItem(name, values); err != nil {
		t.log.Warn().Err(err).Str("mod", name).Msg("row dropped")
	}
}

// showDetail is the activation presenter shared by all tabs.
func (t *MainWindow) showDetail(_ fyne.Window, key string, item any) {
	rec, ok := item.(mods.Record)
	if !ok {
		dialog.ShowError(fmt.Errorf("no detail available for %q", key), t.w)
		return
	}
	ShowDetailWindow(t.a, rec)
}

func (t *MainWindow) ShowAbout() {
	dialog.ShowInformation("ModCheck",
		"Checks a savegame mod folder for broken mods, duplicates and clutter.\n\n"+
			"Click a column header to sort. Double-click a mod for details.",
		t.w)
}
