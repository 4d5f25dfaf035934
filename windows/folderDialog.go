package windows

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FolderDialog lets the user navigate to and choose the mod folder to scan.
// Only directories are listed; the currently shown directory is chosen with
// the scan button.
type FolderDialog struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string)
	dirList     *widget.List
	dirs        []string
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
}

func NewFolderDialog(w fyne.Window, start string, callback func(string)) *FolderDialog {
	fd := &FolderDialog{
		window:   w,
		callback: callback,
		dirs:     make([]string, 0),
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fd.homeDir = homeDir

	fd.currentPath = homeDir
	if start != "" {
		if info, err := os.Stat(start); err == nil && info.IsDir() {
			fd.currentPath = start
		}
	}

	return fd
}

func (fd *FolderDialog) Show() {
	fd.pathLabel = widget.NewLabel(fd.currentPath)
	fd.pathLabel.Wrapping = fyne.TextTruncate
	fd.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	fd.dirList = widget.NewList(
		func() int {
			return len(fd.dirs)
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(theme.FolderIcon())
			label := widget.NewLabel("template")
			return container.NewHBox(icon, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cont := obj.(*fyne.Container)
			cont.Objects[1].(*widget.Label).SetText(fd.dirs[id])
		},
	)

	// Selecting a directory navigates into it
	fd.dirList.OnSelected = func(id widget.ListItemID) {
		fd.currentPath = filepath.Join(fd.currentPath, fd.dirs[id])
		fd.loadDirectory()
		fd.dirList.UnselectAll()
	}

	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fd.currentPath = fd.homeDir
		fd.loadDirectory()
	})

	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		parent := filepath.Dir(fd.currentPath)
		if parent != fd.currentPath {
			fd.currentPath = parent
			fd.loadDirectory()
		}
	})

	scanButton := widget.NewButtonWithIcon("Scan This Folder", theme.ConfirmIcon(), func() {
		fd.callback(fd.currentPath)
		fd.dialog.Hide()
	})
	scanButton.Importance = widget.HighImportance

	navToolbar := container.NewBorder(
		nil, nil,
		container.NewHBox(homeButton, upButton),
		scanButton,
		fd.pathLabel,
	)

	instructions := widget.NewRichTextFromMarkdown("**Select your mod folder**\n\nClick a folder to open it, then press *Scan This Folder*.")
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		container.NewVBox(
			instructions,
			widget.NewSeparator(),
			navToolbar,
			widget.NewSeparator(),
		),
		nil, nil, nil,
		fd.dirList,
	)

	fd.dialog = dialog.NewCustom("Select Mod Folder", "Cancel", content, fd.window)
	fd.dialog.Resize(fyne.NewSize(700, 520))

	fd.loadDirectory()
	fd.dialog.Show()
}

func (fd *FolderDialog) loadDirectory() {
	entries, err := os.ReadDir(fd.currentPath)
	if err != nil {
		dialog.ShowError(err, fd.window)
		return
	}

	fd.dirs = make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			fd.dirs = append(fd.dirs, entry.Name())
		}
	}

	fd.pathLabel.SetText(fd.currentPath)
	fd.dirList.Refresh()
}
