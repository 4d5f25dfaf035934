package windows

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"modcheck/mods"
)

// ShowDetailWindow opens a child window describing one scanned mod.
func ShowDetailWindow(a fyne.App, rec mods.Record) {
	kind := "Zip file"
	if rec.IsFolder {
		kind = "Unpacked folder"
	}

	form := widget.NewForm(
		widget.NewFormItem("Name", widget.NewLabel(rec.Name)),
		widget.NewFormItem("Title", widget.NewLabel(rec.Title)),
		widget.NewFormItem("Version", widget.NewLabel(rec.Version)),
		widget.NewFormItem("Type", widget.NewLabel(kind)),
		widget.NewFormItem("Size", widget.NewLabel(mods.FormatSize(rec.Size))),
	)

	content := container.NewVBox(form)
	if rec.Broken() {
		content.Add(widget.NewSeparator())
		issues := widget.NewLabel("• " + strings.Join(rec.Issues, "\n• "))
		issues.Wrapping = fyne.TextWrapWord
		content.Add(widget.NewCard("", "Issues", issues))
	}

	w := a.NewWindow(rec.Name)
	closeButton := widget.NewButton("Close", func() { w.Close() })
	w.SetContent(container.NewBorder(nil, closeButton, nil, nil, content))
	w.Resize(fyne.NewSize(440, 320))
	w.Show()
}
