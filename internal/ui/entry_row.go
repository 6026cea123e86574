package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/view"
)

// fixedWidth pins obj to width w using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// EntryRow is one checklist line: seen and caught boxes, id, icon and a
// name linking to the wiki
type EntryRow struct {
	widget.BaseWidget

	row      view.Row
	showIcon bool

	// UI components
	seenCheck   *widget.Check
	caughtCheck *widget.Check
	idLabel     *widget.Label
	iconImage   *canvas.Image
	nameLink    *widget.Hyperlink

	// updating suppresses OnChanged while the row is being filled from state
	updating bool

	// Callbacks
	onSetFlag  func(id string, flag model.Flag, value bool)
	onOpenLink func(entry model.Entry)
}

// NewEntryRow creates an empty row; SetRow fills it
func NewEntryRow() *EntryRow {
	er := &EntryRow{showIcon: true}
	er.ExtendBaseWidget(er)
	er.createUI()
	return er
}

// SetCallbacks sets the action callbacks
func (er *EntryRow) SetCallbacks(onSetFlag func(id string, flag model.Flag, value bool), onOpenLink func(entry model.Entry)) {
	er.onSetFlag = onSetFlag
	er.onOpenLink = onOpenLink
}

// SetRow shows row with the given icon. Seen is disabled while caught is set.
func (er *EntryRow) SetRow(row view.Row, icon fyne.Resource, showIcon bool) {
	er.row = row
	er.showIcon = showIcon

	er.updating = true
	er.seenCheck.SetChecked(row.Flags.Seen)
	er.caughtCheck.SetChecked(row.Flags.Caught)
	er.updating = false

	if row.SeenEditable {
		er.seenCheck.Enable()
	} else {
		er.seenCheck.Disable()
	}

	er.idLabel.SetText(row.Entry.ID)
	er.nameLink.SetText(row.Entry.DisplayName())

	if showIcon {
		er.iconImage.Resource = icon
		er.iconImage.Show()
	} else {
		er.iconImage.Hide()
	}
	er.iconImage.Refresh()
	er.Refresh()
}

func (er *EntryRow) createUI() {
	er.seenCheck = widget.NewCheck("", func(checked bool) {
		er.changed(model.FlagSeen, checked)
	})
	er.caughtCheck = widget.NewCheck("", func(checked bool) {
		er.changed(model.FlagCaught, checked)
	})

	er.idLabel = widget.NewLabel("")
	er.idLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.iconImage = canvas.NewImageFromResource(nil)
	er.iconImage.FillMode = canvas.ImageFillContain
	er.iconImage.SetMinSize(fyne.NewSize(IconSize, IconSize))

	er.nameLink = widget.NewHyperlink("", nil)
	er.nameLink.Truncation = fyne.TextTruncateEllipsis
	er.nameLink.OnTapped = func() {
		if er.onOpenLink != nil && er.row.Entry.ID != "" {
			er.onOpenLink(er.row.Entry)
		}
	}
}

func (er *EntryRow) changed(flag model.Flag, checked bool) {
	if er.updating || er.onSetFlag == nil || er.row.Entry.ID == "" {
		return
	}
	er.onSetFlag(er.row.Entry.ID, flag, checked)
}

// CreateRenderer creates the widget renderer
func (er *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	return &entryRowRenderer{entryRow: er}
}

// entryRowRenderer renders the entry row widget
type entryRowRenderer struct {
	entryRow *EntryRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *entryRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *entryRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	minSize := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(minSize.Width, RowMinWidth), fyne.Max(minSize.Height, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *entryRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *entryRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *entryRowRenderer) Destroy() {}

func (r *entryRowRenderer) createLayout() {
	er := r.entryRow

	left := container.NewHBox(
		fixedWidth(CheckColumnWidth, container.NewCenter(er.seenCheck)),
		fixedWidth(CheckColumnWidth, container.NewCenter(er.caughtCheck)),
		fixedWidth(IDColumnWidth, er.idLabel),
		fixedWidth(IconColumnWidth, container.NewCenter(er.iconImage)),
	)

	// Name takes the remaining width
	r.layout = container.NewBorder(nil, nil, left, nil, er.nameLink)
}
