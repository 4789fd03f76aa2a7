package ui

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/export"
	"scoreboard/internal/graphics"
	"scoreboard/internal/side"
	"scoreboard/internal/snapshot"
)

// Controls manages the buttons that edit the previews and push them to the
// presenters.
type Controls struct {
	s         *session
	form      *ContentForm
	snapshots *SnapshotList

	// OnDisplaysChanged runs after the previews were rebuilt.
	OnDisplaysChanged func()

	setTextBtn    *widget.Button
	sendBtn       *widget.Button
	sendHomeBtn   *StyledButton
	sendAwayBtn   *StyledButton
	blackoutBtn   *StyledButton
	imageBtn      *widget.Button
	clearImageBtn *widget.Button
	colorsBtn     *widget.Button
	swapBtn       *widget.Button
	snapshotBtn   *widget.Button
	exportBtn     *widget.Button

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(s *session, form *ContentForm, snapshots *SnapshotList, colors graphics.TeamColors) *Controls {
	c := &Controls{s: s, form: form, snapshots: snapshots}

	c.setTextBtn = widget.NewButton("Set Text", c.ApplyText)
	c.sendBtn = widget.NewButton("Send All", func() { c.Send(side.Home | side.Away | side.Error) })
	c.sendHomeBtn = NewStyledButton("Send Home", func() { c.Send(side.Home) }, colors.Home)
	c.sendAwayBtn = NewStyledButton("Send Away", func() { c.Send(side.Away) }, colors.Away)
	c.blackoutBtn = NewStyledButton("Blackout", c.Blackout, graphics.Black)

	c.imageBtn = widget.NewButton("Image...", c.onImage)
	c.clearImageBtn = widget.NewButton("Default Background", c.ClearImage)
	c.colorsBtn = widget.NewButton("Apply Colors", c.ApplyColors)
	c.swapBtn = widget.NewButton("Swap Sides", c.SwapSides)
	c.snapshotBtn = widget.NewButton("Snapshot", c.onSnapshot)
	c.exportBtn = widget.NewButton("Export History", c.onExport)

	c.container = container.NewVBox(
		container.NewHBox(c.setTextBtn, c.imageBtn, c.clearImageBtn, c.colorsBtn),
		container.NewGridWithColumns(4, c.sendBtn, c.sendHomeBtn, c.sendAwayBtn, c.blackoutBtn),
		container.NewHBox(c.swapBtn, c.snapshotBtn, c.exportBtn),
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// ApplyText puts the form's text on the targeted sides of every preview.
func (c *Controls) ApplyText() {
	target := c.form.Target()
	c.s.panel.SetTextForPreviews(c.form.Text(), c.form.FontSize(), target)
	for _, pv := range c.s.panel.Previews() {
		pv.Text().SetAutoFit(c.form.AutoFit(), target)
		pv.Refresh()
	}
}

// Send copies the sides matching filter from the previews to the presenters.
func (c *Controls) Send(filter side.Set) {
	c.s.panel.UpdatePresenters(filter)
	c.s.record(export.Push{Action: "send", Sides: filter, Text: c.form.Text()})
}

// Blackout blacks out every presenter. The previews keep their content.
func (c *Controls) Blackout() {
	c.s.panel.BlackoutPresenters()
	c.s.record(export.Push{Action: "blackout", Sides: side.Home | side.Away | side.Error})
}

// ApplyColors changes the team colors and puts the team sides of the
// previews back on their team background.
func (c *Controls) ApplyColors() {
	colors, err := c.form.TeamColors()
	if err != nil {
		c.s.status.AppendLine(fmt.Sprintf("Color error: %v", err))
		return
	}
	c.s.panel.SetTeamColors(colors)
	for _, pv := range c.s.panel.Previews() {
		pv.Text().SetDefaultBackground(side.Both)
	}
	c.sendHomeBtn.SetColor(colors.Home)
	c.sendAwayBtn.SetColor(colors.Away)
	c.s.refreshAll()
	c.s.log.Info("team colors changed", "home", graphics.HexString(colors.Home), "away", graphics.HexString(colors.Away))
}

// SetImage shows img scaled on the targeted sides of every preview.
func (c *Controls) SetImage(img image.Image) {
	target := c.form.Target()
	for _, pv := range c.s.panel.Previews() {
		pv.Text().SetImage(img, true, target)
		pv.Refresh()
	}
}

// ClearImage restores the team background on the targeted sides.
func (c *Controls) ClearImage() {
	target := c.form.Target()
	for _, pv := range c.s.panel.Previews() {
		pv.Text().SetDefaultBackground(target)
		pv.Refresh()
	}
}

// SwapSides exchanges home and away on every display and rebuilds the
// previews.
func (c *Controls) SwapSides() {
	for i, info := range c.s.displays.Displays {
		c.s.displays.Displays[i].Side = swapTeams(info.Side)
	}
	c.s.panel.UpdatePreviewsFromSettings()
	if c.OnDisplaysChanged != nil {
		c.OnDisplaysChanged()
	}
	c.s.status.AppendLine("Home and away swapped.")
}

func swapTeams(s side.Set) side.Set {
	out := s &^ side.Both
	if s.Has(side.Home) {
		out |= side.Away
	}
	if s.Has(side.Away) {
		out |= side.Home
	}
	return out
}

// Snapshot writes the current frame of every presenter to the snapshot
// directory and returns the written paths.
func (c *Controls) Snapshot() ([]string, error) {
	dir := c.snapshots.Dir()
	id := snapshot.NextFrameID(c.s.now())
	var paths []string
	var errs []error
	for _, pv := range c.s.panel.Previews() {
		p, ok := pv.Presenter()
		if !ok {
			continue
		}
		img := snapshot.Frame(p.Text(), p.Text().Size(), c.s.fonts)
		path := snapshot.BuildPath(dir, fmt.Sprintf("presenter%d-%s", p.Monitor(), pv.Info().Side), id)
		if err := snapshot.WritePNG(path, img); err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	c.snapshots.Refresh()
	return paths, errors.Join(errs...)
}

func (c *Controls) onSnapshot() {
	paths, err := c.Snapshot()
	if err != nil {
		c.s.status.AppendLine(fmt.Sprintf("Snapshot error: %v", err))
	}
	if len(paths) > 0 {
		c.s.status.AppendLine(fmt.Sprintf("Saved %d snapshot(s) to %s", len(paths), c.snapshots.Dir()))
	}
}

func (c *Controls) onImage() {
	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		img, err := graphics.DecodeImage(reader)
		if err != nil {
			c.s.status.AppendLine(fmt.Sprintf("Image error: %v", err))
			return
		}
		c.SetImage(img)
		c.s.status.AppendLine(fmt.Sprintf("Loaded %s", reader.URI().Name()))
	}, win[0])
	open.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif", ".webp"}))
	open.Show()
}

// ExportHistory writes the push history as CSV to path and as text next to
// it.
func (c *Controls) ExportHistory(path string) (int, error) {
	pushes := c.s.history.Pushes()
	if len(pushes) == 0 {
		return 0, nil
	}
	if err := export.WriteCSV(path, pushes); err != nil {
		return 0, err
	}
	txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
	if err := export.WriteTXT(txtPath, pushes); err != nil {
		return len(pushes), err
	}
	return len(pushes), nil
}

func (c *Controls) onExport() {
	if len(c.s.history.Pushes()) == 0 {
		c.s.status.AppendLine("No history to export.")
		return
	}

	win := fyne.CurrentApp().Driver().AllWindows()
	if len(win) == 0 {
		return
	}
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		n, err := c.ExportHistory(path)
		if err != nil {
			c.s.status.AppendLine(fmt.Sprintf("Export error: %v", err))
			return
		}
		c.s.status.AppendLine(fmt.Sprintf("Exported %d entries to %s", n, path))
	}, win[0])
}
