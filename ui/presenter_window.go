package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"scoreboard/internal/display"
	"scoreboard/internal/logs"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
)

// WindowOpener shows each presenter in its own window. fyne does not place
// windows on a given monitor, so full screen windows open where the window
// manager puts them; the title names the display they belong on.
type WindowOpener struct {
	App    fyne.App
	Fonts  *render.Fonts
	Logger *slog.Logger
}

// OpenPresenter creates and shows the presenter window.
func (o *WindowOpener) OpenPresenter(p *preview.Presenter, info display.Info, windowed bool) preview.Surface {
	log := logs.WithComponent(o.Logger, "presenter")
	win := o.App.NewWindow(presenterTitle(p.Monitor(), info))
	sc := NewScreenCanvas(p.Text(), o.Fonts, fyne.NewSize(1, 1))
	win.SetPadded(false)
	win.SetContent(sc)

	size := info.Dimensions.Size
	if size.Empty() {
		size = p.Text().Size()
	}
	win.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	win.SetFullScreen(!windowed)
	// Presenters go away with their preview, not with the window button.
	win.SetCloseIntercept(win.Hide)
	win.Show()

	log.Debug("presenter window shown", "monitor", p.Monitor(), "side", info.Side, "fullscreen", !windowed)
	return &presenterWindow{win: win, canvas: sc}
}

func presenterTitle(monitor int, info display.Info) string {
	return fmt.Sprintf("Scoreboard display %d (%s) %s", monitor+1, info.Side, info.Dimensions)
}

type presenterWindow struct {
	win    fyne.Window
	canvas *ScreenCanvas
}

func (w *presenterWindow) Refresh() { w.canvas.Refresh() }

func (w *presenterWindow) Close() { w.win.Close() }
