package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"bodycalc/internal/config"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, cfg *config.Config) fyne.Window {
	win := app.NewWindow("BMI and BFP Calculator")
	win.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	form := NewMeasurementForm()
	results := NewResultsView()
	charts := NewChartsView(cfg)
	controls := NewControls(win, form, results, charts)

	leftPanel := container.NewVBox(
		form.Container(),
		controls.Container(),
		results.Container(),
	)

	content := container.NewHSplit(container.NewVScroll(leftPanel), charts.Container())
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)
	return win
}
