package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/format"
	"bodycalc/internal/input"
	"bodycalc/internal/logging"
	"bodycalc/internal/metrics"
)

// Controls manages the Calculate and Clear buttons.
type Controls struct {
	calcBtn  *StyledButton
	clearBtn *widget.Button

	win     fyne.Window
	form    *MeasurementForm
	results *ResultsView
	charts  *ChartsView

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
// Input errors are shown in a dialog on win.
func NewControls(win fyne.Window, mf *MeasurementForm, rv *ResultsView, cv *ChartsView) *Controls {
	c := &Controls{
		win:     win,
		form:    mf,
		results: rv,
		charts:  cv,
	}

	c.calcBtn = NewAccentButton("Calculate", c.onCalculate)
	c.clearBtn = widget.NewButton("Clear", c.onClear)

	c.container = container.NewGridWithColumns(2, c.calcBtn, c.clearBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// onCalculate updates every view at once or none of them.
func (c *Controls) onCalculate() {
	m, err := input.Parse(c.form.Raw())
	if err != nil {
		c.showError(err)
		return
	}

	r, err := metrics.Calculate(m)
	if err != nil {
		c.showError(err)
		return
	}

	logging.Debug(logging.Fields{"bmi": r.BMI, "bfp_navy": r.BFPNavy, "bfp_bmi": r.BFPBMI}, "calculated")
	c.results.Show(m, r)
	c.charts.Update(m, r)
}

func (c *Controls) showError(err error) {
	logging.Warn(logging.Fields{"error": err.Error()}, "invalid measurement")
	dialog.ShowInformation("Input error", format.Notice(err), c.win)
}

func (c *Controls) onClear() {
	c.form.Reset()
	c.results.Clear()
	c.charts.Clear()
}
