package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/format"
	"bodycalc/internal/metrics"
	"bodycalc/internal/model"
)

const (
	bmiPlaceholder    = "BMI: "
	navyPlaceholder   = "BFP (US Navy Method): "
	bmiBFPPlaceholder = "BFP (BMI Method): "
)

// ResultsView displays the latest calculation as text.
type ResultsView struct {
	bmiLabel    *widget.Label
	navyLabel   *widget.Label
	bmiBFPLabel *widget.Label
	report      *reportEntry
	scrollBox   *container.Scroll
	container   *fyne.Container
}

// NewResultsView creates the result labels and the copyable report.
func NewResultsView() *ResultsView {
	rv := &ResultsView{}

	rv.bmiLabel = widget.NewLabelWithStyle(bmiPlaceholder, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	rv.navyLabel = widget.NewLabelWithStyle(navyPlaceholder, fyne.TextAlignCenter, fyne.TextStyle{})
	rv.bmiBFPLabel = widget.NewLabelWithStyle(bmiBFPPlaceholder, fyne.TextAlignCenter, fyne.TextStyle{})

	rv.report = newReportEntry()

	rv.scrollBox = container.NewVScroll(rv.report)
	rv.scrollBox.SetMinSize(fyne.NewSize(320, 180))

	rv.container = container.NewVBox(
		rv.bmiLabel,
		rv.navyLabel,
		rv.bmiBFPLabel,
		widget.NewSeparator(),
		rv.scrollBox,
	)
	return rv
}

// Container returns the results container.
func (rv *ResultsView) Container() *fyne.Container {
	return rv.container
}

// Show replaces the displayed result. Categories follow each value.
func (rv *ResultsView) Show(m model.Measurement, r model.Result) {
	rv.bmiLabel.SetText(format.FormatBMI(r.BMI) + "  (" + metrics.BMICategory(r.BMI) + ")")
	rv.navyLabel.SetText(format.FormatBFPNavy(r.BFPNavy) + "  (" + metrics.BFPCategory(m.Gender, r.BFPNavy) + ")")
	rv.bmiBFPLabel.SetText(format.FormatBFPBMI(r.BFPBMI) + "  (" + metrics.BFPCategory(m.Gender, r.BFPBMI) + ")")
	rv.report.SetReport(format.FormatResult(m, r))
	rv.scrollBox.ScrollToTop()
}

// Clear resets the labels to their placeholders.
func (rv *ResultsView) Clear() {
	rv.bmiLabel.SetText(bmiPlaceholder)
	rv.navyLabel.SetText(navyPlaceholder)
	rv.bmiBFPLabel.SetText(bmiBFPPlaceholder)
	rv.report.SetReport("")
}
