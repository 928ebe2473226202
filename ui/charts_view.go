package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/chart"
	"bodycalc/internal/config"
	"bodycalc/internal/format"
	"bodycalc/internal/model"
)

const legendSwatchSize = 14

// ChartsView holds the BMI and body fat charts in tabs.
type ChartsView struct {
	bmiChart  *BMIChart
	bfpChart  *BFPChart
	youLabel  *widget.Label
	navyLabel *widget.Label
	bmiLabel  *widget.Label
	bfpLegend *fyne.Container
	refTable  *fyne.Container
	tabs      *container.AppTabs
}

// NewChartsView builds both charts from the configured axis ranges.
// The body fat chart starts with the male ranges.
func NewChartsView(cfg *config.Config) *ChartsView {
	cv := &ChartsView{}

	cv.bmiChart = NewBMIChart(chart.NewBMIChart(cfg.ChartHeightMinCm, cfg.ChartHeightMaxCm, cfg.ChartWeightMaxKg))
	cv.bfpChart = NewBFPChart(model.Male, cfg.ChartBFPMax)

	cv.youLabel = widget.NewLabel("You")
	cv.navyLabel = widget.NewLabel("US Navy BFP")
	cv.bmiLabel = widget.NewLabel("BMI Method BFP")

	bmiLegend := container.NewVBox()
	for _, b := range cv.bmiChart.chart.Bands() {
		bmiLegend.Add(legendItem(b.Color, b.Label()))
	}
	point := canvas.NewCircle(chart.PointColor)
	bmiLegend.Add(container.NewHBox(container.NewGridWrap(fyne.NewSize(legendSwatchSize, legendSwatchSize), point), cv.youLabel))

	cv.bfpLegend = container.NewVBox()
	cv.refTable = container.NewGridWithColumns(2)
	cv.setGender(model.Male)

	bmiTab := container.NewBorder(nil, nil, nil, bmiLegend, cv.bmiChart)
	bfpSide := container.NewVBox(
		cv.bfpLegend,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Reference", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cv.refTable,
	)
	bfpTab := container.NewBorder(nil, nil, nil, bfpSide, cv.bfpChart)

	cv.tabs = container.NewAppTabs(
		container.NewTabItem("BMI Chart", bmiTab),
		container.NewTabItem("BFP Chart", bfpTab),
	)
	return cv
}

// Container returns the tabs.
func (cv *ChartsView) Container() *container.AppTabs {
	return cv.tabs
}

// Update redraws both charts for a new result.
func (cv *ChartsView) Update(m model.Measurement, r model.Result) {
	cv.bmiChart.SetPoint(m.HeightCm, m.WeightKg, r.BMI)
	if cv.bmiChart.PointVisible() {
		cv.youLabel.SetText(fmt.Sprintf("You (BMI %.1f)", r.BMI))
	} else {
		cv.youLabel.SetText(fmt.Sprintf("You (BMI %.1f, off chart)", r.BMI))
	}

	cv.setGender(m.Gender)
	cv.bfpChart.SetEstimates(m.Gender, r.BFPNavy, r.BFPBMI)
	cv.navyLabel.SetText(fmt.Sprintf("US Navy BFP: %.1f%%", r.BFPNavy))
	cv.bmiLabel.SetText(fmt.Sprintf("BMI Method BFP: %.1f%%", r.BFPBMI))
}

// Clear hides the markers and restores the male ranges.
func (cv *ChartsView) Clear() {
	cv.bmiChart.ClearPoint()
	cv.bfpChart.ClearEstimates()
	cv.youLabel.SetText("You")
	cv.navyLabel.SetText("US Navy BFP")
	cv.bmiLabel.SetText("BMI Method BFP")
	cv.setGender(model.Male)
}

func (cv *ChartsView) setGender(g model.Gender) {
	items := []fyne.CanvasObject{}
	for _, b := range chart.BFPBands(g) {
		items = append(items, legendItem(b.Color, b.Label()))
	}
	items = append(items,
		container.NewHBox(markerSwatch(chart.NavyMarkerColor), cv.navyLabel),
		container.NewHBox(markerSwatch(chart.BMIMarkerColor), cv.bmiLabel),
	)
	cv.bfpLegend.Objects = items
	cv.bfpLegend.Refresh()

	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Category", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Reference Range", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	for _, row := range format.ReferenceRows(g) {
		rows = append(rows, widget.NewLabel(row[0]), widget.NewLabel(row[1]))
	}
	cv.refTable.Objects = rows
	cv.refTable.Refresh()
}

func legendItem(c color.Color, text string) fyne.CanvasObject {
	swatch := canvas.NewRectangle(c)
	swatch.SetMinSize(fyne.NewSize(legendSwatchSize, legendSwatchSize))
	return container.NewHBox(container.NewCenter(swatch), widget.NewLabel(text))
}

func markerSwatch(c color.Color) fyne.CanvasObject {
	line := canvas.NewRectangle(c)
	line.SetMinSize(fyne.NewSize(legendSwatchSize, 2))
	return container.NewCenter(line)
}
