package ui

import "fyne.io/fyne/v2"

// Split ratios
const (
	MainSplitRatio = 0.36 // 36% left (form, results), 64% right (charts)
)

// Chart dimensions
const (
	ChartMinWidth  = 420
	ChartMinHeight = 320

	plotMarginLeft   = 44
	plotMarginRight  = 12
	plotMarginTop    = 28
	plotMarginBottom = 40

	pointMarkerSize = 10
	dashSegments    = 14
	axisTextSize    = 11
)

// Axis tick spacing
const (
	heightTickStep  = 10 // cm
	weightTickStep  = 50 // kg
	percentTickStep = 5  // %
)

// NewChartMinSize returns the minimum size for a chart widget
func NewChartMinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

// plotInsets returns the plot area inside a chart of the given size.
func plotInsets(size fyne.Size) (fyne.Position, fyne.Size) {
	pos := fyne.NewPos(plotMarginLeft, plotMarginTop)
	w := size.Width - plotMarginLeft - plotMarginRight
	h := size.Height - plotMarginTop - plotMarginBottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return pos, fyne.NewSize(w, h)
}
