package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/chart"
	"bodycalc/internal/model"
)

// BFPChart draws the body fat reference ranges for one gender with a dashed
// marker for each estimate.
type BFPChart struct {
	widget.BaseWidget
	chart      *chart.BFPChart
	maxPercent float64
	navy       float64
	bmi        float64
	hasValues  bool
}

// NewBFPChart creates a chart widget for g covering [0, maxPercent].
func NewBFPChart(g model.Gender, maxPercent float64) *BFPChart {
	w := &BFPChart{chart: chart.NewBFPChart(g, maxPercent), maxPercent: maxPercent}
	w.ExtendBaseWidget(w)
	return w
}

// Bands returns the zones currently drawn.
func (w *BFPChart) Bands() []chart.Band {
	return w.chart.Bands()
}

// SetEstimates switches to g's ranges and moves both markers.
func (w *BFPChart) SetEstimates(g model.Gender, navy, bmi float64) {
	w.chart = chart.NewBFPChart(g, w.maxPercent)
	w.navy = navy
	w.bmi = bmi
	w.hasValues = true
	w.Refresh()
}

// ClearEstimates hides both markers.
func (w *BFPChart) ClearEstimates() {
	w.hasValues = false
	w.Refresh()
}

// CreateRenderer returns the chart renderer.
func (w *BFPChart) CreateRenderer() fyne.WidgetRenderer {
	w.ExtendBaseWidget(w)
	fg := theme.Color(theme.ColorNameForeground)

	r := &bfpChartRenderer{chart: w}

	r.zones = canvas.NewRasterWithPixels(func(x, _, width, _ int) color.Color {
		return w.chart.PixelColor(x, width)
	})
	r.frame = canvas.NewRectangle(color.Transparent)
	r.frame.StrokeColor = fg
	r.frame.StrokeWidth = 1

	r.title = canvas.NewText("Body Fat Percentage (BFP) Chart", fg)
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.xTitle = newAxisText("Body Fat Percentage (%)", fg)

	for _, v := range w.chart.Percent.Ticks(percentTickStep) {
		r.ticks = append(r.ticks, tickText{value: v, text: newAxisText(chart.TickLabel(v), fg)})
	}

	r.navyDash = newDashedLine(chart.NavyMarkerColor)
	r.bmiDash = newDashedLine(chart.BMIMarkerColor)

	r.objects = []fyne.CanvasObject{r.zones, r.frame, r.title, r.xTitle}
	for _, t := range r.ticks {
		r.objects = append(r.objects, t.text)
	}
	for _, l := range r.navyDash {
		r.objects = append(r.objects, l)
	}
	for _, l := range r.bmiDash {
		r.objects = append(r.objects, l)
	}
	return r
}

func newDashedLine(c color.Color) []*canvas.Line {
	lines := make([]*canvas.Line, dashSegments)
	for i := range lines {
		l := canvas.NewLine(c)
		l.StrokeWidth = 2
		l.Hide()
		lines[i] = l
	}
	return lines
}

type bfpChartRenderer struct {
	chart    *BFPChart
	size     fyne.Size
	zones    *canvas.Raster
	frame    *canvas.Rectangle
	title    *canvas.Text
	xTitle   *canvas.Text
	ticks    []tickText
	navyDash []*canvas.Line
	bmiDash  []*canvas.Line
	objects  []fyne.CanvasObject
}

func (r *bfpChartRenderer) Layout(size fyne.Size) {
	r.size = size
	pos, plot := plotInsets(size)

	r.zones.Move(pos)
	r.zones.Resize(plot)
	r.frame.Move(pos)
	r.frame.Resize(plot)

	titleMin := r.title.MinSize()
	r.title.Move(fyne.NewPos((size.Width-titleMin.Width)/2, 4))
	r.title.Resize(titleMin)

	xMin := r.xTitle.MinSize()
	r.xTitle.Move(fyne.NewPos(pos.X+(plot.Width-xMin.Width)/2, size.Height-xMin.Height-2))
	r.xTitle.Resize(xMin)

	axis := r.chart.chart.Percent
	for _, t := range r.ticks {
		m := t.text.MinSize()
		x := pos.X + float32(axis.ToPixel(t.value, float64(plot.Width)))
		t.text.Move(fyne.NewPos(x-m.Width/2, pos.Y+plot.Height+2))
		t.text.Resize(m)
	}

	r.layoutMarkers(pos, plot)
}

func (r *bfpChartRenderer) layoutMarkers(pos fyne.Position, plot fyne.Size) {
	w := r.chart
	if !w.hasValues {
		hideLines(r.navyDash)
		hideLines(r.bmiDash)
		return
	}
	axis := w.chart.Percent
	layoutDash(r.navyDash, pos.X+float32(axis.ToPixel(w.navy, float64(plot.Width))), pos.Y, plot.Height)
	layoutDash(r.bmiDash, pos.X+float32(axis.ToPixel(w.bmi, float64(plot.Width))), pos.Y, plot.Height)
}

// layoutDash spreads the segments over a vertical line at x, each segment
// filling the first half of its slot.
func layoutDash(lines []*canvas.Line, x, top, height float32) {
	slot := height / float32(len(lines))
	for i, l := range lines {
		y := top + float32(i)*slot
		l.Position1 = fyne.NewPos(x, y)
		l.Position2 = fyne.NewPos(x, y+slot/2)
		l.Show()
		l.Refresh()
	}
}

func hideLines(lines []*canvas.Line) {
	for _, l := range lines {
		l.Hide()
	}
}

func (r *bfpChartRenderer) MinSize() fyne.Size {
	return NewChartMinSize()
}

func (r *bfpChartRenderer) Refresh() {
	pos, plot := plotInsets(r.size)
	r.layoutMarkers(pos, plot)
	r.zones.Refresh()
}

func (r *bfpChartRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *bfpChartRenderer) Destroy()                     {}
