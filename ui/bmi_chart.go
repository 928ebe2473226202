package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"bodycalc/internal/chart"
)

type userPoint struct {
	heightCm float64
	weightKg float64
	bmi      float64
}

// BMIChart draws the BMI zones over height and weight with the user's point.
type BMIChart struct {
	widget.BaseWidget
	chart *chart.BMIChart
	point *userPoint
}

// NewBMIChart creates a chart widget for c. No point is shown until SetPoint.
func NewBMIChart(c *chart.BMIChart) *BMIChart {
	w := &BMIChart{chart: c}
	w.ExtendBaseWidget(w)
	return w
}

// SetPoint places the user's marker. A point outside the axes is kept but not drawn.
func (w *BMIChart) SetPoint(heightCm, weightKg, bmi float64) {
	w.point = &userPoint{heightCm: heightCm, weightKg: weightKg, bmi: bmi}
	w.Refresh()
}

// PointVisible reports whether the user's marker is set and inside the axes.
func (w *BMIChart) PointVisible() bool {
	return w.point != nil && w.chart.Contains(w.point.heightCm, w.point.weightKg)
}

// Point returns the user's marker, if set.
func (w *BMIChart) Point() (heightCm, weightKg, bmi float64, ok bool) {
	if w.point == nil {
		return 0, 0, 0, false
	}
	return w.point.heightCm, w.point.weightKg, w.point.bmi, true
}

// ClearPoint hides the user's marker.
func (w *BMIChart) ClearPoint() {
	w.point = nil
	w.Refresh()
}

// CreateRenderer returns the chart renderer.
func (w *BMIChart) CreateRenderer() fyne.WidgetRenderer {
	w.ExtendBaseWidget(w)
	fg := theme.Color(theme.ColorNameForeground)

	r := &bmiChartRenderer{chart: w}

	r.zones = canvas.NewRasterWithPixels(func(x, y, width, height int) color.Color {
		return w.chart.PixelColor(x, y, width, height)
	})
	r.frame = canvas.NewRectangle(color.Transparent)
	r.frame.StrokeColor = fg
	r.frame.StrokeWidth = 1

	r.title = canvas.NewText("BMI Chart", fg)
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.title.Alignment = fyne.TextAlignCenter
	r.xTitle = newAxisText("Height (cm)", fg)
	r.yTitle = newAxisText("Weight (kg)", fg)

	for _, v := range w.chart.Height.Ticks(heightTickStep) {
		r.xTicks = append(r.xTicks, tickText{value: v, text: newAxisText(chart.TickLabel(v), fg)})
	}
	for _, v := range w.chart.Weight.Ticks(weightTickStep) {
		r.yTicks = append(r.yTicks, tickText{value: v, text: newAxisText(chart.TickLabel(v), fg)})
	}

	r.marker = canvas.NewCircle(chart.PointColor)
	r.marker.Hide()

	r.objects = []fyne.CanvasObject{r.zones, r.frame, r.title, r.xTitle, r.yTitle, r.marker}
	for _, t := range r.xTicks {
		r.objects = append(r.objects, t.text)
	}
	for _, t := range r.yTicks {
		r.objects = append(r.objects, t.text)
	}
	return r
}

type tickText struct {
	value float64
	text  *canvas.Text
}

func newAxisText(s string, c color.Color) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = axisTextSize
	return t
}

type bmiChartRenderer struct {
	chart   *BMIChart
	size    fyne.Size
	zones   *canvas.Raster
	frame   *canvas.Rectangle
	title   *canvas.Text
	xTitle  *canvas.Text
	yTitle  *canvas.Text
	xTicks  []tickText
	yTicks  []tickText
	marker  *canvas.Circle
	objects []fyne.CanvasObject
}

func (r *bmiChartRenderer) Layout(size fyne.Size) {
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

	yMin := r.yTitle.MinSize()
	r.yTitle.Move(fyne.NewPos(2, pos.Y-yMin.Height-2))
	r.yTitle.Resize(yMin)

	axis := r.chart.chart
	for _, t := range r.xTicks {
		m := t.text.MinSize()
		x := pos.X + float32(axis.Height.ToPixel(t.value, float64(plot.Width)))
		t.text.Move(fyne.NewPos(x-m.Width/2, pos.Y+plot.Height+2))
		t.text.Resize(m)
	}
	for _, t := range r.yTicks {
		m := t.text.MinSize()
		y := pos.Y + float32(axis.Weight.ToPixelInverted(t.value, float64(plot.Height)))
		t.text.Move(fyne.NewPos(pos.X-m.Width-4, y-m.Height/2))
		t.text.Resize(m)
	}

	r.layoutMarker(pos, plot)
}

func (r *bmiChartRenderer) layoutMarker(pos fyne.Position, plot fyne.Size) {
	p := r.chart.point
	if !r.chart.PointVisible() {
		r.marker.Hide()
		return
	}
	axis := r.chart.chart
	x := pos.X + float32(axis.Height.ToPixel(p.heightCm, float64(plot.Width)))
	y := pos.Y + float32(axis.Weight.ToPixelInverted(p.weightKg, float64(plot.Height)))
	r.marker.Move(fyne.NewPos(x-pointMarkerSize/2, y-pointMarkerSize/2))
	r.marker.Resize(fyne.NewSize(pointMarkerSize, pointMarkerSize))
	r.marker.Show()
}

func (r *bmiChartRenderer) MinSize() fyne.Size {
	return NewChartMinSize()
}

func (r *bmiChartRenderer) Refresh() {
	pos, plot := plotInsets(r.size)
	r.layoutMarker(pos, plot)
	r.marker.Refresh()
	r.zones.Refresh()
}

func (r *bmiChartRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *bmiChartRenderer) Destroy()                     {}
