// Package chart describes the BMI and body fat reference charts as plain
// values: colored zones and linear axes. Drawing is left to the caller.
package chart

import (
	"image/color"
	"math"

	"bodycalc/internal/metrics"
	"bodycalc/internal/model"
)

// Band is a metrics zone with its fill color.
type Band struct {
	metrics.Zone
	Color color.NRGBA
}

// Label returns the legend text, e.g. "Normal (18.5-25)".
func (b Band) Label() string {
	return legendLabel(b.Zone)
}

var (
	bmiColors = []color.NRGBA{
		{R: 255, G: 255, B: 0, A: 128}, // yellow
		{R: 0, G: 128, B: 0, A: 128},   // green
		{R: 255, G: 165, B: 0, A: 128}, // orange
		{R: 255, G: 0, B: 0, A: 128},   // red
		{R: 139, G: 0, B: 0, A: 128},   // dark red
	}
	bfpColors = []color.NRGBA{
		{R: 0xAD, G: 0xD8, B: 0xE6, A: 128}, // light blue
		{R: 0x90, G: 0xEE, B: 0x90, A: 128}, // light green
		{R: 0xFF, G: 0xFF, B: 0x99, A: 128}, // light yellow
		{R: 0xFF, G: 0xA5, B: 0x00, A: 128}, // orange
		{R: 0xFF, G: 0x63, B: 0x47, A: 128}, // tomato
	}

	// NavyMarkerColor and BMIMarkerColor draw the two body fat estimates.
	NavyMarkerColor = color.NRGBA{A: 255}
	BMIMarkerColor  = color.NRGBA{B: 255, A: 255}
	// PointColor marks the user on the BMI chart.
	PointColor = color.NRGBA{A: 255}
)

// BMIBands returns the BMI zones with their colors.
func BMIBands() []Band {
	return bands(metrics.BMIZones, bmiColors)
}

// BFPBands returns the body fat zones for g with their colors.
func BFPBands(g model.Gender) []Band {
	return bands(metrics.BFPZones(g), bfpColors)
}

func bands(zones []metrics.Zone, colors []color.NRGBA) []Band {
	out := make([]Band, len(zones))
	for i, z := range zones {
		out[i] = Band{Zone: z, Color: colors[i%len(colors)]}
	}
	return out
}

// BMIChart maps a height/weight plane onto BMI zone colors.
type BMIChart struct {
	Height Axis // cm, horizontal
	Weight Axis // kg, vertical
	bands  []Band
}

// NewBMIChart returns a chart covering heights [minCm, maxCm) and weights [0, maxKg].
func NewBMIChart(minCm, maxCm, maxKg float64) *BMIChart {
	return &BMIChart{
		Height: Axis{Min: minCm, Max: maxCm},
		Weight: Axis{Min: 0, Max: maxKg},
		bands:  BMIBands(),
	}
}

// Bands returns the chart's zones.
func (c *BMIChart) Bands() []Band {
	return c.bands
}

// Contains reports whether a height and weight fall inside the chart.
func (c *BMIChart) Contains(heightCm, weightKg float64) bool {
	return c.Height.Contains(heightCm) && weightKg >= c.Weight.Min && weightKg <= c.Weight.Max
}

// ColorAt returns the zone color at a height and weight, or transparent
// outside the chart.
func (c *BMIChart) ColorAt(heightCm, weightKg float64) color.NRGBA {
	if !c.Contains(heightCm, weightKg) {
		return color.NRGBA{}
	}
	bmi := metrics.BMI(heightCm, weightKg)
	for _, b := range c.bands {
		if bmi < b.Max {
			return b.Color
		}
	}
	return c.bands[len(c.bands)-1].Color
}

// PixelColor returns the zone color for pixel (x, y) of a w x h raster,
// with y growing downwards.
func (c *BMIChart) PixelColor(x, y, w, h int) color.NRGBA {
	height := c.Height.FromPixel(float64(x)+0.5, float64(w))
	weight := c.Weight.FromPixelInverted(float64(y)+0.5, float64(h))
	return c.ColorAt(height, weight)
}

// BFPChart maps a body fat percentage axis onto reference zone colors.
type BFPChart struct {
	Percent Axis
	bands   []Band
}

// NewBFPChart returns a chart for g covering [0, maxPercent].
func NewBFPChart(g model.Gender, maxPercent float64) *BFPChart {
	return &BFPChart{
		Percent: Axis{Min: 0, Max: maxPercent},
		bands:   BFPBands(g),
	}
}

// Bands returns the chart's zones.
func (c *BFPChart) Bands() []Band {
	return c.bands
}

// ColorAt returns the zone color at a percentage. Gaps between the
// reference ranges are transparent.
func (c *BFPChart) ColorAt(percent float64) color.NRGBA {
	for _, b := range c.bands {
		if percent >= b.Min && percent <= b.Max {
			return b.Color
		}
	}
	return color.NRGBA{}
}

// PixelColor returns the zone color for column x of a w-wide raster.
func (c *BFPChart) PixelColor(x, w int) color.NRGBA {
	return c.ColorAt(c.Percent.FromPixel(float64(x)+0.5, float64(w)))
}

func legendLabel(z metrics.Zone) string {
	if math.IsInf(z.Max, 1) {
		return z.Name + " (" + trimFloat(z.Min) + "+)"
	}
	return z.Name + " (" + trimFloat(z.Min) + "-" + trimFloat(z.Max) + ")"
}
