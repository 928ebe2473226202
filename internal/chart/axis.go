package chart

import (
	"math"
	"strconv"
)

// Axis is a linear value range mapped onto a pixel length.
type Axis struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (a Axis) Span() float64 {
	return a.Max - a.Min
}

// Contains reports whether v lies in [Min, Max).
func (a Axis) Contains(v float64) bool {
	return v >= a.Min && v < a.Max
}

// ToPixel maps v onto [0, length]. Values outside the axis are clamped.
func (a Axis) ToPixel(v, length float64) float64 {
	if a.Span() <= 0 {
		return 0
	}
	f := (v - a.Min) / a.Span()
	return math.Max(0, math.Min(1, f)) * length
}

// ToPixelInverted maps v onto [length, 0], for vertical axes with y growing downwards.
func (a Axis) ToPixelInverted(v, length float64) float64 {
	return length - a.ToPixel(v, length)
}

// FromPixel maps a pixel offset back to a value.
func (a Axis) FromPixel(p, length float64) float64 {
	if length <= 0 {
		return a.Min
	}
	return a.Min + p/length*a.Span()
}

// FromPixelInverted is FromPixel for vertical axes with y growing downwards.
func (a Axis) FromPixelInverted(p, length float64) float64 {
	return a.FromPixel(length-p, length)
}

// Ticks returns multiples of step within the axis, inclusive.
func (a Axis) Ticks(step float64) []float64 {
	if step <= 0 || a.Span() <= 0 {
		return nil
	}
	var ticks []float64
	for v := math.Ceil(a.Min/step) * step; v <= a.Max+1e-9; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// TickLabel formats a tick value without trailing zeros.
func TickLabel(v float64) string {
	return trimFloat(v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
