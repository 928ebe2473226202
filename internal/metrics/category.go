package metrics

import (
	"math"

	"bodycalc/internal/model"
)

// Zone is a named value range [Min, Max).
type Zone struct {
	Name string
	Min  float64
	Max  float64
}

// BelowEssential is the category of body fat values under the essential range.
const BelowEssential = "Below essential"

// BMIZones are the BMI bands, ordered from lowest.
var BMIZones = []Zone{
	{"Underweight", 0, 18.5},
	{"Normal", 18.5, 25},
	{"Overweight", 25, 30},
	{"Obese", 30, 40},
	{"Severely Obese", 40, math.Inf(1)},
}

var maleBFPZones = []Zone{
	{"Essential", 2, 5},
	{"Athletes", 6, 13},
	{"Fitness", 14, 17},
	{"Acceptable", 18, 24},
	{"Obese", 25, 50},
}

var femaleBFPZones = []Zone{
	{"Essential", 10, 13},
	{"Athletes", 14, 20},
	{"Fitness", 21, 24},
	{"Acceptable", 25, 31},
	{"Obese", 32, 50},
}

// BMICategory returns the name of the BMI zone containing bmi.
func BMICategory(bmi float64) string {
	for _, z := range BMIZones {
		if bmi < z.Max {
			return z.Name
		}
	}
	return BMIZones[len(BMIZones)-1].Name
}

// BFPZones returns the body fat reference zones for g.
func BFPZones(g model.Gender) []Zone {
	if g == model.Male {
		return maleBFPZones
	}
	return femaleBFPZones
}

// BFPCategory classifies a body fat percentage for g. The reference ranges
// are whole-percent, so a value between two ranges belongs to the lower one.
func BFPCategory(g model.Gender, bfp float64) string {
	zones := BFPZones(g)
	if bfp < zones[0].Min {
		return BelowEssential
	}
	for i := range zones {
		if i == len(zones)-1 || bfp < zones[i+1].Min {
			return zones[i].Name
		}
	}
	return zones[len(zones)-1].Name
}
