// Package metrics computes BMI and body fat estimates from a Measurement.
// It has no dependency on the UI toolkit.
package metrics

import (
	"math"

	"bodycalc/internal/model"
)

// adultAgeThreshold: ages strictly above use adult BMI-method coefficients.
const adultAgeThreshold = 17

// BMI returns weight divided by the square of height in meters.
func BMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

// NavyBodyFat estimates body fat percentage with the US Navy circumference
// formula. Males use abdomen and neck; females use waist, hip and neck.
// A non-positive log argument yields a ValidationError instead of NaN.
func NavyBodyFat(m model.Measurement) (float64, error) {
	var bfp float64

	if m.Gender == model.Male {
		diff := m.AbdomenCm - m.NeckCm
		if diff <= 0 {
			return 0, model.NewValidationError("abdomen must be larger than neck", "abdomen_cm", "neck_cm")
		}
		bfp = 495/(1.0324-0.19077*math.Log10(diff)+0.15456*math.Log10(m.HeightCm)) - 450
	} else {
		diff := m.WaistCm + m.HipCm - m.NeckCm
		if diff <= 0 {
			return 0, model.NewValidationError("waist plus hip must be larger than neck", "waist_cm", "hip_cm", "neck_cm")
		}
		bfp = 495/(1.29579-0.35004*math.Log10(diff)+0.22100*math.Log10(m.HeightCm)) - 450
	}

	if !finite(bfp) {
		return 0, model.NewValidationError("measurements do not produce a body fat estimate", "height_cm", "neck_cm")
	}
	return bfp, nil
}

// BMIBodyFat estimates body fat percentage from BMI and age. Age 17 and
// below uses the youth coefficients. Any gender other than Male uses the
// female constants.
func BMIBodyFat(g model.Gender, age int, bmi float64) float64 {
	a := float64(age)
	if age > adultAgeThreshold {
		if g == model.Male {
			return 1.20*bmi + 0.23*a - 16.2
		}
		return 1.20*bmi + 0.23*a - 5.4
	}
	if g == model.Male {
		return 1.51*bmi - 0.70*a - 2.2
	}
	return 1.51*bmi - 0.70*a + 1.4
}

// Calculate validates m and computes all three metrics. On error the
// returned Result is zero.
func Calculate(m model.Measurement) (model.Result, error) {
	if err := m.Validate(); err != nil {
		return model.Result{}, err
	}

	bmi := BMI(m.HeightCm, m.WeightKg)
	if !finite(bmi) {
		return model.Result{}, model.NewValidationError("measurements do not produce a BMI", "height_cm", "weight_kg")
	}
	navy, err := NavyBodyFat(m)
	if err != nil {
		return model.Result{}, err
	}
	bfpBMI := BMIBodyFat(m.Gender, m.Age, bmi)
	if !finite(bfpBMI) {
		return model.Result{}, model.NewValidationError("measurements do not produce a body fat estimate", "age", "height_cm", "weight_kg")
	}

	return model.Result{
		BMI:     bmi,
		BFPNavy: navy,
		BFPBMI:  bfpBMI,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
