// Package input turns raw form text into a validated model.Measurement.
package input

import (
	"strconv"
	"strings"

	"bodycalc/internal/model"
)

// Raw holds the form fields exactly as typed.
type Raw struct {
	Age     string
	Gender  string
	Height  string
	Weight  string
	Neck    string
	Abdomen string
	Waist   string
	Hip     string
}

type numericField struct {
	name string
	text string
	dst  *float64
}

// ParseGender matches "male" or "female" case-insensitively. Empty text
// selects Male, the form default.
func ParseGender(s string) (model.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "male", "m":
		return model.Male, true
	case "female", "f":
		return model.Female, true
	}
	return "", false
}

// Parse converts raw text into a Measurement. Only the circumference fields
// of the selected gender are read. Every failing field is collected into a
// single ValidationError.
func Parse(raw Raw) (model.Measurement, error) {
	var (
		m      model.Measurement
		failed []string
	)

	gender, ok := ParseGender(raw.Gender)
	if !ok {
		failed = append(failed, "gender")
	}
	m.Gender = gender

	if v, err := strconv.Atoi(strings.TrimSpace(raw.Age)); err != nil {
		failed = append(failed, "age")
	} else {
		m.Age = v
	}

	floats := []numericField{
		{"height_cm", raw.Height, &m.HeightCm},
		{"weight_kg", raw.Weight, &m.WeightKg},
		{"neck_cm", raw.Neck, &m.NeckCm},
	}
	switch gender {
	case model.Male:
		floats = append(floats, numericField{"abdomen_cm", raw.Abdomen, &m.AbdomenCm})
	case model.Female:
		floats = append(floats,
			numericField{"waist_cm", raw.Waist, &m.WaistCm},
			numericField{"hip_cm", raw.Hip, &m.HipCm},
		)
	}

	for _, f := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.text), 64)
		if err != nil {
			failed = append(failed, f.name)
			continue
		}
		*f.dst = v
	}

	if len(failed) > 0 {
		return model.Measurement{}, model.NewValidationError(model.ReasonInvalidFields, failed...)
	}
	if err := m.Validate(); err != nil {
		return model.Measurement{}, err
	}
	return m, nil
}
