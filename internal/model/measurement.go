package model

import (
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Gender selects which circumference fields and coefficients apply.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Genders lists the selectable genders in form order.
var Genders = []Gender{Male, Female}

// Measurement holds the anthropometric inputs of a single calculation.
// Only the circumferences of the selected gender are checked and used; the
// others are ignored whatever their value.
type Measurement struct {
	Age       int     `json:"age" validate:"gt=0"`
	Gender    Gender  `json:"gender" validate:"oneof=Male Female"`
	HeightCm  float64 `json:"height_cm" validate:"gt=0,finite"`
	WeightKg  float64 `json:"weight_kg" validate:"gt=0,finite"`
	NeckCm    float64 `json:"neck_cm" validate:"gt=0,finite"`
	AbdomenCm float64 `json:"abdomen_cm" validate:"required_if=Gender Male"`
	WaistCm   float64 `json:"waist_cm" validate:"required_if=Gender Female"`
	HipCm     float64 `json:"hip_cm" validate:"required_if=Gender Female"`
}

// Result holds the metrics derived from a Measurement. Values are unrounded.
type Result struct {
	BMI     float64
	BFPNavy float64 // US Navy circumference method, percent
	BFPBMI  float64 // BMI-and-age method, percent
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func measurementValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Inf passes gt=0 and NaN fails it silently; reject both explicitly.
		_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			return isFinite(fl.Field().Float())
		})
		validate.RegisterStructValidation(validateCircumferences, Measurement{})
	})
	return validate
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateCircumferences checks the selected gender's circumferences. Zero is
// left to required_if so a missing field is reported once.
func validateCircumferences(sl validator.StructLevel) {
	m := sl.Current().Interface().(Measurement)

	check := func(v float64, name, field string) {
		if v != 0 && (v < 0 || !isFinite(v)) {
			sl.ReportError(v, name, field, "gt", "0")
		}
	}
	switch m.Gender {
	case Male:
		check(m.AbdomenCm, "abdomen_cm", "AbdomenCm")
	case Female:
		check(m.WaistCm, "waist_cm", "WaistCm")
		check(m.HipCm, "hip_cm", "HipCm")
	}
}

// Validate checks that every field required for the selected gender is present
// and positive. All failing fields are reported in one ValidationError.
func (m *Measurement) Validate() error {
	err := measurementValidator().Struct(m)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	return NewValidationError(ReasonInvalidFields, fields...)
}
