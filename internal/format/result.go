package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"bodycalc/internal/metrics"
	"bodycalc/internal/model"
)

// InvalidInputNotice is shown for missing or non-numeric fields.
const InvalidInputNotice = "Please enter valid numbers for all fields."

// FormatBMI returns the BMI line with two decimals.
func FormatBMI(bmi float64) string {
	return fmt.Sprintf("BMI: %.2f", bmi)
}

// FormatBFPNavy returns the US Navy method line with one decimal.
func FormatBFPNavy(bfp float64) string {
	return fmt.Sprintf("BFP (US Navy Method): %.1f%%", bfp)
}

// FormatBFPBMI returns the BMI method line with one decimal.
func FormatBFPBMI(bfp float64) string {
	return fmt.Sprintf("BFP (BMI Method): %.1f%%", bfp)
}

// FormatResult produces the full human-readable report for a calculation.
func FormatResult(m model.Measurement, r model.Result) string {
	var b strings.Builder

	b.WriteString("=== Body Metrics ===\n")
	b.WriteString(fmt.Sprintf("Age:             %d\n", m.Age))
	b.WriteString(fmt.Sprintf("Gender:          %s\n", m.Gender))
	b.WriteString(fmt.Sprintf("Height:          %.1f cm\n", m.HeightCm))
	b.WriteString(fmt.Sprintf("Weight:          %.1f kg\n", m.WeightKg))
	b.WriteString(fmt.Sprintf("Neck:            %.1f cm\n", m.NeckCm))
	if m.Gender == model.Male {
		b.WriteString(fmt.Sprintf("Abdomen:         %.1f cm\n", m.AbdomenCm))
	} else {
		b.WriteString(fmt.Sprintf("Waist:           %.1f cm\n", m.WaistCm))
		b.WriteString(fmt.Sprintf("Hip:             %.1f cm\n", m.HipCm))
	}

	b.WriteString("\n--- Results ---\n")
	b.WriteString(fmt.Sprintf("%s (%s)\n", FormatBMI(r.BMI), metrics.BMICategory(r.BMI)))
	b.WriteString(fmt.Sprintf("%s (%s)\n", FormatBFPNavy(r.BFPNavy), metrics.BFPCategory(m.Gender, r.BFPNavy)))
	b.WriteString(fmt.Sprintf("%s (%s)\n", FormatBFPBMI(r.BFPBMI), metrics.BFPCategory(m.Gender, r.BFPBMI)))

	b.WriteString("\n--- Reference ---\n")
	for _, row := range ReferenceRows(m.Gender) {
		b.WriteString(fmt.Sprintf("%-12s %s\n", row[0], row[1]))
	}

	b.WriteString("====================")
	return b.String()
}

// ReferenceRows returns the (category, range) table for g, e.g. {"Essential", "2 - 5%"}.
// The last range is open-ended.
func ReferenceRows(g model.Gender) [][2]string {
	zones := metrics.BFPZones(g)
	rows := make([][2]string, len(zones))
	for i, z := range zones {
		if i == len(zones)-1 {
			rows[i] = [2]string{z.Name, fmt.Sprintf("%g%%+", z.Min)}
			continue
		}
		rows[i] = [2]string{z.Name, fmt.Sprintf("%g - %g%%", z.Min, z.Max)}
	}
	return rows
}

// Notice converts a calculation error into the single message shown to the user.
func Notice(err error) string {
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Reason == model.ReasonInvalidFields {
		return InvalidInputNotice
	}
	return sentence(ve.Reason)
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	if !strings.HasSuffix(s, ".") {
		r = append(r, '.')
	}
	return string(r)
}
