package input

import (
	"errors"
	"slices"
	"testing"

	"bodycalc/internal/model"
)

func maleRaw() Raw {
	return Raw{
		Age:     "25",
		Gender:  "Male",
		Height:  "180",
		Weight:  "80",
		Neck:    "38",
		Abdomen: "90",
	}
}

func femaleRaw() Raw {
	return Raw{
		Age:    "30",
		Gender: "Female",
		Height: "165",
		Weight: "60.5",
		Neck:   "32",
		Waist:  "70",
		Hip:    "95",
	}
}

func TestParse_Male(t *testing.T) {
	m, err := Parse(maleRaw())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := model.Measurement{Age: 25, Gender: model.Male, HeightCm: 180, WeightKg: 80, NeckCm: 38, AbdomenCm: 90}
	if m != want {
		t.Errorf("Parse() = %+v, want %+v", m, want)
	}
}

func TestParse_Female(t *testing.T) {
	m, err := Parse(femaleRaw())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := model.Measurement{Age: 30, Gender: model.Female, HeightCm: 165, WeightKg: 60.5, NeckCm: 32, WaistCm: 70, HipCm: 95}
	if m != want {
		t.Errorf("Parse() = %+v, want %+v", m, want)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	raw := maleRaw()
	raw.Age = " 25 "
	raw.Height = "180\t"
	if _, err := Parse(raw); err != nil {
		t.Errorf("Parse() with padded fields error = %v", err)
	}
}

func TestParse_IgnoresOtherGenderFields(t *testing.T) {
	raw := maleRaw()
	raw.Waist = "not a number"
	raw.Hip = "-3"

	m, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, other gender fields must be ignored", err)
	}
	if m.WaistCm != 0 || m.HipCm != 0 {
		t.Errorf("female fields read for male: waist=%v hip=%v", m.WaistCm, m.HipCm)
	}

	raw = femaleRaw()
	raw.Abdomen = "abc"
	m, err = Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, abdomen must be ignored for female", err)
	}
	if m.AbdomenCm != 0 {
		t.Errorf("abdomen read for female: %v", m.AbdomenCm)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *Raw)
		wantField string
	}{
		{"empty age", func(r *Raw) { r.Age = "" }, "age"},
		{"fractional age", func(r *Raw) { r.Age = "25.5" }, "age"},
		{"text height", func(r *Raw) { r.Height = "tall" }, "height_cm"},
		{"comma decimal weight", func(r *Raw) { r.Weight = "80,5" }, "weight_kg"},
		{"empty neck", func(r *Raw) { r.Neck = "" }, "neck_cm"},
		{"empty abdomen", func(r *Raw) { r.Abdomen = "" }, "abdomen_cm"},
		{"unknown gender", func(r *Raw) { r.Gender = "robot" }, "gender"},
		{"zero weight", func(r *Raw) { r.Weight = "0" }, "weight_kg"},
		{"negative age", func(r *Raw) { r.Age = "-4" }, "age"},
		{"infinite height", func(r *Raw) { r.Height = "Inf" }, "height_cm"},
		{"NaN neck", func(r *Raw) { r.Neck = "NaN" }, "neck_cm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := maleRaw()
			tt.mutate(&raw)

			m, err := Parse(raw)
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", m)
			}
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *model.ValidationError", err)
			}
			if ve.Reason != model.ReasonInvalidFields {
				t.Errorf("Reason = %q, want %q", ve.Reason, model.ReasonInvalidFields)
			}
			if !slices.Contains(ve.Fields, tt.wantField) {
				t.Errorf("Fields = %v, want to contain %q", ve.Fields, tt.wantField)
			}
		})
	}
}

func TestParse_SingleAggregatedError(t *testing.T) {
	raw := femaleRaw()
	raw.Age = "x"
	raw.Waist = ""
	raw.Hip = "wide"

	_, err := Parse(raw)
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *model.ValidationError", err)
	}
	want := []string{"age", "waist_cm", "hip_cm"}
	if !slices.Equal(ve.Fields, want) {
		t.Errorf("Fields = %v, want %v", ve.Fields, want)
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Gender
		wantOK bool
	}{
		{"Male", model.Male, true},
		{"female", model.Female, true},
		{" FEMALE ", model.Female, true},
		{"m", model.Male, true},
		{"", model.Male, true},
		{"other", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseGender(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseGender(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
