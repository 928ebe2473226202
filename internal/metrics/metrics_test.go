package metrics

import (
	"errors"
	"math"
	"testing"

	"bodycalc/internal/model"
)

const tolerance = 0.01

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestBMI(t *testing.T) {
	tests := []struct {
		height, weight float64
		want           float64
	}{
		{180, 80, 24.69},
		{165, 60, 22.04},
		{100, 10, 10},
	}

	for _, tt := range tests {
		got := BMI(tt.height, tt.weight)
		if !almostEqual(got, tt.want) {
			t.Errorf("BMI(%v, %v) = %.4f, want %.2f", tt.height, tt.weight, got, tt.want)
		}
		exact := tt.weight / math.Pow(tt.height/100, 2)
		if math.Abs(got-exact) > 1e-9 {
			t.Errorf("BMI(%v, %v) = %v, want exactly %v", tt.height, tt.weight, got, exact)
		}
	}
}

func TestNavyBodyFat_Male(t *testing.T) {
	m := model.Measurement{Gender: model.Male, HeightCm: 180, NeckCm: 38, AbdomenCm: 90}
	got, err := NavyBodyFat(m)
	if err != nil {
		t.Fatalf("NavyBodyFat() error = %v", err)
	}
	want := 495/(1.0324-0.19077*math.Log10(52)+0.15456*math.Log10(180)) - 450
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("NavyBodyFat() = %v, want %v", got, want)
	}
	if !almostEqual(got, 19.81) {
		t.Errorf("NavyBodyFat() = %.3f, want ~19.81", got)
	}
}

func TestNavyBodyFat_Female(t *testing.T) {
	m := model.Measurement{Gender: model.Female, HeightCm: 165, NeckCm: 32, WaistCm: 70, HipCm: 95}
	got, err := NavyBodyFat(m)
	if err != nil {
		t.Fatalf("NavyBodyFat() error = %v", err)
	}
	want := 495/(1.29579-0.35004*math.Log10(70+95-32)+0.22100*math.Log10(165)) - 450
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("NavyBodyFat() = %v, want %v", got, want)
	}
	if !almostEqual(got, 24.86) {
		t.Errorf("NavyBodyFat() = %.3f, want ~24.86", got)
	}
}

func TestNavyBodyFat_NonPositiveLogArgument(t *testing.T) {
	tests := []struct {
		name string
		m    model.Measurement
	}{
		{"male abdomen equals neck", model.Measurement{Gender: model.Male, HeightCm: 180, NeckCm: 40, AbdomenCm: 40}},
		{"male abdomen below neck", model.Measurement{Gender: model.Male, HeightCm: 180, NeckCm: 40, AbdomenCm: 30}},
		{"female sum equals neck", model.Measurement{Gender: model.Female, HeightCm: 165, NeckCm: 50, WaistCm: 20, HipCm: 30}},
		{"female sum below neck", model.Measurement{Gender: model.Female, HeightCm: 165, NeckCm: 60, WaistCm: 20, HipCm: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NavyBodyFat(tt.m)
			if err == nil {
				t.Fatalf("NavyBodyFat() = %v, want ValidationError", got)
			}
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *model.ValidationError", err)
			}
			if math.IsNaN(got) {
				t.Error("NavyBodyFat() returned NaN alongside error")
			}
		})
	}
}

func TestBMIBodyFat(t *testing.T) {
	tests := []struct {
		name   string
		gender model.Gender
		age    int
		bmi    float64
		want   float64
	}{
		{"adult male", model.Male, 25, 24.69, 1.20*24.69 + 0.23*25 - 16.2},
		{"adult female", model.Female, 30, 22, 1.20*22 + 0.23*30 - 5.4},
		{"youth male", model.Male, 15, 20, 1.51*20 - 0.70*15 - 2.2},
		{"youth female", model.Female, 15, 22, 1.51*22 - 0.70*15 + 1.4},
		{"age 17 is youth", model.Male, 17, 24.69, 1.51*24.69 - 0.70*17 - 2.2},
		{"age 18 is adult", model.Male, 18, 24.69, 1.20*24.69 + 0.23*18 - 16.2},
		{"age 17 female is youth", model.Female, 17, 22, 1.51*22 - 0.70*17 + 1.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMIBodyFat(tt.gender, tt.age, tt.bmi)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BMIBodyFat(%s, %d, %v) = %v, want %v", tt.gender, tt.age, tt.bmi, got, tt.want)
			}
		})
	}

	if got := BMIBodyFat(model.Male, 25, 24.69); !almostEqual(got, 19.18) {
		t.Errorf("BMIBodyFat(Male, 25, 24.69) = %.3f, want ~19.18", got)
	}
}

func TestCalculate(t *testing.T) {
	m := model.Measurement{
		Age:       25,
		Gender:    model.Male,
		HeightCm:  180,
		WeightKg:  80,
		NeckCm:    38,
		AbdomenCm: 90,
	}

	r, err := Calculate(m)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !almostEqual(r.BMI, 24.69) {
		t.Errorf("BMI = %.3f, want ~24.69", r.BMI)
	}
	if !almostEqual(r.BFPNavy, 19.81) {
		t.Errorf("BFPNavy = %.3f, want ~19.81", r.BFPNavy)
	}
	if !almostEqual(r.BFPBMI, 19.18) {
		t.Errorf("BFPBMI = %.3f, want ~19.18", r.BFPBMI)
	}
}

func TestCalculate_InvalidReturnsZeroResult(t *testing.T) {
	tests := []struct {
		name string
		m    model.Measurement
	}{
		{"abdomen below neck", model.Measurement{Age: 30, Gender: model.Male, HeightCm: 180, WeightKg: 80, NeckCm: 40, AbdomenCm: 35}},
		{"missing waist", model.Measurement{Age: 30, Gender: model.Female, HeightCm: 165, WeightKg: 60, NeckCm: 32, HipCm: 95}},
		{"zero height", model.Measurement{Age: 30, Gender: model.Male, WeightKg: 80, NeckCm: 38, AbdomenCm: 90}},
		{"height underflows BMI", model.Measurement{Age: 30, Gender: model.Male, HeightCm: 1e-200, WeightKg: 80, NeckCm: 38, AbdomenCm: 90}},
		{"weight overflows BMI", model.Measurement{Age: 30, Gender: model.Female, HeightCm: 1, WeightKg: 1e308, NeckCm: 32, WaistCm: 70, HipCm: 95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.m)
			if !errors.Is(err, model.ErrInvalidMeasurement) {
				t.Fatalf("Calculate() error = %v, want ErrInvalidMeasurement", err)
			}
			if r != (model.Result{}) {
				t.Errorf("Calculate() result = %+v, want zero value", r)
			}
		})
	}
}

func TestCalculate_IgnoresOtherGenderFields(t *testing.T) {
	base := model.Measurement{Age: 30, Gender: model.Female, HeightCm: 165, WeightKg: 60, NeckCm: 32, WaistCm: 70, HipCm: 95}
	withAbdomen := base
	withAbdomen.AbdomenCm = 10

	a, err := Calculate(base)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	b, err := Calculate(withAbdomen)
	if err != nil {
		t.Fatalf("Calculate() with abdomen error = %v", err)
	}
	if a != b {
		t.Errorf("abdomen changed female result: %+v vs %+v", a, b)
	}
}
