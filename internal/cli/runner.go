package cli

import (
	"fmt"
	"io"

	"bodycalc/internal/format"
	"bodycalc/internal/input"
	"bodycalc/internal/logging"
	"bodycalc/internal/metrics"
	"bodycalc/internal/model"
)

// RunnerConfig holds all CLI options for a calculation.
type RunnerConfig struct {
	Raw     input.Raw
	Verbose bool
}

// Calculate parses the raw measurement and computes its metrics.
func Calculate(cfg RunnerConfig) (model.Measurement, model.Result, error) {
	m, err := input.Parse(cfg.Raw)
	if err != nil {
		logging.Warn(logging.Fields{"error": err.Error()}, "invalid measurement")
		return model.Measurement{}, model.Result{}, err
	}

	if cfg.Verbose {
		logging.Info(logging.Fields{
			"age":    m.Age,
			"gender": m.Gender,
			"height": m.HeightCm,
			"weight": m.WeightKg,
		}, "parsed measurement")
	}

	r, err := metrics.Calculate(m)
	if err != nil {
		logging.Warn(logging.Fields{"error": err.Error()}, "calculation rejected")
		return model.Measurement{}, model.Result{}, err
	}

	logging.Debug(logging.Fields{"bmi": r.BMI, "bfp_navy": r.BFPNavy, "bfp_bmi": r.BFPBMI}, "calculated")
	return m, r, nil
}

// Run calculates and writes the report to w. Validation failures are
// reported with the same notice the window shows.
func Run(cfg RunnerConfig, w io.Writer) error {
	m, r, err := Calculate(cfg)
	if err != nil {
		return fmt.Errorf("%s (%w)", format.Notice(err), err)
	}

	fmt.Fprintln(w, format.FormatResult(m, r))
	return nil
}
