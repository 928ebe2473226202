package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bodycalc/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"BODYCALC_CONFIG",
	"BODYCALC_LOG_LEVEL",
	"BODYCALC_LOG_FILE",
	"BODYCALC_WINDOW_WIDTH",
	"BODYCALC_CHART_HEIGHT_MIN_CM",
	"BODYCALC_CHART_HEIGHT_MAX_CM",
	"BODYCALC_CHART_WEIGHT_MAX_KG",
	"BODYCALC_CHART_BFP_MAX",
}

func clearConfigEnvVars() {
	for _, v := range configEnvVars {
		_ = os.Unsetenv(v)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bodycalc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load()

			convey.Convey("Then it should load the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.LogFile, convey.ShouldBeEmpty)
				convey.So(cfg.ChartHeightMinCm, convey.ShouldEqual, 140.0)
				convey.So(cfg.ChartHeightMaxCm, convey.ShouldEqual, 210.0)
				convey.So(cfg.ChartWeightMaxKg, convey.ShouldEqual, 300.0)
				convey.So(cfg.ChartBFPMax, convey.ShouldEqual, 55.0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BODYCALC_LOG_LEVEL", "debug")
			_ = os.Setenv("BODYCALC_CHART_WEIGHT_MAX_KG", "200")
			_ = os.Setenv("BODYCALC_WINDOW_WIDTH", "800")

			cfg, err := config.Load()

			convey.Convey("Then env vars override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.ChartWeightMaxKg, convey.ShouldEqual, 200.0)
				convey.So(cfg.WindowWidth, convey.ShouldEqual, float32(800))
				convey.So(cfg.ChartBFPMax, convey.ShouldEqual, 55.0)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := writeConfigFile(t, `
log_level: warn
log_file: /tmp/bodycalc.log
chart_height_min_cm: 120
chart_height_max_cm: 220
`)
			_ = os.Setenv("BODYCALC_CONFIG", path)
			_ = os.Setenv("BODYCALC_CHART_HEIGHT_MAX_CM", "200")

			cfg, err := config.Load()

			convey.Convey("Then file values apply and env still wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.LogFile, convey.ShouldEqual, "/tmp/bodycalc.log")
				convey.So(cfg.ChartHeightMinCm, convey.ShouldEqual, 120.0)
				convey.So(cfg.ChartHeightMaxCm, convey.ShouldEqual, 200.0)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("BODYCALC_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the chart range is inverted", func() {
			_ = os.Setenv("BODYCALC_CHART_HEIGHT_MIN_CM", "220")

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()

		convey.So(cfg.Validate(), convey.ShouldBeNil)

		convey.Convey("A zero body fat axis is rejected", func() {
			cfg.ChartBFPMax = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A zero window is rejected", func() {
			cfg.WindowHeight = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
