package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (GUI mode) or help was printed.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("bodycalc", flag.ContinueOnError)
	fs.Usage = PrintUsage

	// Values stay text so they go through the same parser as the form.
	fs.StringVar(&cfg.Raw.Age, "age", "", "Age in years")
	fs.StringVar(&cfg.Raw.Gender, "gender", "male", "male or female")
	fs.StringVar(&cfg.Raw.Gender, "g", "male", "male or female")
	fs.StringVar(&cfg.Raw.Height, "height", "", "Height in cm")
	fs.StringVar(&cfg.Raw.Weight, "weight", "", "Weight in kg")
	fs.StringVar(&cfg.Raw.Neck, "neck", "", "Neck circumference in cm")
	fs.StringVar(&cfg.Raw.Abdomen, "abdomen", "", "Abdomen circumference in cm (males)")
	fs.StringVar(&cfg.Raw.Waist, "waist", "", "Waist circumference in cm (females)")
	fs.StringVar(&cfg.Raw.Hip, "hip", "", "Hip circumference in cm (females)")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n\n", fs.Args())
		PrintUsage()
		return nil, fmt.Errorf("unexpected arguments")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `BMI and BFP Calculator

Usage: bodycalc [flags]
       bodycalc           (no flags: open the window)
       bodycalc help      (show this message)

MEASUREMENTS:
  -age <years>             Age in whole years
  -g, -gender <male|female> Gender (default: male)
  -height <cm>             Height in centimeters
  -weight <kg>             Weight in kilograms
  -neck <cm>               Neck circumference
  -abdomen <cm>            Abdomen circumference (males only)
  -waist <cm>              Waist circumference (females only)
  -hip <cm>                Hip circumference (females only)

OUTPUT:
  -v, -verbose             Log parsed measurement

ENVIRONMENT:
  BODYCALC_CONFIG          YAML config file
  BODYCALC_LOG_LEVEL       debug, info, warn, error

EXAMPLES:
  bodycalc -age 25 -height 180 -weight 80 -neck 38 -abdomen 90
  bodycalc -age 30 -g female -height 165 -weight 60 -neck 32 -waist 70 -hip 95

`)
}
