package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"bodycalc/internal/cli"
	"bodycalc/internal/config"
	"bodycalc/internal/logging"
	"bodycalc/ui"
)

func main() {
	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(logging.Options{Level: appCfg.LogLevel, File: appCfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := cli.ParseFlags()
	if err != nil {
		logging.Close()
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return
		}
		a := app.NewWithID("com.bodycalc.gui")
		win := ui.BuildMainWindow(a, appCfg)
		logging.Debug(nil, "window opened")
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := cli.Run(*cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Close()
		os.Exit(1)
	}
}
