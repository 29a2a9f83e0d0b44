package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	configFile := flag.String("config", "", "Load hospital/doctor/patient catalogs from a YAML file (built-in demo data if not specified)")
	exportConfig := flag.String("export-config", "", "Write the active catalogs to a YAML file and exit")
	logFile := flag.String("log-file", "", "Append a structured debug log to this file (the terminal is taken by the UI)")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("viksit %s\n", version)
		os.Exit(0)
	}

	store := catalog.Default()
	if *configFile != "" {
		loaded, err := catalog.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
		store = loaded
	}

	if *exportConfig != "" {
		if err := catalog.SaveToYAML(store, *exportConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog written to %s\n", *exportConfig)
		os.Exit(0)
	}

	log := zerolog.Nop()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	if err := app.Run(store, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
