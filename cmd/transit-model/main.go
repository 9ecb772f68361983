package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/theoremus-urban-solutions/transit-model/calendar"
	"github.com/theoremus-urban-solutions/transit-model/config"
	"github.com/theoremus-urban-solutions/transit-model/internal"
	"github.com/theoremus-urban-solutions/transit-model/model"
	"github.com/theoremus-urban-solutions/transit-model/naptan"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml")
	naptanArchive := flag.String("naptan", "", "path to NaPTAN zip archive (overrides config)")
	calendarDir := flag.String("calendar", "", "path to directory holding calendar.txt (overrides config)")
	logLevel := flag.String("log-level", "", "trace|debug|info|warn|error (overrides config)")
	flag.Parse()

	var cfg config.AppConfig
	var err error
	if *configPath != "" {
		cfg, err = config.LoadAppConfig(*configPath)
	} else {
		cfg, err = config.LoadAppConfig()
		if errors.Is(err, fs.ErrNotExist) {
			// No config file is fine when flags name the sources.
			cfg, err = config.AppConfig{Logging: config.LoggingConfig{Level: "info"}}, nil
		}
	}
	if err != nil {
		panic(err)
	}

	if *naptanArchive != "" {
		cfg.NaPTAN.ArchivePath = *naptanArchive
	}
	if *calendarDir != "" {
		cfg.Calendar.Dir = *calendarDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger := internal.NewLogger(cfg.Logging.Level)
	if cfg.NaPTAN.ArchivePath == "" && cfg.Calendar.Dir == "" {
		logger.Fatal().Msg("nothing to import: set -naptan and/or -calendar, or list sources in config.yml")
	}

	collections := model.NewCollections()
	if cfg.NaPTAN.ArchivePath != "" {
		if err := naptan.Read(cfg.NaPTAN.ArchivePath, collections, logger); err != nil {
			logger.Fatal().Err(err).Msg("NaPTAN import failed")
		}
	}
	if cfg.Calendar.Dir != "" {
		if err := calendar.Read(cfg.Calendar.Dir, collections, logger); err != nil {
			logger.Fatal().Err(err).Msg("calendar import failed")
		}
	}

	logger.Info().
		Int("stop_areas", collections.StopAreas.Len()).
		Int("stop_points", collections.StopPoints.Len()).
		Int("calendars", collections.Calendars.Len()).
		Msg("import complete")
}
