package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/deckplay/config"
	"github.com/lixenwraith/deckplay/logger"
)

// mergeFlags applies explicitly set flags over the config file. Flags
// left at their defaults never override the file.
func mergeFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "deck":
			cfg.DeckPath = *deckFlag
		case "listen":
			cfg.Server.Listen = *listenFlag
		case "progress-db":
			cfg.Progress.Database = *progressDBFlag
		case "resume":
			cfg.Resume = *resumeFlag
		case "mute":
			cfg.Mute = *muteFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})

	if *debugFlag {
		cfg.Log.Verbose = true
		if cfg.Log.File == "" {
			cfg.Log.File = "deckplay.log"
		}
	}
}

// setupLogging builds the session logger. Without a log file every
// message is discarded: the terminal belongs to the presentation.
func setupLogging(cfg *config.Config) (*logger.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logger.New(), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := logger.LevelInfo
	if cfg.Log.Verbose {
		level = logger.LevelDebug
	}
	log := logger.New(logger.WithOutput(f), logger.WithLevel(level))
	return log, func() { f.Close() }, nil
}
