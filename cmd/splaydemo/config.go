// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/splaytree/internal/log"
	"github.com/btcsuite/splaytree/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDataset     = datasetInts
	defaultLogFilename = "splaydemo.log"
	defaultLogLevel    = "info"
)

var (
	splaydemoHomeDir = btcutil.AppDataDir("splaydemo", false)
	defaultLogDir    = filepath.Join(splaydemoHomeDir, "logs")
)

// config defines the configuration options for splaydemo.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool     `short:"V" long:"version" description:"Display version information and exit"`
	Dataset       string   `short:"d" long:"dataset" description:"Dataset to load {ints, hosts, hashes}"`
	Remove        []string `short:"r" long:"remove" description:"Remove a key after loading the dataset -- may be specified multiple times"`
	Lookup        []string `short:"l" long:"lookup" description:"Look up a key after applying removals -- may be specified multiple times"`
	Dump          bool     `long:"dump" description:"Dump the traversal results with their types"`
	LogDir        string   `long:"logdir" description:"Directory to log output"`
	DebugLevel    string   `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	NoFileLogging bool     `long:"nofilelogging" description:"Disable file logging"`
}

// validDataset returns whether or not dataset names a known dataset.
func validDataset(dataset string) bool {
	for _, known := range knownDatasets {
		if dataset == known {
			return true
		}
	}

	return false
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		Dataset:    defaultDataset,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Println("splaydemo version", version.String())
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		os.Exit(0)
	}

	funcName := "loadConfig"

	// Validate the dataset.
	if !validDataset(cfg.Dataset) {
		str := "%s: the specified dataset [%v] is invalid -- " +
			"supported datasets %v"
		err := fmt.Errorf(str, funcName, cfg.Dataset, knownDatasets)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %w", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			err := fmt.Errorf("%s: %w", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}
