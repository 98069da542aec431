// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelltrie word index server and CLI.

spelltrie loads a plain text dictionary (one word per line) into a prefix
tree and answers four kinds of queries: exact lookups, prefix tests, prefix
completions and one-edit spelling suggestions. It runs either as an
interactive command menu or as a MessagePack IPC server on stdin/stdout.

# Usage

Start the IPC server with the dictionary from the config file:

	spelltrie

Load a specific word list and open the interactive menu:

	spelltrie -dict /usr/share/dict/words -c

Use the patricia backed index and enable debug logging:

	spelltrie -backend patricia -d

When the dictionary file is missing or unreadable a small built-in word list
is loaded instead, so both modes always start.

# Configuration

Settings live in config.toml under the user config directory and are created
with defaults on first run:

	[dict]
	path = "words.txt"

	[index]
	backend = "node"

	[cli]
	display_limit = 10
	min_len = 1
	max_len = 64
	no_filter = false

	[server]
	default_limit = 10
	max_limit = 100
	max_arg_len = 64

Flags given on the command line override the file.

# Command Line Flags

	-config string
	    Path to a config file
	-dict string
	    Dictionary file, one word per line
	-backend string
	    Index backend: node or patricia
	-d  Enable debug mode with detailed logging
	-c  Run the interactive CLI instead of the IPC server
	-limit int
	    Number of completions to display in CLI mode
	-prmin int
	    Minimum argument length in CLI mode
	-prmax int
	    Maximum argument length in CLI mode
	-no-filter
	    Accept non-letter arguments in CLI mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/spelltrie/internal/cli"
	"github.com/bastiangx/spelltrie/internal/logger"
	"github.com/bastiangx/spelltrie/internal/utils"
	"github.com/bastiangx/spelltrie/pkg/config"
	"github.com/bastiangx/spelltrie/pkg/dictionary"
	"github.com/bastiangx/spelltrie/pkg/server"
	"github.com/bastiangx/spelltrie/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "spelltrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and index together and hands over to the
// CLI or the server. It holds no query logic itself.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	dictPath := flag.String("dict", defaults.Dict.Path, "Dictionary file, one word per line")
	backend := flag.String("backend", defaults.Index.Backend, "Index backend: node or patricia")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	limit := flag.Int("limit", defaults.CLI.DisplayLimit, "Number of completions to display")
	minLen := flag.Int("prmin", defaults.CLI.MinLen, "Minimum argument length")
	maxLen := flag.Int("prmax", defaults.CLI.MaxLen, "Maximum argument length")
	noFilter := flag.Bool("no-filter", defaults.CLI.NoFilter, "Accept non-letter arguments (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	cfg, usedConfig := config.LoadConfigWithPriority(*configPath, pathResolver.GetConfigPath(config.FileName))
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			cfg.Dict.Path = *dictPath
		case "backend":
			cfg.Index.Backend = *backend
		case "limit":
			cfg.CLI.DisplayLimit = *limit
		case "prmin":
			cfg.CLI.MinLen = *minLen
		case "prmax":
			cfg.CLI.MaxLen = *maxLen
		case "no-filter":
			cfg.CLI.NoFilter = *noFilter
		}
	})

	index, err := trie.NewIndex(cfg.Index.Backend)
	if err != nil {
		log.Fatalf("Failed to create index: %v", err)
	}

	start := time.Now()
	dictFile := pathResolver.ResolveDictPath(cfg.Dict.Path)
	result := dictionary.Load(dictFile, index)
	log.Debugf("Loaded %d entries (%d distinct) in %v", result.Words, index.Len(), time.Since(start))

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minLen", cfg.CLI.MinLen,
			"maxLen", cfg.CLI.MaxLen,
			"limit", cfg.CLI.DisplayLimit,
			"noFilter", cfg.CLI.NoFilter)

		inputHandler := cli.NewInputHandler(index, cfg.CLI, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(result, index, cfg.Index.Backend)

	srv := server.NewServer(index, cfg.Server, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ spelltrie ] word lookups, completions and spelling fixes")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}

// showStartupInfo logs basic info about the init process. Stdout belongs to
// the IPC stream, so this goes to stderr.
func showStartupInfo(result dictionary.Result, index trie.Index, backend string) {
	l := logger.New(AppName)
	l.SetLevel(log.InfoLevel)

	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("backend: %s", backend)
	if result.Fallback {
		l.Warnf("dictionary: built-in defaults (%v)", result.Err)
	} else {
		l.Infof("dictionary: ( %s )", result.Path)
	}
	l.Infof("words: %s", utils.FormatWithCommas(index.Len()))
	l.Info("status: ready")
}
