// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the markdown completion server and CLI [DBG] application.

mdserve suggests completions while a markdown document is edited: LaTeX
commands inside math, reference link labels and heading anchors. It runs as
a MessagePack IPC server for editor integration, or as a CLI for testing the
completion engine against a file.

# Usage

Start the server with default settings:

	mdserve

Use a custom config file and enable debug logging:

	mdserve -config ./mdserve.toml -d

Run in CLI mode against a document:

	mdserve -c -file notes.md -limit 10

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run under the platform config directory:

	[server]
	max_document_bytes = 4194304
	log_level = "warn"
	watch_config = true

	[completion]
	math = true
	references = true
	anchors = true
	environments = ["align", "matrix", "cases"]

	[cli]
	default_limit = 24

With watch_config set, the server rebuilds its engine when the file changes.
A file that fails to parse keeps whatever keys can still be read.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. See the server
package for the message shapes:

	{"id": "req1", "action": "complete", "text": "$\\al$", "line": 0, "ch": 3}
	{"id": "req1", "items": [{"l": "\\alpha", "i": "alpha", "k": 1}], "c": 1, "t": 145}

# CLI Mode

CLI mode loads a markdown file and reads cursor positions from stdin as
1-based line:col, optionally followed by a prefix that narrows the list:

	> 12:8
	> 30:4 \lef

# Command Line Flags

	-config string
	    Path to a TOML config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-file string
	    Markdown file to load in CLI mode
	-limit int
	    Number of candidates to print in CLI mode (default from config)
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/mdserve/internal/cli"
	"github.com/bastiangx/mdserve/internal/logger"
	"github.com/bastiangx/mdserve/internal/utils"
	"github.com/bastiangx/mdserve/pkg/config"
	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/server"
	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "mdserve"
	gh      = "https://github.com/bastiangx/mdserve"
)

// sigHandler cancels the returned context on the first interrupt and exits
// on the second.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		<-c
		os.Exit(1)
	}()
	return ctx
}

// main only manages the flow between config, server and CLI.
func main() {
	ctx := sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	docPath := flag.String("file", "", "Markdown file to complete against in CLI mode")
	limit := flag.Int("limit", 0, "Number of candidates to print in CLI mode (0 uses config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Config loading logs, so a provisional level is set first.
	if *debugMode {
		logger.Install("", log.DebugLevel, true)
	} else {
		logger.Install("", log.WarnLevel, false)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !*debugMode {
		logger.Install("", logger.ParseLevel(appConfig.Server.LogLevel), false)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	engine := suggest.NewEngine(appConfig.EngineOptions()...)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		runCLI(ctx, engine, *docPath, *limit, appConfig.CLI.DefaultLimit)
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine)

	if appConfig.Server.WatchConfig && activePath != "" {
		watcher, err := config.NewWatcher(activePath, config.DefaultDebounce, func(c *config.Config) {
			srv.SetEngine(suggest.NewEngine(c.EngineOptions()...))
		})
		if err != nil {
			log.Warnf("Config watching disabled: %v", err)
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	showStartupInfo(activePath)

	if err := srv.Start(ctx); err != nil {
		log.Errorf("Server stopped: %v", err)
		os.Exit(1)
	}
	log.Debug("Server done", "requests", srv.Served())
}

func runCLI(ctx context.Context, engine *suggest.Engine, path string, limit, defaultLimit int) {
	if path == "" {
		log.Fatal("CLI mode needs a markdown file: -file notes.md")
	}
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolved, err := pathResolver.ResolveDocumentPath(path)
	if err != nil {
		log.Fatalf("Failed to resolve document: %v", err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		log.Fatalf("Failed to read document: %v", err)
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	log.SetReportTimestamp(false)
	log.Debug("Input info:", "file", resolved, "limit", limit)

	inputHandler := cli.NewInputHandler(engine, document.New(string(data)), limit)
	if err := inputHandler.Start(ctx); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ mdserve ] LaTeX, reference and anchor completions for markdown")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(configPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "  mdserve  ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
}
