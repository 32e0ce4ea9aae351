// Package main is the entry point for the keywedge device firmware.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keywedge/keywedge/internal/app"
	"github.com/keywedge/keywedge/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := app.NewLogger(opts.logLevel)

	cfg, err := config.Load(opts.configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.backend != "" {
		cfg.Backend = config.Backend(opts.backend)
	}
	if opts.logLevel == "" && cfg.LogLevel != "" {
		log = app.NewLogger(cfg.LogLevel)
	}

	application, err := app.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Handle signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	log.WithField("backend", cfg.Backend).Info("keywedge starting")
	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	backend    string
	logLevel   string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or legacy settings)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.backend, "backend", "", "Backend override: gadget, gpio, or sim")
	flag.StringVar(&opts.backend, "b", "", "Backend override (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keywedge - single-button keystroke injector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keywedge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keywedge                       Run on the USB gadget with defaults\n")
		fmt.Fprintf(os.Stderr, "  keywedge -c keywedge.toml      Run with a configuration file\n")
		fmt.Fprintf(os.Stderr, "  keywedge -b sim                Try the device in a terminal\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keywedge %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}
