// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"lexiscan/internal/analyzer"
	"lexiscan/internal/config"
	"lexiscan/internal/formatters"
	jsonformatter "lexiscan/internal/formatters/json"
	textformatter "lexiscan/internal/formatters/text"
	"lexiscan/internal/observability"
	"lexiscan/internal/preprocessors"
	"lexiscan/internal/summarizer"
	"lexiscan/internal/version"
	"lexiscan/internal/web"
)

// cliFlags holds command line flag values
type cliFlags struct {
	file         string
	text         string
	documentType string
	format       string
	output       string
	serverMode   bool
	host         string
	port         int
	configFile   string
	verbose      bool
	noColor      bool
	showVersion  bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	// Environment overrides (OPENAI_API_KEY etc.) may live in a .env file.
	if err := godotenv.Load(); err == nil {
		observability.Log.Debug("loaded environment from .env")
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		observability.SetLevel(level)
	}

	cfg := loadConfiguration(flags.configFile)
	applyFlags(cfg, flags)

	observability.SetVerbose(cfg.Defaults.Verbose)
	if cfg.Defaults.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	if err := registry.ValidateFormat(cfg.Defaults.OutputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := analyzer.New(buildSummarizer(cfg))

	if flags.serverMode {
		runServer(cfg, a)
		return
	}

	text, err := resolveInput(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := a.Analyze(context.Background(), analyzer.Request{
		Text:         text,
		DocumentType: flags.documentType,
		Filename:     flags.file,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	formatter, _ := registry.Get(cfg.Defaults.OutputFormat)
	out, err := formatter.Format(result, formatters.FormatterOptions{
		ConfidenceThreshold: cfg.Defaults.ConfidenceThreshold,
		Verbose:             cfg.Defaults.Verbose,
		NoColor:             color.NoColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(out+"\n"), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(out)
}

func parseFlags() cliFlags {
	var flags cliFlags
	flag.StringVar(&flags.file, "file", "", "Path to a document file (PDF or text) to analyze")
	flag.StringVar(&flags.text, "text", "", "Document text to analyze (alternative to -file)")
	flag.StringVar(&flags.documentType, "type", "", "Document type hint (e.g. employment, lease); auto-detected when empty")
	flag.StringVar(&flags.format, "format", "", "Output format: text or json")
	flag.StringVar(&flags.output, "output", "", "Write output to a file instead of stdout")
	flag.BoolVar(&flags.serverMode, "server", false, "Run as an HTTP server")
	flag.StringVar(&flags.host, "host", "", "Server host (with -server)")
	flag.IntVar(&flags.port, "port", 0, "Server port (with -server)")
	flag.StringVar(&flags.configFile, "config", "", "Path to a config file")
	flag.BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version information and exit")
	flag.Parse()
	return flags
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// applyFlags lets command line flags override config file values.
func applyFlags(cfg *config.Config, flags cliFlags) {
	if flags.format != "" {
		cfg.Defaults.OutputFormat = flags.format
	}
	if flags.verbose {
		cfg.Defaults.Verbose = true
	}
	if flags.noColor {
		cfg.Defaults.NoColor = true
	}
	if flags.host != "" {
		cfg.Server.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Server.Port = flags.port
	}
}

func buildSummarizer(cfg *config.Config) summarizer.Summarizer {
	if cfg.Summarizer.Provider == "openai" {
		s, err := summarizer.NewOpenAI(cfg.Summarizer.Model)
		if err == nil {
			return s
		}
		observability.Log.WithError(err).Warn("openai summarizer unavailable, using extractive")
	}
	return summarizer.Extractive{}
}

func resolveInput(flags cliFlags) (string, error) {
	switch {
	case flags.text != "" && flags.file != "":
		return "", fmt.Errorf("use either -file or -text, not both")
	case flags.text != "":
		return flags.text, nil
	case flags.file != "":
		content, err := preprocessors.NewManager().ProcessFile(flags.file)
		if err != nil {
			return "", err
		}
		return content.Text, nil
	default:
		return "", fmt.Errorf("no input: pass -file, -text, or -server (see -h)")
	}
}

func runServer(cfg *config.Config, a *analyzer.Analyzer) {
	observability.ConfigureForServer()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg, a)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: server failed: %v\n", err)
		os.Exit(1)
	}
}
