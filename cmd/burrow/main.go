package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"burrow/internal/config"
	"burrow/internal/external"
	"burrow/internal/gopher"
	"burrow/internal/logging"
	"burrow/internal/navigation"
	"burrow/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		pageSize    int
		logFile     string
		logLevel    string
		charset     string
		writeConfig bool
	)

	flagSet := pflag.NewFlagSet("burrow", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "path to config file (default: user config dir)")
	flagSet.IntVar(&pageSize, "page-size", 0, "rows per page of listings and documents")
	flagSet.StringVar(&logFile, "log-file", "", "write JSON log records to this file")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.StringVar(&charset, "charset", "", "charset for responses that are not UTF-8")
	flagSet.BoolVar(&writeConfig, "write-config", false, "save the effective config and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(1))
	}

	// Load configuration, flags win over the file
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if pageSize > 0 {
		cfg.PageSize = pageSize
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if charset != "" {
		cfg.FallbackCharset = charset
	}
	cfg.Normalize()

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Println(config.Path(configSvc))
		return nil
	}

	startURL := cfg.UISettings.StartURL
	if flagSet.NArg() == 1 {
		startURL = flagSet.Arg(0)
	}
	if startURL != "" {
		if _, err := gopher.ParseURL(startURL); err != nil {
			return err
		}
	}

	// The terminal belongs to the UI, so logs go to a file
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer closer.Close()

	decoder, err := gopher.NewDecoder(cfg.FallbackCharset)
	if err != nil {
		return err
	}
	opener, err := external.NewCommandOpener(cfg.UISettings.ExternalOpener)
	if err != nil {
		return err
	}
	home, err := navigation.LoadHome(cfg.HomeFile)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := gopher.NewClient(
		gopher.WithDecoder(decoder),
		gopher.WithMaxBytes(cfg.MaxResponseBytes),
		gopher.WithLogger(logger),
	)

	forwarder := ui.NewForwarder()
	engine := navigation.New(ctx, navigation.Options{
		Fetcher:        client,
		Presenter:      forwarder.Presenter(),
		Opener:         opener,
		Home:           home,
		PageSize:       cfg.PageSize,
		CachedListings: cfg.CachedListings,
		Logger:         logger,
	})
	defer engine.Close()

	model := ui.NewModel(engine, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward engine events to the UI in order
	go forwarder.Run(ctx, p.Send)

	engine.Start()
	if startURL != "" {
		_ = engine.OpenURL(startURL)
	}

	logger.Info("burrow started", "config", config.Path(configSvc), "start_url", startURL)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `burrow - a terminal Gopher client

Usage:
  burrow [flags] [gopher-url]

Starts on the built-in home listing, then opens gopher-url if given
(or ui.start_url from the config file).

Flags:
%s`, flagSet.FlagUsages())
}
