package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedscope/pkg/aggregator"
	"github.com/umputun/feedscope/pkg/config"
	"github.com/umputun/feedscope/pkg/content"
	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/pkg/feed"
	"github.com/umputun/feedscope/pkg/scheduler"
	"github.com/umputun/feedscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting feedscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", opts.Config, err)
	}

	sources := makeSources(cfg)
	log.Printf("[INFO] configured %d sources", len(sources))

	var extractor aggregator.Extractor
	if extCfg := cfg.GetExtractionConfig(); extCfg.Enabled {
		extractor = content.NewHTTPExtractor(extCfg.Timeout, extCfg.UserAgent)
		log.Printf("[INFO] content extraction enabled, timeout %v", extCfg.Timeout)
	}

	agg := aggregator.New(aggregator.Params{
		Sources:       sources,
		Extractor:     extractor,
		MaxWorkers:    cfg.Fetch.MaxWorkers,
		FetchLimit:    cfg.Fetch.Limit,
		RetryAttempts: cfg.Fetch.RetryAttempts,
		RetryDelay:    cfg.Fetch.RetryDelay,
		CacheTTL:      cfg.Cache.TTL,
	})

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(agg, cfg.Scheduler.Feeds, cfg.Scheduler.Interval)
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, agg, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeSources builds fetch clients from the configured source entries
func makeSources(cfg *config.Config) []aggregator.Source {
	sources := make([]aggregator.Source, 0, len(cfg.Sources))
	for _, src := range cfg.GetSources() {
		switch src.Kind {
		case domain.SourceRSS:
			sources = append(sources, feed.NewRSSClient(src, cfg.Fetch.Timeout))
		default:
			sources = append(sources, feed.NewAPIClient(src, cfg.Fetch.Timeout))
		}
	}
	return sources
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
