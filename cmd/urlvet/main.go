package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/haukened/urlvet/internal/vet/common/log"
	"github.com/haukened/urlvet/internal/vet/config"
	"github.com/haukened/urlvet/internal/vet/domain"
	"github.com/haukened/urlvet/internal/vet/gateways/dnscheck"
	"github.com/haukened/urlvet/internal/vet/gateways/whois"
	"github.com/haukened/urlvet/internal/vet/repos/liststore"
	"github.com/haukened/urlvet/internal/vet/services/analyzer"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "urlvet"
)

// Application holds all the components of the URL checker.
type Application struct {
	config    *config.AppConfig
	analyzer  *analyzer.Analyzer
	whitelist *liststore.Store
	blacklist *liststore.Store
	dynamic   *liststore.Store
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	autoYes := flag.Bool("yes", false, "apply suggested list additions without prompting")
	quiet := flag.Bool("quiet", false, "never prompt for list additions")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", appName, version)
		return
	}

	urls := flag.Args()
	if len(urls) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <url> [<url> ...]\n", appName)
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"version":        version,
		"env":            cfg.Env,
		"log_level":      cfg.LogLevel,
		"whitelist":      cfg.WhitelistFile,
		"blacklist":      cfg.BlacklistFile,
		"dynamic":        cfg.DynamicBlacklistFile,
		"whois_timeout":  cfg.WhoisTimeout,
		"dns_cache_size": cfg.DNSCacheSize,
	}, "Starting urlvet")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	os.Exit(app.Run(context.Background(), urls, os.Stdin, os.Stdout, *autoYes, *quiet))
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	whitelist := liststore.New(cfg.WhitelistFile, logger)
	blacklist := liststore.New(cfg.BlacklistFile, logger)
	dynamic := liststore.New(cfg.DynamicBlacklistFile, logger)

	resolver, err := dnscheck.New(dnscheck.Options{
		CacheSize: int(cfg.DNSCacheSize),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DNS resolver: %w", err)
	}

	registrar := whois.New(whois.Options{
		Timeout:   time.Duration(cfg.WhoisTimeout) * time.Second,
		Fallbacks: cfg.WhoisServers,
		Logger:    logger,
	})

	vetService := analyzer.New(analyzer.Options{
		Whitelist: whitelist,
		Blacklist: blacklist,
		Dynamic:   dynamic,
		Resolver:  resolver,
		Registrar: registrar,
		Logger:    logger,
	})

	return &Application{
		config:    cfg,
		analyzer:  vetService,
		whitelist: whitelist,
		blacklist: blacklist,
		dynamic:   dynamic,
	}, nil
}

// Run checks each URL strictly one at a time and returns the process exit
// code. The analysis itself happens on a worker goroutine; Run blocks on the
// single delivery event per check, so the network I/O never runs here.
func (app *Application) Run(ctx context.Context, urls []string, stdin io.Reader, stdout io.Writer, autoYes, quiet bool) int {
	in := bufio.NewReader(stdin)

	exitCode := 0
	for _, raw := range urls {
		out := <-app.analyzer.Go(ctx, raw)
		if out.Err != nil {
			fmt.Fprintf(os.Stderr, "analysis error: %v\n", out.Err)
			exitCode = 1
			continue
		}

		printResult(stdout, out.Result)

		if out.Result.SuggestAdd != domain.SuggestNone && !quiet {
			app.confirmAdd(in, stdout, out.Result, autoYes)
		}
	}
	return exitCode
}

// printResult renders one verdict: colored verdict tag, risk, and notes.
func printResult(w io.Writer, res domain.Result) {
	tag := verdictColor(res.Verdict).Sprint(strings.ToUpper(res.Verdict.String()))
	fmt.Fprintf(w, "%s  %s\n", tag, res.URL)
	fmt.Fprintf(w, "  risk:  %d%%\n", res.Risk)
	if res.Notes != "" {
		fmt.Fprintf(w, "  notes: %s\n", res.Notes)
	}
}

// verdictColor maps verdict severity onto output color: green for safe, red
// for list hits, yellow for everything in between.
func verdictColor(v domain.Verdict) *color.Color {
	switch v {
	case domain.VerdictSafe:
		return color.New(color.FgGreen, color.Bold)
	case domain.VerdictBlacklisted, domain.VerdictDynamic:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgYellow, color.Bold)
	}
}

// confirmAdd prompts for (or auto-applies) a suggested list addition and
// appends the checked URL's domain to the matching store on confirmation.
func (app *Application) confirmAdd(in *bufio.Reader, out io.Writer, res domain.Result, autoYes bool) {
	store := app.blacklist
	if res.SuggestAdd == domain.SuggestWhitelist {
		store = app.whitelist
	}

	if !autoYes {
		fmt.Fprintf(out, "add %s to the %s? [y/N] ", res.URL, res.SuggestAdd)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			return
		}
	}

	if err := store.RecordDomain(res.URL); err != nil {
		log.Warn(map[string]any{
			"list":  res.SuggestAdd.String(),
			"url":   res.URL,
			"error": err.Error(),
		}, "Failed to record list entry")
		return
	}
	fmt.Fprintf(out, "added to %s (%s)\n", res.SuggestAdd, store.Path())
}
