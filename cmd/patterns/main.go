// Command patterns runs the design-pattern demos.
//
// Usage:
//
//	patterns [flags] [demo ...]
//
// With no demo names it runs every demo (or the ones listed under demos:
// in .patterns.yaml). Flags override the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/lvpatterns/internal/config"
	"github.com/katalvlaran/lvpatterns/internal/render"
	"github.com/katalvlaran/lvpatterns/internal/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patterns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultPath, "path to YAML config")
	only := fs.String("only", "", "comma-separated demo names to run")
	list := fs.Bool("list", false, "list demo names and exit")
	plain := fs.Bool("plain", false, "print banners without styling")
	noBanner := fs.Bool("no-banner", false, "omit banners entirely")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg, err := config.Load(*configPath, !set["config"])
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *plain {
		cfg.Plain = true
	}
	if *noBanner {
		cfg.Banners = false
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reg := runner.Default()
	if *list {
		for _, d := range reg.Demos() {
			fmt.Fprintf(stdout, "%-16s %s\n", d.Name, render.Title(d.Title))
		}
		return 0
	}

	names, err := selectNames(*only, set["only"], fs.Args(), cfg.Demos)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	opts := []runner.Option{runner.WithOutput(stdout), runner.WithLogger(logger)}
	if cfg.Banners {
		opts = append(opts, runner.WithBanner(render.NewBanner(stdout, cfg.Color, cfg.Plain).Render))
	}

	if err := runner.New(reg, opts...).Run(ctx, names...); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}

// errEmptySelection is returned when -only is given but names no demo.
var errEmptySelection = errors.New("-only names no demos")

// selectNames picks, in priority order, -only, positional args, config.
// An -only that is set but lists nothing is an error rather than "all".
func selectNames(only string, onlySet bool, positional, fromConfig []string) ([]string, error) {
	if onlySet {
		var names []string
		for _, n := range strings.Split(only, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		if len(names) == 0 {
			return nil, errEmptySelection
		}
		return names, nil
	}
	if len(positional) > 0 {
		return positional, nil
	}

	return fromConfig, nil
}
