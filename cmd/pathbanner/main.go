// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"

	"go.astrophena.name/pathbanner/cli"
	"go.astrophena.name/pathbanner/internal/config"
	"go.astrophena.name/pathbanner/internal/process"
	"go.astrophena.name/pathbanner/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	fix        bool
	remove     bool
	configPath string
	jobs       int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.fix, "fix", false, "Add missing banners and update stale ones.")
	fs.BoolVar(&a.remove, "remove", false, "Remove banners.")
	fs.StringVar(&a.configPath, "config", "", "Read configuration from `file` instead of "+config.DefaultFile+".")
	fs.IntVar(&a.jobs, "j", 0, "Process at most `n` files at once. Defaults to the number of CPUs.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.fix && a.remove {
		return fmt.Errorf("%w: -fix and -remove are mutually exclusive", cli.ErrInvalidArgs)
	}
	if a.jobs < 0 {
		return fmt.Errorf("%w: -j must not be negative", cli.ErrInvalidArgs)
	}

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	p := &process.Processor{
		Mode:     a.mode(),
		Registry: cfg.Registry(),
		MaxSize:  cfg.MaxSize,
		Exclude:  cfg.Excluded,
	}
	outcomes, err := p.Batch(ctx, env.Args, a.jobs)
	if err != nil {
		return err
	}

	var impacted, failed int
	for _, o := range outcomes {
		switch {
		case o.Action == process.Unchanged:
			continue
		case o.Changed():
			impacted++
		case o.Action == process.Errored:
			failed++
		}
		fmt.Fprintln(env.Stdout, o)
	}
	if impacted > 0 {
		fmt.Fprintf(env.Stdout, "\n%d files %s\n", impacted, a.summary())
	}
	attrs := []slog.Attr{
		slog.Int("files", len(outcomes)),
		slog.Int("impacted", impacted),
		slog.Int("failed", failed),
	}

	if impacted > 0 || failed > 0 {
		logger.Info(ctx, "done", attrs...)
		return cli.ErrSilentExit
	}
	logger.Debug(ctx, "done", attrs...)
	return nil
}

func (a *app) mode() process.Mode {
	switch {
	case a.fix:
		return process.Fix
	case a.remove:
		return process.Remove
	}
	return process.Check
}

func (a *app) summary() string {
	switch a.mode() {
	case process.Fix:
		return "were updated with headers."
	case process.Remove:
		return "had headers removed."
	}
	return "have missing/incorrect headers. Run with -fix."
}

// loadConfig reads the file given with -config, or the default file if it
// exists.
func (a *app) loadConfig(ctx context.Context) (*config.Config, error) {
	if a.configPath != "" {
		return config.Load(a.configPath)
	}
	cfg, err := config.Load(config.DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug(ctx, "no configuration file, using defaults")
		return config.Default(), nil
	}
	return cfg, err
}
