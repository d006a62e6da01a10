// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tagmine/internal/config"
	"github.com/tomtom215/tagmine/internal/logging"
	"github.com/tomtom215/tagmine/internal/metrics"
)

const usage = `Usage: tagmine <command> [flags]

Commands:
  mine        mine maximal frequent tag sets from a dataset
  recommend   mine, then recommend catalog entries for a watched list
  watch       re-mine on an interval under supervision

Run "tagmine <command> -h" for command flags.
`

// errUsage marks errors that should print usage and exit with status 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	default:
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// run dispatches to a subcommand. JSON output goes to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	var cmd func(ctx context.Context, env *environment) error
	switch args[0] {
	case "mine":
		cmd = runMine
	case "recommend":
		cmd = runRecommend
	case "watch":
		cmd = runWatch
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	fs := flag.NewFlagSet("tagmine "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := registerFlags(fs, args[0])
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	opts := flags.loadOptions(fs)
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	logSetup := cfg.LoggingSetup()
	logSetup.Output = zerolog.SyncWriter(stderr)
	logging.Init(logSetup)
	ctx = logging.ContextWithLogger(ctx, logging.Component(args[0]))

	env := &environment{
		cfg:        cfg,
		loadOpts:   opts,
		stdout:     stdout,
		outputPath: flags.output,
	}
	err = cmd(ctx, env)

	if path := cfg.Metrics.TextfilePath; path != "" && args[0] != "watch" {
		if werr := metrics.WriteTextfile(path); werr != nil {
			logging.Warn().Err(werr).Str("path", path).Msg("failed to write metrics textfile")
		}
	}
	return err
}

// environment carries what every command needs.
type environment struct {
	cfg        *config.Config
	loadOpts   config.LoadOptions
	stdout     io.Writer
	outputPath string
}
