// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/engine"
	"github.com/katalvlaran/socnet/internal/config"
)

// app carries the resolved flags and the objects built from them for one
// command invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	trace      bool
	metrics    bool
	workers    int
	relation   int
	timeout    time.Duration
	jsonOut    bool

	network networkFlags

	profile *config.Profile
	logger  *slog.Logger
	closers []func(context.Context) error
}

// networkFlags override profile.network when set.
type networkFlags struct {
	kind        string
	vertices    int
	degree      int
	probability float64
	seed        int64
	directed    bool
	maxWeight   int
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, which keeps tests free of shared flag state.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "socnet",
		Short:         "Social network analysis: distances, centralities, triads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "analysis profile (default: ./socnet.yml if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to a rotating file instead of stderr")
	pf.BoolVar(&a.trace, "trace", false, "export OpenTelemetry spans to stderr")
	pf.BoolVar(&a.metrics, "metrics", false, "export OpenTelemetry metrics to stderr on exit")
	pf.IntVar(&a.workers, "workers", 0, "worker goroutines (0: profile or GOMAXPROCS)")
	pf.IntVar(&a.relation, "relation", -1, "relation to analyse (-1: current)")
	pf.DurationVar(&a.timeout, "timeout", 0, "abort the analysis after this long (0: never)")
	pf.BoolVar(&a.jsonOut, "json", false, "print machine-readable JSON")

	pf.StringVar(&a.network.kind, "kind", "", "topology: star, cycle, lattice, complete, path, wheel, random")
	pf.IntVar(&a.network.vertices, "vertices", 0, "number of vertices")
	pf.IntVar(&a.network.degree, "degree", 0, "ring lattice degree")
	pf.Float64Var(&a.network.probability, "probability", 0, "tie probability for random networks")
	pf.Int64Var(&a.network.seed, "seed", 0, "random seed")
	pf.BoolVar(&a.network.directed, "directed", false, "emit one-way ties")
	pf.IntVar(&a.network.maxWeight, "max-weight", 0, "draw integer tie weights from 1..max-weight")

	root.AddCommand(
		newAnalyzeCmd(a),
		newCensusCmd(a),
		newIndexCmd(a),
		newPathCmd(a),
		newWalksCmd(a),
	)

	return root
}

// setup loads the profile, applies flag overrides and installs logging
// and telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.profile, err = config.Load(a.configPath)
	} else {
		a.profile, err = config.LoadDir(".")
	}
	if err != nil {
		return err
	}
	if err = a.override(cmd); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(a.profile.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.closers = append(a.closers, closeLog)

	if a.trace || a.metrics {
		stop, err := setupTelemetry(cmd.Context(), cmd.ErrOrStderr(), a.trace, a.metrics)
		if err != nil {
			return errors.Join(err, a.shutdown(cmd.Context()))
		}
		a.closers = append(a.closers, stop)
	}
	a.logger.Debug("profile resolved",
		slog.String("kind", a.profile.Network.Kind),
		slog.Int("vertices", a.profile.Network.Vertices),
		slog.Bool("directed", a.profile.Network.Directed),
	)

	return nil
}

// run wraps a command body so telemetry is flushed and the log file closed
// whether or not the body fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if serr := a.shutdown(cmd.Context()); err == nil {
				err = serr
			}
		}()

		return fn(cmd, args)
	}
}

// override copies explicitly set flags over the profile and revalidates it.
func (a *app) override(cmd *cobra.Command) error {
	p := a.profile
	f := cmd.Flags()
	if f.Changed("kind") {
		p.Network.Kind = a.network.kind
		p.Network.Edges = nil
	}
	if f.Changed("vertices") {
		p.Network.Vertices = a.network.vertices
	}
	if f.Changed("degree") {
		p.Network.Degree = a.network.degree
	}
	if f.Changed("probability") {
		p.Network.Probability = a.network.probability
	}
	if f.Changed("seed") {
		p.Network.Seed = a.network.seed
	}
	if f.Changed("directed") {
		p.Network.Directed = a.network.directed
	}
	if f.Changed("max-weight") {
		p.Network.MaxWeight = a.network.maxWeight
	}
	if f.Changed("workers") {
		p.Analysis.Workers = a.workers
	}
	if a.logLevel != "" {
		p.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		p.Log.Format = a.logFormat
	}
	if a.logFile != "" {
		p.Log.File = a.logFile
	}

	return p.Validate()
}

// shutdown flushes telemetry and closes the log file.
func (a *app) shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}

// context derives the analysis context from the command context and --timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}

	return context.WithCancel(ctx)
}

// engine builds the network and wraps it for the requested relation.
func (a *app) engine() (*engine.Engine, error) {
	g, err := buildGraph(a.profile.Network)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithLogger(a.logger),
		engine.WithProgress(newLogProgress(a.logger)),
		engine.WithInvertWeights(a.profile.Analysis.InvertWeights),
		engine.WithCentralityOptions(centralityOptions(a.profile.Analysis)...),
	}
	if a.profile.Analysis.Workers > 0 {
		opts = append(opts, engine.WithWorkers(a.profile.Analysis.Workers))
	}
	e, err := engine.New(g, opts...)
	if err != nil {
		return nil, err
	}
	if a.relation >= 0 {
		return e.ForRelation(a.relation)
	}

	return e, nil
}

// out returns the command's standard output.
func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
