package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridrun/batch"
	"github.com/katalvlaran/gridrun/config"
	"github.com/katalvlaran/gridrun/dijkstra"
	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/search"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

// errGoalOutOfGrid marks a configured goal cell that lies outside its grid.
var errGoalOutOfGrid = errors.New("goal outside the grid")

// run is main without the process plumbing, so it can be tested.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := newLogger(stderr)
	f, err := parseFlags(args, stderr)
	if err != nil {
		log.WithError(err).Error("bad arguments")
		return exitError
	}

	cfg, err := loadConfig(f)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return exitError
	}
	lvl, _ := cfg.Level() // validated
	if f.verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	grids := make(map[string]*grid.Grid)
	load := func(path string) (*grid.Grid, error) {
		if g, ok := grids[path]; ok {
			return g, nil
		}
		g, err := grid.LoadFile(path)
		if err != nil {
			return nil, err
		}
		grids[path] = g
		log.WithFields(logrus.Fields{"file": path, "rows": g.Height(), "cols": g.Width()}).Debug("grid loaded")

		return g, nil
	}

	queries, err := buildQueries(cfg, load)
	if err != nil {
		log.WithError(err).Error("preparing runs")
		return exitError
	}

	answers, err := batch.Run(ctx, queries, batch.WithWorkers(cfg.Workers), batch.WithLogger(log))
	if err != nil {
		log.WithError(err).Error("interrupted")
		return exitError
	}

	code := exitOK
	for i, a := range answers {
		q := queries[i]
		switch {
		case errors.Is(a.Err, search.ErrNoPath):
			fmt.Fprintf(stdout, "%s: no path\n", a.Name)
			if code == exitOK {
				code = exitNoPath
			}
		case a.Err != nil:
			log.WithError(a.Err).WithField("run", a.Name).Error("run failed")
			code = exitError
		default:
			fmt.Fprintf(stdout, "%s: %d\n", a.Name, a.Result.Cost)
			if a.Result.Path != nil {
				for _, row := range q.Grid.Overlay(a.Result.Path) {
					fmt.Fprintln(stdout, row)
				}
			}
		}
		if f.baseline && q.Grid != nil && q.Grid.InBounds(q.Start) {
			printBaseline(stdout, q, cfg.Runs[i])
		}
	}

	return code
}

// printBaseline prints the unconstrained cost to the run's goal cell.
func printBaseline(w io.Writer, q batch.Query, r config.Run) {
	dist, _, err := dijkstra.Dijkstra(q.Grid, dijkstra.Source(q.Start))
	if err != nil {
		return
	}
	target := q.Grid.BottomRight()
	if r.Goal != nil {
		target = r.Goal.Position()
	}
	if !q.Grid.InBounds(target) {
		return
	}
	fmt.Fprintf(w, "%s: baseline %d\n", q.Name, dist[q.Grid.Index(target)])
}

// loadConfig reads -config, or assembles a single-run Config from the flags.
func loadConfig(f flags) (*config.Config, error) {
	if f.config != "" {
		return config.NewLoader().LoadFromFile(f.config)
	}
	cfg := &config.Config{
		Runs: []config.Run{{
			Name:       filepath.Base(f.grid),
			Grid:       f.grid,
			Policy:     config.PolicySpec{Preset: f.preset, MinRun: f.minRun, MaxRun: f.maxRun},
			Heuristic:  f.heuristic,
			ReturnPath: f.path,
			Timeout:    f.timeout,
		}},
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildQueries turns validated runs into batch queries, loading each grid once.
func buildQueries(cfg *config.Config, load func(string) (*grid.Grid, error)) ([]batch.Query, error) {
	queries := make([]batch.Query, 0, len(cfg.Runs))
	for _, r := range cfg.Runs {
		g, err := load(r.Grid)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", r.Name, err)
		}
		policy, err := r.Policy.Resolve()
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", r.Name, err)
		}
		timeout, err := r.TimeoutDuration()
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", r.Name, err)
		}

		q := batch.Query{Name: r.Name, Grid: g, Policy: policy, Timeout: timeout}
		if r.Start != nil {
			q.Start = r.Start.Position()
		}
		target := g.BottomRight()
		if r.Goal != nil {
			target = r.Goal.Position()
		}
		if !g.InBounds(target) {
			return nil, fmt.Errorf("run %q: %w: %v not in %dx%d grid",
				r.Name, errGoalOutOfGrid, target, g.Height(), g.Width())
		}
		q.Goal = search.At(target)
		if r.Heuristic {
			q.Options = append(q.Options, search.WithManhattan(g, target))
		}
		if r.ReturnPath {
			q.Options = append(q.Options, search.WithReturnPath())
		}
		if r.MaxExpansions > 0 {
			q.Options = append(q.Options, search.WithMaxExpansions(r.MaxExpansions))
		}
		queries = append(queries, q)
	}

	return queries, nil
}
