// Command gridrun finds the cheapest constrained route across digit grids.
//
// Usage:
//
//	gridrun -grid input.txt                      # crucible rules, top-left to bottom-right
//	gridrun -grid input.txt -preset ultra-crucible -heuristic -path
//	gridrun -grid input.txt -min 4 -max 10 -baseline
//	gridrun -config runs.yaml -v
//
// Exit status is 0 when every run found a route, 2 when at least one run had
// no route, and 1 on any other error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the parsed command line.
type flags struct {
	grid      string
	config    string
	preset    string
	minRun    int
	maxRun    int
	heuristic bool
	path      bool
	baseline  bool
	timeout   string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("gridrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.grid, "grid", "", "digit grid file")
	fs.StringVar(&f.config, "config", "", "YAML run configuration (overrides the per-run flags)")
	fs.StringVar(&f.preset, "preset", "", "policy preset: crucible, ultra-crucible or free")
	fs.IntVar(&f.minRun, "min", 0, "cells required before turning or stopping")
	fs.IntVar(&f.maxRun, "max", 0, "cells allowed before a turn is forced (0 = unbounded)")
	fs.BoolVar(&f.heuristic, "heuristic", false, "use A* ordering with a Manhattan estimate")
	fs.BoolVar(&f.path, "path", false, "draw the route over the grid")
	fs.BoolVar(&f.baseline, "baseline", false, "also print the unconstrained Dijkstra cost")
	fs.StringVar(&f.timeout, "timeout", "", "per-run time limit, e.g. 2s")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if f.grid == "" && f.config == "" {
		return flags{}, fmt.Errorf("one of -grid or -config is required")
	}

	return f, nil
}

func newLogger(stderr io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return log
}
