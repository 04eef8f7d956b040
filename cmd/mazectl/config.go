// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every knob of a mazectl run.
type Config struct {
	Width, Height   int     // grid size
	Seed            int64   // builder seed
	Builder         string  // dfs, bfs or eller
	Percent         int     // imperfection percent; 0 keeps the maze perfect
	Solver          string  // dijkstra, manhattan, euclidean or tremaux
	StartX, StartY  int     // solver start and builder seed cell
	EndX, EndY      int     // solver end; -1 means the far corner
	DistanceFactor  float64 // A* g weight
	HeuristicFactor float64 // A* h weight
	Format          string  // ascii, formatted or adjacency
	Interactive     bool    // step through in a terminal UI
	LogLevel        string  // logrus level name
}

var (
	builders = []string{"dfs", "bfs", "eller"}
	solvers  = []string{"dijkstra", "manhattan", "euclidean", "tremaux"}
	formats  = []string{"ascii", "formatted", "adjacency"}

	errBadConfig = errors.New("mazectl: invalid configuration")
)

// loadDotEnv reads a .env file when present. A missing file is not an error.
func loadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}
}

// envDefaults builds the defaults flags start from, read through getenv.
func envDefaults(getenv func(string) string) (Config, error) {
	var errs []error
	str := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	num := func(key string, def int) int {
		v := str(key, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			return def
		}
		return n
	}
	float := func(key string, def float64) float64 {
		v := str(key, "")
		if v == "" {
			return def
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			return def
		}
		return f
	}
	boolean := func(key string, def bool) bool {
		v := str(key, "")
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			return def
		}
		return b
	}

	cfg := Config{
		Width:           num("MAZE_WIDTH", 16),
		Height:          num("MAZE_HEIGHT", 10),
		Seed:            int64(num("MAZE_SEED", 42)),
		Builder:         str("MAZE_BUILDER", "dfs"),
		Percent:         num("MAZE_PERCENT", 0),
		Solver:          str("MAZE_SOLVER", "manhattan"),
		StartX:          num("MAZE_START_X", 0),
		StartY:          num("MAZE_START_Y", 0),
		EndX:            num("MAZE_END_X", -1),
		EndY:            num("MAZE_END_Y", -1),
		DistanceFactor:  float("MAZE_DISTANCE_FACTOR", 1),
		HeuristicFactor: float("MAZE_HEURISTIC_FACTOR", 1),
		Format:          str("MAZE_FORMAT", "ascii"),
		Interactive:     boolean("MAZE_INTERACTIVE", false),
		LogLevel:        str("MAZE_LOG_LEVEL", "info"),
	}
	if len(errs) > 0 {
		return cfg, fmt.Errorf("%w: %w", errBadConfig, errors.Join(errs...))
	}
	return cfg, nil
}

// parseConfig resolves env defaults and then command-line flags.
func parseConfig(args []string, getenv func(string) string) (Config, error) {
	cfg, err := envDefaults(getenv)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("mazectl", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "maze width (MAZE_WIDTH)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "maze height (MAZE_HEIGHT)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "builder seed (MAZE_SEED)")
	fs.StringVar(&cfg.Builder, "builder", cfg.Builder, "dfs | bfs | eller (MAZE_BUILDER)")
	fs.IntVar(&cfg.Percent, "percent", cfg.Percent, "imperfection percent 0..100 (MAZE_PERCENT)")
	fs.StringVar(&cfg.Solver, "solver", cfg.Solver, "dijkstra | manhattan | euclidean | tremaux (MAZE_SOLVER)")
	fs.IntVar(&cfg.StartX, "start-x", cfg.StartX, "start column (MAZE_START_X)")
	fs.IntVar(&cfg.StartY, "start-y", cfg.StartY, "start row (MAZE_START_Y)")
	fs.IntVar(&cfg.EndX, "end-x", cfg.EndX, "end column, -1 for the far corner (MAZE_END_X)")
	fs.IntVar(&cfg.EndY, "end-y", cfg.EndY, "end row, -1 for the far corner (MAZE_END_Y)")
	fs.Float64Var(&cfg.DistanceFactor, "distance-factor", cfg.DistanceFactor, "A* distance weight (MAZE_DISTANCE_FACTOR)")
	fs.Float64Var(&cfg.HeuristicFactor, "heuristic-factor", cfg.HeuristicFactor, "A* heuristic weight (MAZE_HEURISTIC_FACTOR)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "ascii | formatted | adjacency (MAZE_FORMAT)")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "step through in the terminal (MAZE_INTERACTIVE)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level (MAZE_LOG_LEVEL)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.EndX < 0 {
		cfg.EndX = cfg.Width - 1
	}
	if cfg.EndY < 0 {
		cfg.EndY = cfg.Height - 1
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	oneOf := func(name, v string, allowed []string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("%w: %s=%q, want one of %s", errBadConfig, name, v, strings.Join(allowed, ", "))
	}
	if err := oneOf("builder", c.Builder, builders); err != nil {
		return err
	}
	if err := oneOf("solver", c.Solver, solvers); err != nil {
		return err
	}
	if err := oneOf("format", c.Format, formats); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", errBadConfig, err)
	}
	return nil
}

// getenv is swapped in tests.
var getenv = os.Getenv
