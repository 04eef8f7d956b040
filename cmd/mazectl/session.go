// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/analysis"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/solver"
)

// Phase is where a Session stands.
type Phase int

const (
	PhaseBuild Phase = iota // builder still carving
	PhaseSolve              // solver searching the finished maze
	PhaseDone               // both machines finished, or setup failed
)

// String returns the lower-case phase name used in logs and the status line.
func (p Phase) String() string {
	switch p {
	case PhaseBuild:
		return "build"
	case PhaseSolve:
		return "solve"
	default:
		return "done"
	}
}

// Session chains a builder and a solver over one maze: it builds to
// completion, clears the statuses, then solves. Step advances whichever
// machine is active, so a UI can interleave drawing with either phase.
type Session struct {
	id         uuid.UUID
	cfg        Config
	m          *maze.Maze
	b          builder.Builder
	s          solver.Solver
	phase      Phase
	buildSteps int
	solveSteps int
}

// NewSession creates the maze and the configured builder.
func NewSession(cfg Config) (*Session, error) {
	m, err := maze.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	b, err := newBuilder(cfg, m)
	if err != nil {
		return nil, err
	}
	return &Session{id: uuid.New(), cfg: cfg, m: m, b: b}, nil
}

func newBuilder(cfg Config, m *maze.Maze) (builder.Builder, error) {
	var (
		b   builder.Builder
		err error
	)
	switch cfg.Builder {
	case "dfs":
		b, err = builder.NewDFS(m, cfg.StartX, cfg.StartY, cfg.Seed)
	case "bfs":
		b, err = builder.NewBFS(m, cfg.StartX, cfg.StartY, cfg.Seed)
	case "eller":
		b, err = builder.NewEller(m, cfg.StartX, cfg.StartY, cfg.Seed)
	default:
		return nil, fmt.Errorf("%w: builder=%q", errBadConfig, cfg.Builder)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Percent == 0 {
		return b, nil
	}
	return builder.NewImperfect(b, cfg.Seed, cfg.Percent)
}

func newSolver(cfg Config, m *maze.Maze) (solver.Solver, error) {
	start, ok := m.Cell(cfg.StartX, cfg.StartY)
	if !ok {
		return nil, fmt.Errorf("%w: start (%d,%d) outside %dx%d", errBadConfig, cfg.StartX, cfg.StartY, m.Width(), m.Height())
	}
	end, ok := m.Cell(cfg.EndX, cfg.EndY)
	if !ok {
		return nil, fmt.Errorf("%w: end (%d,%d) outside %dx%d", errBadConfig, cfg.EndX, cfg.EndY, m.Width(), m.Height())
	}
	switch cfg.Solver {
	case "dijkstra":
		return solver.NewDijkstra(m, start, end)
	case "manhattan":
		return solver.NewManhattan(m, start, end, cfg.DistanceFactor, cfg.HeuristicFactor)
	case "euclidean":
		return solver.NewEuclidean(m, start, end, cfg.DistanceFactor, cfg.HeuristicFactor)
	case "tremaux":
		return solver.NewTremaux(m, start, end)
	default:
		return nil, fmt.Errorf("%w: solver=%q", errBadConfig, cfg.Solver)
	}
}

// ID tags the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Maze returns the session maze.
func (s *Session) Maze() *maze.Maze { return s.m }

// Phase returns the active phase.
func (s *Session) Phase() Phase { return s.phase }

// Solver returns the solver once the solve phase has begun, or nil.
func (s *Session) Solver() solver.Solver { return s.s }

// Step advances the active machine by one step. The build→solve handover
// counts as a step. It returns false once both machines are finished, and
// an error only if the solver cannot be constructed.
func (s *Session) Step() (bool, error) {
	switch s.phase {
	case PhaseBuild:
		if s.b.Step() {
			s.buildSteps++
			return true, nil
		}
		s.m.ResetColors()
		sv, err := newSolver(s.cfg, s.m)
		if err != nil {
			s.phase = PhaseDone
			return false, err
		}
		s.s, s.phase = sv, PhaseSolve
		log.WithFields(logrus.Fields{
			"builder": s.cfg.Builder,
			"steps":   s.buildSteps,
			"edges":   analysis.UniqueEdges(s.m),
		}).Debug("maze built")
		return true, nil
	case PhaseSolve:
		if s.s.Step() {
			s.solveSteps++
			return true, nil
		}
		s.phase = PhaseDone
		log.WithFields(s.Fields()).Debug("search finished")
		return false, nil
	default:
		return false, nil
	}
}

// Run steps until both phases are done.
func (s *Session) Run() error {
	for {
		more, err := s.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Fields summarises the session for structured logs.
func (s *Session) Fields() logrus.Fields {
	f := logrus.Fields{
		"session":     s.id.String(),
		"size":        fmt.Sprintf("%dx%d", s.m.Width(), s.m.Height()),
		"builder":     s.cfg.Builder,
		"percent":     s.cfg.Percent,
		"seed":        s.cfg.Seed,
		"phase":       s.phase.String(),
		"build_steps": s.buildSteps,
		"solve_steps": s.solveSteps,
	}
	if s.s != nil {
		f["solver"] = s.cfg.Solver
		f["solved"] = s.s.Solved()
		f["path_len"] = len(s.s.Path())
	}
	return f
}

// Render draws the maze in the configured text format.
func (s *Session) Render() string {
	switch s.cfg.Format {
	case "formatted":
		return render.Formatted(s.m)
	case "adjacency":
		return s.m.String() + "\n"
	default:
		return render.ASCII(s.m)
	}
}
