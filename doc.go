// Package lvmaze is a step-driven maze engine: grid mazes are carved and
// searched one observable step at a time, so a caller can draw, pause,
// snapshot or resume between any two steps.
//
// What is inside?
//
//	maze/     Maze, Cell, Direction, AdjacencyList, snapshots
//	builder/  DFS, BFS, Eller and Imperfect (wall-toggling) carvers
//	solver/   weighted A* (Dijkstra, Manhattan, Euclidean) and Tremaux
//	analysis/ distances, components, cycle and perfection checks
//	render/   ASCII and id-grid text output, tcell painter
//	cmd/mazectl  build, solve and print, or step interactively
//
// Every builder and solver exposes the same driving surface:
//
//	Step() bool                 one unit of work; false once finished
//	Run()                       step to completion
//	IsFinished() bool           monotonic
//	Steps() iter.Seq[bool]      range-over-func driving
//
// Quick start:
//
//	m, _ := maze.New(20, 12)
//	b, _ := builder.NewDFS(m, 0, 0, 42)
//	b.Run()
//	m.ResetColors()
//	start, _ := m.Cell(0, 0)
//	end, _ := m.Cell(19, 11)
//	s, _ := solver.NewDijkstra(m, start, end)
//	if s.Run() {
//		fmt.Println(s.Path())
//	}
//
// Randomness is seeded per builder; the same seed, size and start always
// produce the same maze. Nothing in the library logs or reads the
// environment; mazectl owns configuration and logging.
//
// Concurrency: a Maze and the machines bound to it are single-goroutine
// values. Independent mazes may be used from different goroutines.
package lvmaze
