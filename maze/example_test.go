// SPDX-License-Identifier: MIT
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleMaze_Connect opens a passage and inspects it from both sides.
func ExampleMaze_Connect() {
	m, _ := maze.New(2, 1)
	m.Connect(0, 0, maze.Left)

	fmt.Println(m.HasConnection(0, 0, maze.Left), m.HasConnection(1, 0, maze.Right))
	fmt.Println(m)
	// Output:
	// true true
	// {((0, 0), [LEFT]), ((1, 0), [RIGHT])}
}
