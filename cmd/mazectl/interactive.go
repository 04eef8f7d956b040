// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/render"
)

const helpLine = "space/enter: step   r: run   q/esc: quit"

// runInteractive opens the terminal and hands it to the event loop.
func runInteractive(sess *Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("mazectl: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("mazectl: init screen: %w", err)
	}
	defer screen.Fini()

	// logrus would scribble over the screen.
	out := log.Out
	log.SetOutput(io.Discard)
	defer log.SetOutput(out)

	err = loop(screen, sess)
	log.WithFields(sess.Fields()).Info("interactive session closed")
	return err
}

// loop redraws after every key event. Progress only happens on keys; there
// are no timers.
func loop(screen tcell.Screen, sess *Session) error {
	painter := render.NewPainter()
	painter.Y = 2
	var stepErr error

	draw := func() {
		screen.Clear()
		drawText(screen, 0, 0, tcell.StyleDefault, status(sess, stepErr))
		drawText(screen, 0, 1, tcell.StyleDefault.Foreground(tcell.ColorGray), helpLine)
		painter.Draw(screen, sess.Maze())
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' '):
				_, stepErr = sess.Step()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				stepErr = sess.Run()
			}
		}
		if stepErr != nil {
			log.WithError(stepErr).Warn("step failed")
		}
		draw()
	}
}

func status(sess *Session, err error) string {
	f := sess.Fields()
	line := fmt.Sprintf("%s  phase=%v  build=%v  solve=%v", f["size"], f["phase"], f["build_steps"], f["solve_steps"])
	if s := sess.Solver(); s != nil && s.IsFinished() {
		if s.Solved() {
			line += fmt.Sprintf("  path=%d", len(s.Path()))
		} else {
			line += "  unsolvable"
		}
	}
	if err != nil {
		line += "  error: " + err.Error()
	}
	return line
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
