// SPDX-License-Identifier: MIT

// Command mazectl builds a maze, solves it and prints the result, or steps
// through both phases in an interactive terminal view.
//
// Defaults come from the environment (optionally a .env file); flags win:
//
//	MAZE_WIDTH=30 MAZE_BUILDER=eller mazectl -solver tremaux
//	mazectl -width 20 -height 12 -percent 30 -interactive
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	loadDotEnv()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.WithError(err).Error("mazectl failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := parseConfig(args, getenv)
	if err != nil {
		return err
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	sess, err := NewSession(cfg)
	if err != nil {
		return err
	}
	if cfg.Interactive {
		return runInteractive(sess)
	}

	if err := sess.Run(); err != nil {
		return err
	}
	fmt.Fprint(out, sess.Render())
	log.WithFields(sess.Fields()).Info("done")
	return nil
}
