// Command mazegen writes generated mazes in the text format the game loads
// and checks hand-authored ones.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/logger"
	"github.com/1siamBot/mazecaster/engine/maze"
)

type options struct {
	width, height int
	seed          int64
	expand        int
	prepare       bool
	out           string
	check         string
}

func main() {
	var o options
	flag.IntVar(&o.width, "w", 12, "maze width in cells")
	flag.IntVar(&o.height, "h", 10, "maze height in cells")
	flag.Int64Var(&o.seed, "seed", 0, "random seed; 0 picks one from the clock")
	flag.IntVar(&o.expand, "expand", 1, "scale factor applied after carving")
	flag.BoolVar(&o.prepare, "prepare", false, "relocate the spawn and place the goal doors")
	flag.StringVar(&o.out, "o", "", "output file; stdout when empty")
	flag.StringVar(&o.check, "check", "", "validate a maze file instead of generating")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	l, err := logger.New(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	entry := logger.Component(l, "mazegen")

	if o.check != "" {
		err = check(o.check, entry)
	} else {
		err = generate(o, os.Stdout, entry)
	}
	if err != nil {
		entry.WithError(err).Error("failed")
		os.Exit(1)
	}
}

func generate(o options, stdout io.Writer, l *log.Entry) error {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := maze.Expand(maze.Generate(o.width, o.height, rand.New(rand.NewSource(seed))), o.expand)
	fields := log.Fields{"seed": seed, "cols": g.Width, "rows": g.Height}
	if o.prepare {
		lv := maze.PrepareLevel(g)
		// keep the spawn marker so the file loads back to the same level
		g.Set(lv.Spawn.X, lv.Spawn.Y, maze.Spawn)
		fields["spawn"] = lv.Spawn
		fields["goal"] = lv.Goal
	}

	if o.out == "" {
		if _, err := g.WriteTo(stdout); err != nil {
			return fmt.Errorf("failed to write maze: %w", err)
		}
	} else if err := g.Save(o.out); err != nil {
		return err
	}
	l.WithFields(fields).Info("maze generated")
	return nil
}

func check(path string, l *log.Entry) error {
	g, err := maze.Load(path)
	if err != nil {
		return err
	}
	reach := maze.Reachable(g)
	open := 0
	for _, r := range reach {
		if r {
			open++
		}
	}
	lv := maze.PrepareLevel(g.Clone())
	l.WithFields(log.Fields{
		"file":      path,
		"cols":      g.Width,
		"rows":      g.Height,
		"reachable": open,
		"spawn":     lv.Spawn,
		"relocated": lv.Relocated,
		"goal":      lv.Goal,
	}).Info("maze ok")
	if open == 0 {
		l.Warn("no cell is reachable from the border; the spawn will not move")
	}
	return nil
}
