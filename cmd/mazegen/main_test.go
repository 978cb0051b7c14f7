package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/maze"
)

func quiet() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

func TestGenerateToStdout(t *testing.T) {
	var buf bytes.Buffer
	err := generate(options{width: 4, height: 3, seed: 7, expand: 1}, &buf, quiet())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := maze.Parse(&buf)
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if g.Width != 9 || g.Height != 7 {
		t.Errorf("expected 9x7, got %dx%d", g.Width, g.Height)
	}
}

func TestGeneratePreparedFileThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	err := generate(options{width: 5, height: 5, seed: 3, expand: 2, prepare: true, out: path}, nil, quiet())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	g, err := maze.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Count(maze.Goal) != 1 {
		t.Errorf("prepared maze should hold one goal, got %d", g.Count(maze.Goal))
	}
	if g.Count(maze.Door) == 0 {
		t.Error("prepared maze should hold doors")
	}
	if err := check(path, quiet()); err != nil {
		t.Errorf("check: %v", err)
	}
}

func TestCheckRejectsBadFile(t *testing.T) {
	if err := check(filepath.Join(t.TempDir(), "missing.txt"), quiet()); err == nil {
		t.Error("expected error for missing file")
	}
}
