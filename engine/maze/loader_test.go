package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader("+-+\r\n|p|\n+-+\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("size %dx%d", g.Width, g.Height)
	}
	if g.At(1, 1) != Spawn {
		t.Errorf("At(1,1) = %q", g.At(1, 1))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"blank lines", "\n\n", ErrEmpty},
		{"ragged", "+-+\n|\n+-+\n", ErrNotRectangular},
		{"unknown", "+-+\n|x|\n+-+\n", ErrBadSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	g := FromRows(
		"+---+",
		"|p D|",
		"| +g|",
		"+---+",
	)
	if err := g.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.String() != g.String() {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", back, g)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := FromRows("  ", "  ")
	if g.At(-1, 0) != Corner || g.At(0, 2) != Corner {
		t.Error("out of bounds should read as a wall")
	}
	g.Set(5, 5, Door)
	if g.Count(Door) != 0 {
		t.Error("out of bounds Set should be ignored")
	}
}
