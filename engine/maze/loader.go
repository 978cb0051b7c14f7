package maze

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrEmpty          = errors.New("maze has no rows")
	ErrNotRectangular = errors.New("maze rows differ in length")
	ErrBadSymbol      = errors.New("unknown maze symbol")
)

// Parse reads the text format: one row per line, one symbol per byte.
// Trailing carriage returns and trailing blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return parseRows(rows)
}

// Load reads and validates a maze text file
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file %s: %w", path, err)
	}
	g, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid maze in %s: %w", path, err)
	}
	return g, nil
}

// WriteTo writes the grid in the text format
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// Save writes the grid to path
func (g *Grid) Save(path string) error {
	if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
		return fmt.Errorf("failed to write maze file %s: %w", path, err)
	}
	return nil
}

func parseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	g := &Grid{Width: width, Height: len(rows), Cells: make([]Symbol, 0, width*len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: expected %d symbols, got %d: %w", y, width, len(row), ErrNotRectangular)
		}
		for x := 0; x < len(row); x++ {
			s := Symbol(row[x])
			if !known(s) {
				return nil, fmt.Errorf("row %d col %d: %q: %w", y, x, row[x], ErrBadSymbol)
			}
			g.Cells = append(g.Cells, s)
		}
	}
	return g, nil
}

func known(s Symbol) bool {
	switch s {
	case Open, Corner, HWall, VWall, Spawn, Goal, Door:
		return true
	}
	return false
}
