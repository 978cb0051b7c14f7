// Package game wires levels, simulation systems and the phase machine together.
package game

import (
	"fmt"
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/ai"
	"github.com/1siamBot/mazecaster/engine/config"
	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/maze"
	"github.com/1siamBot/mazecaster/engine/systems"
)

const (
	minCellSize  = 6
	startMessage = "Find the key and reach the exit"
)

// BuildMaze generates (or loads) the maze for a run and prepares it for play
func BuildMaze(cfg config.Config, rng *rand.Rand) (*maze.Grid, maze.Level, error) {
	var g *maze.Grid
	if cfg.Maze.File != "" {
		loaded, err := maze.Load(cfg.Maze.File)
		if err != nil {
			return nil, maze.Level{}, err
		}
		g = loaded
	} else {
		g = maze.Generate(cfg.Maze.Width, cfg.Maze.Height, rng)
	}
	g = maze.Expand(g, cfg.Maze.Expand)
	lv := maze.PrepareLevel(g)
	return g, lv, nil
}

// CellSize picks the world size of a cell so the maze fits the window
func CellSize(cfg config.Config, g *maze.Grid) float64 {
	w := float64(cfg.Window.Width) / float64(g.Width)
	h := float64(cfg.Window.Height) / float64(g.Height)
	return math.Max(minCellSize, math.Floor(math.Min(w, h)))
}

// BuildLevel creates a fully populated world for a new run
func BuildLevel(cfg config.Config, rng *rand.Rand, l *log.Entry) (*core.World, error) {
	g, lv, err := BuildMaze(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build maze: %w", err)
	}
	cell := CellSize(cfg, g)
	w := core.NewWorld(g, cell, lv.Spawn, lv.Goal, cfg.Player.FOV())

	for _, spawn := range enemySpawns(g) {
		w.Enemies = append(w.Enemies, core.NewEnemy(cfg.Enemies.Kind, spawn, cell, cfg.Enemies.Speed))
	}

	p := newPlacer(g, rng, cfg.Pickups.Attempts, lv.Spawn)
	place := func(kind core.PickupKind) {
		c, random, ok := p.place()
		if !ok {
			l.WithField("kind", kind).Warn("no free cell left for pickup")
			return
		}
		if !random {
			l.WithFields(log.Fields{"kind": kind, "cell": c}).Debug("pickup placed by fallback scan")
		}
		w.Pickups = append(w.Pickups, &core.Pickup{Kind: kind, Cell: c})
	}
	for i := 0; i < cfg.Pickups.Medkits; i++ {
		place(core.PickupMedkit)
	}
	place(core.PickupKey)
	place(core.PickupBinoculars)

	w.Fog.Reveal(lv.Spawn.X, lv.Spawn.Y, cfg.Player.FogRadius)
	w.Message = core.Message{Text: startMessage, TTL: 4}
	installSystems(w, cfg)

	l.WithFields(log.Fields{
		"cols":      g.Width,
		"rows":      g.Height,
		"cell":      cell,
		"spawn":     lv.Spawn,
		"goal":      lv.Goal,
		"relocated": lv.Relocated,
		"enemies":   len(w.Enemies),
		"pickups":   len(w.Pickups),
	}).Info("level ready")
	return w, nil
}

func installSystems(w *core.World, cfg config.Config) {
	mt := systems.DefaultMovementTuning()
	mt.Speed = cfg.Player.Speed
	mt.RunMultiplier = cfg.Player.RunMultiplier
	mt.RotationSpeed = cfg.Player.RotationSpeed
	mt.StaminaDrain = cfg.Player.StaminaDrain

	at := ai.DefaultTuning()
	at.RepathInterval = cfg.Enemies.RepathInterval
	at.AttackCooldown = cfg.Enemies.AttackCooldown
	at.Damage = cfg.Enemies.Damage

	w.AddSystem(systems.NewMovementSystem(mt))
	w.AddSystem(&systems.VitalsSystem{StaminaRegen: cfg.Player.StaminaRegen})
	w.AddSystem(&systems.FogSystem{Radius: cfg.Player.FogRadius})
	w.AddSystem(ai.NewAISystem(at))
	w.AddSystem(&systems.PickupSystem{MedkitAmount: cfg.Pickups.MedkitAmount, BinocularSeconds: cfg.Pickups.BinocularSeconds})
	w.AddSystem(&systems.RulesSystem{})
}

// enemySpawns returns the two chaser spawns: the first open cell scanning
// from the top-right, and the first scanning from the bottom-left.
func enemySpawns(g *maze.Grid) []maze.Cell {
	var out []maze.Cell
	if c, ok := scanOpen(g, false); ok {
		out = append(out, c)
	}
	if c, ok := scanOpen(g, true); ok {
		out = append(out, c)
	}
	return out
}

// scanOpen searches interior cells only; the outer ring is never a spawn
func scanOpen(g *maze.Grid, fromBottom bool) (maze.Cell, bool) {
	for i := 1; i < g.Height-1; i++ {
		y := i
		if fromBottom {
			y = g.Height - 1 - i
		}
		for j := 1; j < g.Width-1; j++ {
			x := g.Width - 1 - j
			if fromBottom {
				x = j
			}
			if g.At(x, y) == maze.Open {
				return maze.Cell{X: x, Y: y}, true
			}
		}
	}
	return maze.Cell{}, false
}

// placer hands out distinct open cells for pickups: random attempts first,
// then a deterministic scan from the centre of the grid
type placer struct {
	g        *maze.Grid
	rng      *rand.Rand
	attempts int
	used     map[maze.Cell]bool
}

func newPlacer(g *maze.Grid, rng *rand.Rand, attempts int, reserved ...maze.Cell) *placer {
	p := &placer{g: g, rng: rng, attempts: attempts, used: make(map[maze.Cell]bool)}
	for _, c := range reserved {
		p.used[c] = true
	}
	return p
}

func (p *placer) free(c maze.Cell) bool {
	return p.g.At(c.X, c.Y) == maze.Open && p.g.InBounds(c.X, c.Y) && !p.used[c]
}

func (p *placer) place() (c maze.Cell, random, ok bool) {
	for i := 0; i < p.attempts; i++ {
		c = maze.Cell{X: p.rng.Intn(p.g.Width), Y: p.rng.Intn(p.g.Height)}
		if p.free(c) {
			p.used[c] = true
			return c, true, true
		}
	}
	n := len(p.g.Cells)
	start := (p.g.Height/2)*p.g.Width + p.g.Width/2
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		c = maze.Cell{X: idx % p.g.Width, Y: idx / p.g.Width}
		if p.free(c) {
			p.used[c] = true
			return c, false, true
		}
	}
	return maze.Cell{}, false, false
}
