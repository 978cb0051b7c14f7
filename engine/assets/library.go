package assets

import (
	"fmt"
	"image/color"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/maze"
)

var grey = color.RGBA{128, 128, 128, 255}

// Library maps maze symbols and sprite keys to textures
type Library struct {
	walls   map[maze.Symbol]*Texture
	sprites map[string]*Texture
}

func NewLibrary() *Library {
	return &Library{
		walls:   make(map[maze.Symbol]*Texture),
		sprites: make(map[string]*Texture),
	}
}

// SetWall binds a texture to every listed symbol
func (l *Library) SetWall(t *Texture, syms ...maze.Symbol) {
	for _, s := range syms {
		l.walls[s] = t
	}
}

func (l *Library) SetSprite(key string, t *Texture) {
	l.sprites[key] = t
}

// Sample returns the wall texel for sym, or grey when sym has no texture
func (l *Library) Sample(sym maze.Symbol, u, v float64) color.RGBA {
	if t := l.walls[sym]; t != nil {
		return t.Sample(u, v)
	}
	return grey
}

// Dimensions reports 1x1 for symbols without a texture
func (l *Library) Dimensions(sym maze.Symbol) (int, int) {
	if t := l.walls[sym]; t != nil {
		return t.W, t.H
	}
	return 1, 1
}

func (l *Library) SampleSprite(key string, u, v float64) color.RGBA {
	if t := l.sprites[key]; t != nil {
		return t.Sample(u, v)
	}
	return grey
}

func (l *Library) SpriteDimensions(key string) (int, int) {
	if t := l.sprites[key]; t != nil {
		return t.W, t.H
	}
	return 1, 1
}

// Texture file names inside an asset directory
const (
	FileWall       = "wall.png"
	FileGoal       = "goal.png"
	FileDoor       = "door.png"
	FileMedkit     = "medkit.png"
	FileKey        = "key.png"
	FileBinoculars = "binoculars.png"
)

// LoadDir loads every texture the game needs from dir. Each enemy kind
// needs a <kind>.png. A missing or undecodable file is an error.
func LoadDir(dir string, enemyKinds []string, l *log.Entry) (*Library, error) {
	lib := NewLibrary()
	load := func(name string) (*Texture, error) {
		t, err := LoadPNG(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		l.WithFields(log.Fields{"file": name, "w": t.W, "h": t.H}).Debug("texture loaded")
		return t, nil
	}

	wall, err := load(FileWall)
	if err != nil {
		return nil, err
	}
	lib.SetWall(wall, maze.Corner, maze.HWall, maze.VWall, maze.Spawn)

	goal, err := load(FileGoal)
	if err != nil {
		return nil, err
	}
	lib.SetWall(goal, maze.Goal)

	door, err := load(FileDoor)
	if err != nil {
		return nil, err
	}
	lib.SetWall(door, maze.Door)
	lib.SetSprite("door", door)

	sprites := map[string]string{"medkit": FileMedkit, "key": FileKey, "binoculars": FileBinoculars}
	for _, kind := range enemyKinds {
		sprites[kind] = kind + ".png"
	}
	for key, name := range sprites {
		t, err := load(name)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", key, err)
		}
		lib.SetSprite(key, t)
	}
	return lib, nil
}

// Procedural builds the same library from the built-in generators
func Procedural(enemyKinds []string) *Library {
	imgs := ProceduralImages()
	tex := func(name string) *Texture { return FromImage(imgs[name], MaxTextureSize) }

	lib := NewLibrary()
	lib.SetWall(tex(FileWall), maze.Corner, maze.HWall, maze.VWall, maze.Spawn)
	lib.SetWall(tex(FileGoal), maze.Goal)
	door := tex(FileDoor)
	lib.SetWall(door, maze.Door)
	lib.SetSprite("door", door)
	lib.SetSprite("medkit", tex(FileMedkit))
	lib.SetSprite("key", tex(FileKey))
	lib.SetSprite("binoculars", tex(FileBinoculars))
	enemy := tex(FileMimic)
	for _, kind := range enemyKinds {
		lib.SetSprite(kind, enemy)
	}
	return lib
}
