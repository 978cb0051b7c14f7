// Command genassets writes the built-in textures as PNG files, a starting
// point for a custom asset directory.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/1siamBot/mazecaster/engine/assets"
	"github.com/1siamBot/mazecaster/engine/logger"
)

func writeAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	imgs := assets.ProceduralImages()
	names := make([]string, 0, len(imgs))
	for name := range imgs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		err = png.Encode(f, imgs[name])
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", path, err)
		}
	}
	return names, nil
}

func main() {
	dir := flag.String("o", "assets", "output directory")
	flag.Parse()

	l, err := logger.New("info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	entry := logger.Component(l, "genassets")

	names, err := writeAll(*dir)
	if err != nil {
		entry.WithError(err).Error("failed")
		os.Exit(1)
	}
	entry.WithField("dir", *dir).WithField("files", names).Info("textures written")
}
