package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/1siamBot/mazecaster/engine/assets"
	"github.com/1siamBot/mazecaster/engine/audio"
	"github.com/1siamBot/mazecaster/engine/config"
	"github.com/1siamBot/mazecaster/engine/core"
	"github.com/1siamBot/mazecaster/engine/game"
	"github.com/1siamBot/mazecaster/engine/input"
	"github.com/1siamBot/mazecaster/engine/logger"
	"github.com/1siamBot/mazecaster/engine/render"
	"github.com/1siamBot/mazecaster/engine/ui"
)

// Game adapts a session to ebiten.Game
type Game struct {
	cfg      config.Config
	session  *game.Session
	keys     *input.Keyboard
	renderer *render.Renderer
	fb       *render.Framebuffer
	frame    *ebiten.Image
	screens  *ui.Screens
	hud      *ui.HUD
	log      *log.Entry
}

func NewGame(cfg config.Config, l *log.Logger) (*Game, error) {
	entry := logger.Component(l, "main")
	kinds := []string{cfg.Enemies.Kind}

	var lib *assets.Library
	if cfg.Assets.Dir == "" {
		lib = assets.Procedural(kinds)
		entry.Info("using procedural textures")
	} else {
		var err error
		lib, err = assets.LoadDir(cfg.Assets.Dir, kinds, logger.Component(l, "assets"))
		if err != nil {
			return nil, err
		}
		entry.WithField("dir", cfg.Assets.Dir).Info("textures loaded")
	}

	mixer, err := audio.New(cfg.Audio.Dir, logger.Component(l, "audio"))
	if err != nil {
		return nil, err
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		return nil, err
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	r := render.NewRenderer(cfg.Window.RenderScale, lib, lib)
	r.Minimap = &render.Minimap{X: 10, Y: cfg.Window.HUDHeight + 10, W: 180, H: 140}

	g := &Game{
		cfg:      cfg,
		session:  game.NewSession(cfg, mixer, l),
		keys:     input.NewKeyboard(input.DefaultBindings()),
		renderer: r,
		fb:       render.NewFramebuffer(w, h),
		frame:    ebiten.NewImage(w, h),
		screens:  ui.NewScreens(w, h, cfg.Window.Title, fonts),
		hud:      ui.NewHUD(w, cfg.Window.HUDHeight, fonts),
		log:      entry,
	}
	g.hud.Subscribe(g.session.Events)
	return g, nil
}

func (g *Game) Update() error {
	dt := g.session.Loop.Measure()
	g.keys.Update()
	if err := g.session.Frame(g.keys, dt); err != nil {
		return err
	}
	g.screens.Update(dt)
	g.hud.Update(dt)
	if g.session.Done() {
		g.log.Info("exiting")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screens.Draw(screen, g.session.State) {
		return
	}
	if _, ok := g.session.State.(core.PlayingState); !ok || g.session.World == nil {
		return
	}
	if err := g.renderer.Render(g.fb, g.session.World); err != nil {
		g.log.WithError(err).Error("render failed")
		return
	}
	g.frame.WritePixels(g.fb.Pix())
	screen.DrawImage(g.frame, nil)
	g.hud.Draw(screen, g.session.World, ebiten.ActualFPS())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func run() error {
	cfgPath := flag.String("config", "", "YAML config file; defaults apply when empty")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	l, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	l.WithFields(log.Fields{"width": cfg.Window.Width, "height": cfg.Window.Height}).Info("starting")

	g, err := NewGame(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("mazecaster failed")
	}
}
