package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/mazecaster/engine/core"
)

// MenuLabels are the title menu entries in selection order
var MenuLabels = [core.MenuEntries]string{"Play", "Sound", "Exit"}

// Screens draws every phase that is not the 3D view
type Screens struct {
	W, H  int
	Title string
	Tick  float64
	fonts *Fonts
}

func NewScreens(w, h int, title string, fonts *Fonts) *Screens {
	return &Screens{W: w, H: h, Title: title, fonts: fonts}
}

// Update advances the background animation
func (s *Screens) Update(dt float64) {
	s.Tick += dt
}

// Draw renders st. It reports false for phases it does not own.
func (s *Screens) Draw(screen *ebiten.Image, st core.State) bool {
	switch st := st.(type) {
	case core.MenuState:
		s.drawMenu(screen, st)
	case core.SoundMenuState:
		s.drawSoundMenu(screen, st)
	case core.VictoryState:
		s.drawResult(screen, "YOU ESCAPED", menuGreen)
	case core.GameOverState:
		s.drawResult(screen, "GAME OVER", menuRed)
	default:
		return false
	}
	return true
}

func (s *Screens) drawMenu(screen *ebiten.Image, st core.MenuState) {
	screen.Fill(menuBG)
	s.drawAnimatedBG(screen)
	s.drawTitle(screen)

	cx := float32(s.W) / 2
	btnW, btnH := float32(280), float32(56)
	for i, label := range MenuLabels {
		y := float32(s.H)/2 + float32(i)*(btnH+18) - btnH
		clr, txt := menuBtnNorm, menuTextDim
		if i == st.Selected {
			clr, txt = menuBtnHov, menuText
		}
		drawRoundedRect(screen, cx-btnW/2, y, btnW, btnH, 6, clr)
		if i == st.Selected {
			vector.StrokeRect(screen, cx-btnW/2, y, btnW, btnH, 2, menuAccent, false)
		}
		drawText(screen, label, s.fonts.Body, float64(cx), float64(y)+12, txt, text.AlignCenter)
	}
	drawText(screen, "arrows to choose, enter to confirm", s.fonts.Small, 10, float64(s.H)-24, menuTextDim, text.AlignStart)
}

func (s *Screens) drawSoundMenu(screen *ebiten.Image, st core.SoundMenuState) {
	screen.Fill(menuBG)
	s.drawAnimatedBG(screen)
	s.drawTitle(screen)

	cx, cy := float32(s.W)/2, float32(s.H)/2
	panelW, panelH := float32(520), float32(200)
	drawRoundedRect(screen, cx-panelW/2, cy-panelH/2, panelW, panelH, 12, menuPanel)
	vector.StrokeRect(screen, cx-panelW/2, cy-panelH/2, panelW, panelH, 1, menuBorder, false)

	drawText(screen, "Music volume", s.fonts.Body, float64(cx), float64(cy-panelH/2)+20, menuText, text.AlignCenter)

	trackW := float32(360)
	tx, ty := cx-trackW/2, cy
	drawRoundedRect(screen, tx, ty-2, trackW, 4, 2, color.RGBA{30, 35, 50, 240})
	fill := float32(BarFill(st.Volume, float64(trackW)))
	if fill > 0 {
		drawRoundedRect(screen, tx, ty-2, fill, 4, 2, menuAccent)
	}
	vector.DrawFilledCircle(screen, tx+fill, ty, 10, menuAccent, true)
	vector.StrokeCircle(screen, tx+fill, ty, 10, 1.5, color.RGBA{255, 255, 255, 100}, true)

	drawText(screen, VolumePercent(st.Volume), s.fonts.Body, float64(cx), float64(cy)+24, menuGold, text.AlignCenter)
	drawText(screen, "left/right to adjust, enter to go back", s.fonts.Small, 10, float64(s.H)-24, menuTextDim, text.AlignStart)
}

func (s *Screens) drawResult(screen *ebiten.Image, title string, clr color.RGBA) {
	screen.Fill(menuBG)
	s.drawAnimatedBG(screen)

	cx, cy := float32(s.W)/2, float32(s.H)/2
	panelW, panelH := float32(480), float32(220)
	drawRoundedRect(screen, cx-panelW/2, cy-panelH/2, panelW, panelH, 12, menuPanel)
	vector.StrokeRect(screen, cx-panelW/2, cy-panelH/2, panelW, panelH, 1, menuBorder, false)

	drawText(screen, title, s.fonts.Title, float64(cx), float64(cy-panelH/2)+30, clr, text.AlignCenter)
	vector.DrawFilledRect(screen, cx-90, cy+10, 180, 3, clr, false)
	drawText(screen, "press enter for the menu", s.fonts.Body, float64(cx), float64(cy)+40, menuText, text.AlignCenter)
}

func (s *Screens) drawTitle(screen *ebiten.Image) {
	cx := float32(s.W) / 2
	pulse := 0.7 + 0.3*math.Sin(s.Tick*2)
	drawRoundedRect(screen, cx-260, 60, 520, 90, 8, color.RGBA{0, 100, 180, uint8(40 * pulse)})
	drawText(screen, s.Title, s.fonts.Title, float64(cx), 72, menuText, text.AlignCenter)
	vector.DrawFilledRect(screen, cx-120, 150, 240, 2, menuAccent, false)
}

// drawAnimatedBG scrolls a faint grid with drifting particles
func (s *Screens) drawAnimatedBG(screen *ebiten.Image) {
	t := s.Tick
	grid := color.RGBA{0, 80, 120, 15}
	for i := 0; i < 20; i++ {
		x := float32(math.Mod(float64(i)*70+t*20, float64(s.W)))
		vector.StrokeLine(screen, x, 0, x, float32(s.H), 1, grid, false)
	}
	for i := 0; i < 12; i++ {
		y := float32(math.Mod(float64(i)*65+t*15, float64(s.H)))
		vector.StrokeLine(screen, 0, y, float32(s.W), y, 1, grid, false)
	}
	for i := 0; i < 30; i++ {
		px := float32(math.Mod(float64(i)*43.7+t*10+float64(i*i)*0.3, float64(s.W)))
		py := float32(math.Mod(float64(i)*67.3+t*5+float64(i)*1.7, float64(s.H)))
		alpha := uint8(20 + 20*math.Sin(t*2+float64(i)))
		vector.DrawFilledCircle(screen, px, py, 1.5, color.RGBA{0, 180, 255, alpha}, false)
	}
}

// VolumePercent formats a [0,1] volume as a whole percentage
func VolumePercent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}
