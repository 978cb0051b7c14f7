package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/1siamBot/mazecaster/engine/core"
)

const (
	flashPeak     = 0.55
	flashDuration = 0.45
	// messages fade out over their last second
	messageFade = 1.0
)

var (
	hudBG       = color.RGBA{0, 0, 0, 160}
	barBack     = color.RGBA{30, 30, 40, 220}
	staminaFill = color.RGBA{240, 200, 40, 255}
	healthFill  = color.RGBA{200, 30, 40, 255}
	shieldFill  = color.RGBA{60, 140, 240, 255}
)

// HUD draws the player's vitals across the top band of the screen and the
// red flash when they are hurt
type HUD struct {
	W, Height int
	fonts     *Fonts

	flash      *gween.Tween
	flashAlpha float32
}

func NewHUD(w, height int, fonts *Fonts) *HUD {
	return &HUD{W: w, Height: height, fonts: fonts}
}

// Subscribe starts a damage flash whenever the player is hurt
func (h *HUD) Subscribe(bus *core.EventBus) {
	bus.On(core.EvtPlayerHurt, func(core.Event) { h.Flash() })
}

func (h *HUD) Flash() {
	h.flash = gween.New(flashPeak, 0, flashDuration, ease.OutQuad)
	h.flashAlpha = flashPeak
}

// Update advances the flash tween
func (h *HUD) Update(dt float64) {
	if h.flash == nil {
		return
	}
	v, done := h.flash.Update(float32(dt))
	h.flashAlpha = v
	if done {
		h.flash = nil
		h.flashAlpha = 0
	}
}

// FlashAlpha is the current overlay opacity in [0,1]
func (h *HUD) FlashAlpha() float32 {
	return h.flashAlpha
}

func (h *HUD) Draw(screen *ebiten.Image, w *core.World, fps float64) {
	if h.flashAlpha > 0 {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{200, 0, 0, uint8(h.flashAlpha * 255)}, false)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(h.W), float32(h.Height), hudBG, false)
	p := w.Player

	// stamina centred at the top
	barW := float32(h.W) / 4
	cx := float32(h.W) / 2
	drawBar(screen, cx-barW/2, 8, barW, 12, p.Stamina/p.StaminaMax, staminaFill, barBack)
	drawText(screen, "stamina", h.fonts.Small, float64(cx), 24, menuTextDim, text.AlignCenter)

	// health and shield on the left
	drawText(screen, fmt.Sprintf("HP %d", int(math.Ceil(p.Health))), h.fonts.Small, 10, 6, menuText, text.AlignStart)
	drawBar(screen, 80, 8, 200, 12, p.Health/p.HealthMax, healthFill, barBack)
	if p.Shield > 0 {
		drawText(screen, fmt.Sprintf("SH %d", int(math.Ceil(p.Shield))), h.fonts.Small, 10, 28, menuText, text.AlignStart)
		drawBar(screen, 80, 30, 200, 12, p.Shield/p.ShieldMax, shieldFill, barBack)
	}

	status := StatusLine(w, fps)
	drawText(screen, status, h.fonts.Small, float64(h.W)-10, 6, menuText, text.AlignEnd)
	if w.Message.Active() {
		a := MessageAlpha(w.Message.TTL)
		clr := color.RGBA{menuGold.R, menuGold.G, menuGold.B, uint8(a * 255)}
		drawText(screen, w.Message.Text, h.fonts.Body, float64(h.W)-10, 24, clr, text.AlignEnd)
	}
}

// StatusLine is the top-right summary: frame rate, binocular time left and
// whether the key is held
func StatusLine(w *core.World, fps float64) string {
	parts := []string{fmt.Sprintf("FPS %.0f", fps)}
	if w.Player.BinocularTimer > 0 {
		parts = append(parts, fmt.Sprintf("binoculars %ds", int(math.Ceil(w.Player.BinocularTimer))))
	}
	if w.Player.HasKey {
		parts = append(parts, "key")
	}
	return strings.Join(parts, " | ")
}

// MessageAlpha is 1 until the last second of a message, then fades linearly
func MessageAlpha(ttl float64) float64 {
	if ttl <= 0 {
		return 0
	}
	if ttl >= messageFade {
		return 1
	}
	return ttl / messageFade
}
