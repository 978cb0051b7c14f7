package core

import "math"

// Player is the first-person actor. Position is in world units where one
// maze cell spans the world's CellSize.
type Player struct {
	X, Y  float64
	Angle float64 // radians, normalized to (-pi, pi]
	FOV   float64

	Health     float64
	HealthMax  float64
	Shield     float64
	ShieldMax  float64
	Stamina    float64
	StaminaMax float64

	HasKey         bool
	BinocularTimer float64 // seconds of full-map sight left
	StepTimer      float64 // seconds until the next footstep cue
}

// NewPlayer creates a player at (x, y) facing east with full health and stamina
func NewPlayer(x, y, fov float64) *Player {
	return &Player{
		X:          x,
		Y:          y,
		FOV:        fov,
		Health:     100,
		HealthMax:  100,
		ShieldMax:  100,
		Stamina:    100,
		StaminaMax: 100,
	}
}

// ApplyDamage subtracts amount, draining the shield before health.
// Health never drops below zero.
func (p *Player) ApplyDamage(amount float64) {
	if amount <= 0 {
		return
	}
	if p.Shield > 0 {
		absorbed := math.Min(p.Shield, amount)
		p.Shield -= absorbed
		amount -= absorbed
	}
	p.Health = math.Max(0, p.Health-amount)
}

// PickupMedkit heals when hurt, otherwise tops up the shield
func (p *Player) PickupMedkit(amount float64) {
	if p.Health < p.HealthMax {
		p.Health = math.Min(p.HealthMax, p.Health+amount)
		return
	}
	p.Shield = math.Min(p.ShieldMax, p.Shield+amount)
}

func (p *Player) PickupKey() {
	p.HasKey = true
}

// PickupBinoculars grants seconds of full-map sight; a longer running timer is kept
func (p *Player) PickupBinoculars(seconds float64) {
	p.BinocularTimer = math.Max(p.BinocularTimer, seconds)
}

// UpdateTimers regenerates stamina and counts timers down toward zero
func (p *Player) UpdateTimers(dt, staminaRegen float64) {
	p.Stamina = math.Min(p.StaminaMax, p.Stamina+staminaRegen*dt)
	p.BinocularTimer = math.Max(0, p.BinocularTimer-dt)
	p.StepTimer = math.Max(0, p.StepTimer-dt)
}

// DrainStamina spends stamina, flooring at zero
func (p *Player) DrainStamina(amount float64) {
	p.Stamina = math.Max(0, p.Stamina-amount)
}

func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Cell returns the grid cell the player stands in
func (p *Player) Cell(cellSize float64) (int, int) {
	return int(math.Floor(p.X / cellSize)), int(math.Floor(p.Y / cellSize))
}

// NormalizeAngle wraps a into (-pi, pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
