package core

import (
	"math"
	"testing"
)

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name                 string
		health, shield, dmg  float64
		wantHealth, wantShld float64
	}{
		{"no shield", 100, 0, 50, 50, 0},
		{"shield absorbs first", 100, 20, 30, 90, 0},
		{"shield absorbs all", 100, 40, 30, 100, 10},
		{"floors at zero", 30, 0, 50, 0, 0},
		{"negative ignored", 80, 5, -10, 80, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, math.Pi/3)
			p.Health, p.Shield = tt.health, tt.shield
			p.ApplyDamage(tt.dmg)
			if p.Health != tt.wantHealth || p.Shield != tt.wantShld {
				t.Errorf("health/shield = %v/%v, want %v/%v", p.Health, p.Shield, tt.wantHealth, tt.wantShld)
			}
		})
	}
}

func TestPickupMedkit(t *testing.T) {
	p := NewPlayer(0, 0, 1)
	p.Health = 90
	p.PickupMedkit(25)
	if p.Health != 100 || p.Shield != 0 {
		t.Errorf("hurt pickup: health %v shield %v", p.Health, p.Shield)
	}
	p.PickupMedkit(25)
	if p.Shield != 25 {
		t.Errorf("full health pickup should feed the shield, got %v", p.Shield)
	}
	p.Shield = 90
	p.PickupMedkit(25)
	if p.Shield != p.ShieldMax {
		t.Errorf("shield = %v, want capped at %v", p.Shield, p.ShieldMax)
	}
}

func TestPickupBinocularsKeepsLongerTimer(t *testing.T) {
	p := NewPlayer(0, 0, 1)
	p.PickupBinoculars(60)
	p.UpdateTimers(10, 0)
	p.PickupBinoculars(30)
	if p.BinocularTimer != 50 {
		t.Errorf("timer = %v, want 50", p.BinocularTimer)
	}
}

func TestUpdateTimers(t *testing.T) {
	p := NewPlayer(0, 0, 1)
	p.Stamina = 95
	p.BinocularTimer = 0.5
	p.StepTimer = 0.2
	p.UpdateTimers(1, 12)
	if p.Stamina != 100 {
		t.Errorf("stamina = %v, want capped 100", p.Stamina)
	}
	if p.BinocularTimer != 0 || p.StepTimer != 0 {
		t.Errorf("timers = %v/%v, want 0", p.BinocularTimer, p.StepTimer)
	}
	p.DrainStamina(500)
	if p.Stamina != 0 {
		t.Errorf("stamina = %v, want 0", p.Stamina)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
		{7, 7 - 2*math.Pi},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v out of range", tt.in, got)
		}
	}
}
