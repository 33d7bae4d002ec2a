package components

import "testing"

// TestApplyRefreshesInsteadOfStacking 重复施加同类效果只刷新计时
func TestApplyRefreshesInsteadOfStacking(t *testing.T) {
	c := &StatusEffectsComponent{}
	c.Apply(EffectGiantPaddle, 8)
	c.Effects[0].Timer = 2.5
	c.Apply(EffectTinyPaddle, 8)
	c.Apply(EffectGiantPaddle, 4)

	if len(c.Effects) != 2 {
		t.Fatalf("effects: got %d, want 2", len(c.Effects))
	}

	// 保持原有顺序
	if c.Effects[0].Kind != EffectGiantPaddle || c.Effects[1].Kind != EffectTinyPaddle {
		t.Errorf("order: got %v, %v", c.Effects[0].Kind, c.Effects[1].Kind)
	}

	giant, ok := c.Find(EffectGiantPaddle)
	if !ok {
		t.Fatal("giant effect should exist")
	}
	if giant.Timer != 4 {
		t.Errorf("timer: got %v, want 4 (latest duration)", giant.Timer)
	}
	if giant.Duration != 4 {
		t.Errorf("duration: got %v, want 4", giant.Duration)
	}
}

func TestEffectsClear(t *testing.T) {
	c := &StatusEffectsComponent{}
	c.Apply(EffectTinyPaddle, 8)
	c.Clear()
	if c.Has(EffectTinyPaddle) {
		t.Error("effects should be cleared")
	}
}

func TestPlayerOpponent(t *testing.T) {
	if PlayerOne.Opponent() != PlayerTwo || PlayerTwo.Opponent() != PlayerOne {
		t.Error("opponents should be swapped")
	}
	if PlayerNone.Opponent() != PlayerNone {
		t.Error("no player has no opponent")
	}
	if PlayerNone.Valid() {
		t.Error("PlayerNone should not be valid")
	}
}

func TestPowerupLifePercent(t *testing.T) {
	p := &PowerupComponent{Lifespan: 2.5, MaxLifespan: 10}
	if got := p.LifePercent(); got != 25 {
		t.Errorf("LifePercent: got %v, want 25", got)
	}
	p.Lifespan = -0.1
	if got := p.LifePercent(); got != 0 {
		t.Errorf("expired LifePercent: got %v, want 0", got)
	}
}
