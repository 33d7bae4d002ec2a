package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

func newTestScoreSystem(w *testWorld, rules config.RulesConfig) *ScoreSystem {
	puck := config.PuckConfig{ServeSpeed: 200, ServeSpread: 120}
	return NewScoreSystem(w.em, w.state, w.events, rand.New(rand.NewSource(7)), w.field, puck, rules)
}

func defaultRules() config.RulesConfig {
	return config.RulesConfig{PointsToWin: 5, DefaultGoalHeight: 30, GameOverDisplay: 3, ResetCountdown: 3}
}

func TestScoreNormalGoalServesPuck(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := newTestScoreSystem(w, defaultRules())
	w.state.LastTouchedBy = components.PlayerOne
	w.state.Zone = ZoneState{Current: ZoneRight, StallTimer: 4}

	puck := w.body(w.puck)
	puck.SetPosition(831, 240)
	sys.Update(0.016)

	if got := w.record(w.paddle1).Score; got != 1 {
		t.Errorf("player 1 score: got %d, want 1", got)
	}
	if puck.X != 400 || puck.Y != 240 {
		t.Errorf("puck should be centered, got (%.1f, %.1f)", puck.X, puck.Y)
	}
	if puck.VX != 200 && puck.VX != -200 {
		t.Errorf("serve VX: got %.1f", puck.VX)
	}
	if puck.VY < -120 || puck.VY > 120 {
		t.Errorf("serve VY out of range: %.1f", puck.VY)
	}
	if w.state.LastTouchedBy != components.PlayerNone || w.state.Zone.StallTimer != 0 {
		t.Error("toucher and zone should be cleared")
	}
	types := w.drainTypes()
	if !containsType(types, event.GoalScored) || !containsType(types, event.PuckIncoming) {
		t.Errorf("events: %v", types)
	}
}

func TestScoreLeftGoalCountsForPlayerTwo(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := newTestScoreSystem(w, defaultRules())

	w.body(w.puck).SetPosition(-29, 240)
	sys.Update(0.016)
	if w.record(w.paddle2).Score != 0 {
		t.Fatal("inside the margin is not a goal yet")
	}

	w.body(w.puck).SetPosition(-31, 240)
	sys.Update(0.016)
	if w.record(w.paddle2).Score != 1 {
		t.Errorf("player 2 score: got %d, want 1", w.record(w.paddle2).Score)
	}
}

func TestScoreWinEntersGameOver(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := newTestScoreSystem(w, defaultRules())
	visual := &fakeVisual{}
	ecs.AddComponent(w.em, w.puck, &components.VisualComponent{Handle: visual})
	w.record(w.paddle2).Score = 4

	puck := w.body(w.puck)
	puck.SetPosition(-40, 240)
	puck.VX, puck.VY = -300, 20
	sys.Update(0.016)

	if w.state.Phase != PhaseGameOverDisplay {
		t.Fatalf("phase: got %s, want game-over", w.state.Phase)
	}
	if w.state.Winner != components.PlayerTwo {
		t.Errorf("winner: got %d", w.state.Winner)
	}
	if puck.VX != 0 || puck.VY != 0 || puck.X != -40 {
		t.Errorf("puck should freeze in place, got x=%.1f v=(%.1f, %.1f)", puck.X, puck.VX, puck.VY)
	}
	tag, _ := ecs.GetComponent[*components.PuckComponent](w.em, w.puck)
	if !tag.Hidden || len(visual.visible) != 1 || visual.visible[0] {
		t.Error("puck should be hidden")
	}
	types := w.drainTypes()
	if containsType(types, event.PuckIncoming) || !containsType(types, event.GameOver) {
		t.Errorf("events: %v", types)
	}
}

func TestScoreGameOverSequence(t *testing.T) {
	w := newTestWorld(800, 480)
	rules := defaultRules()
	rules.GameOverDisplay = 0.2 // 小于 1 秒时使用默认 3 秒
	rules.ResetCountdown = 2
	sys := newTestScoreSystem(w, rules)
	reset := 0
	sys.OnFullReset = append(sys.OnFullReset, func() { reset++ })

	w.record(w.paddle1).Score = 4
	w.record(w.paddle2).Score = 2
	w.state.SetGoalHeight(components.PlayerOne, 50)
	w.body(w.puck).SetPosition(900, 240)
	sys.Update(0.1)
	w.events.Drain()

	if w.state.PhaseTimer != 3 {
		t.Fatalf("display timer: got %.2f, want 3", w.state.PhaseTimer)
	}

	for i := 0; i < 29; i++ {
		sys.Update(0.1)
	}
	if w.state.Phase != PhaseGameOverDisplay {
		t.Fatalf("still displaying after 2.9s, got %s", w.state.Phase)
	}
	sys.Update(0.15)
	if w.state.Phase != PhaseGameOverCountdown {
		t.Fatalf("phase: got %s, want countdown", w.state.Phase)
	}
	if sys.CountdownValue() != 2 {
		t.Errorf("countdown value: got %d, want 2", sys.CountdownValue())
	}
	if !containsType(w.drainTypes(), event.NewGameCountdownStarted) {
		t.Error("expected new game countdown event")
	}

	sys.Update(1.5)
	if sys.CountdownValue() != 1 {
		t.Errorf("countdown value: got %d, want 1", sys.CountdownValue())
	}
	sys.Update(0.6)

	if w.state.Phase != PhaseNormal {
		t.Fatalf("phase after reset: got %s", w.state.Phase)
	}
	if w.record(w.paddle1).Score != 0 || w.record(w.paddle2).Score != 0 {
		t.Error("scores should be zeroed")
	}
	if w.state.GoalHeight(components.PlayerOne) != 30 {
		t.Error("goal heights should be restored")
	}
	if reset != 1 {
		t.Errorf("reset hooks called %d times", reset)
	}
	puck := w.body(w.puck)
	if puck.X != 400 || puck.Y != 240 {
		t.Errorf("puck should be centered, got (%.1f, %.1f)", puck.X, puck.Y)
	}
	types := w.drainTypes()
	if containsType(types, event.PuckIncoming) || !containsType(types, event.MatchReset) {
		t.Errorf("full reset events: %v", types)
	}
}

func TestScoreNoGoalDuringGameOver(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := newTestScoreSystem(w, defaultRules())
	w.state.Phase = PhaseGameOverDisplay
	w.state.PhaseTimer = 3
	w.body(w.puck).SetPosition(900, 240)

	sys.Update(0.1)

	if w.record(w.paddle1).Score != 0 {
		t.Error("goals must not count during game over")
	}
}

func TestStartGameServesWithIncoming(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := newTestScoreSystem(w, defaultRules())

	sys.StartGame()

	if w.body(w.puck).VX == 0 {
		t.Error("puck should be served")
	}
	if types := w.drainTypes(); len(types) != 1 || types[0] != event.PuckIncoming {
		t.Errorf("events: %v", types)
	}
}
