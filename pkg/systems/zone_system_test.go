package systems

import (
	"testing"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/event"
)

func TestZoneTimeoutRelocatesToOppositeSide(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := NewZoneSystem(w.em, w.state, w.events, w.field, 7)
	puck := w.body(w.puck)
	puck.SetPosition(150, 100)
	w.state.LastTouchedBy = components.PlayerOne

	const dt = 0.1
	relocated := false
	for i := 0; i < 72 && !relocated; i++ {
		puck.VX, puck.VY = 5, 5
		sys.Update(dt)
		relocated = w.state.Zone.Current == ZoneRight
	}

	if !relocated {
		t.Fatal("puck should be relocated after 7.1s in the left zone")
	}
	if puck.X != 600 || puck.Y != 240 {
		t.Errorf("relocated position: got (%.1f, %.1f), want (600, 240)", puck.X, puck.Y)
	}
	if puck.VX != 0 || puck.VY != 0 {
		t.Error("velocity should be zeroed")
	}
	if w.state.LastTouchedBy != components.PlayerNone {
		t.Error("LastTouchedBy should be cleared")
	}
	if w.state.Zone.StallTimer != 0 || w.state.Zone.CountdownActive {
		t.Errorf("zone state not reset: %+v", w.state.Zone)
	}
	if sys.ZoneOf(puck.X) != ZoneRight {
		t.Error("puck should now be in the right zone")
	}

	types := w.drainTypes()
	if !containsType(types, event.ZoneCountdownStarted) || !containsType(types, event.ZoneTimeout) {
		t.Errorf("expected countdown and timeout events, got %v", types)
	}
}

func TestZoneTimeoutFromRightGoesLeft(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := NewZoneSystem(w.em, w.state, w.events, w.field, 2)
	puck := w.body(w.puck)
	puck.SetPosition(700, 300)

	for i := 0; i < 30; i++ {
		sys.Update(0.1)
	}
	if puck.X != 200 {
		t.Errorf("relocated x: got %.1f, want 200", puck.X)
	}
	if w.state.Zone.Current != ZoneLeft {
		t.Errorf("zone: got %d, want left", w.state.Zone.Current)
	}
}

func TestZoneTimerResetsOnCrossing(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := NewZoneSystem(w.em, w.state, w.events, w.field, 7)
	puck := w.body(w.puck)
	puck.SetPosition(100, 240)

	sys.Update(0.5) // 判定半场
	prev := w.state.Zone.StallTimer
	for i := 0; i < 10; i++ {
		sys.Update(0.5)
		if w.state.Zone.StallTimer <= prev {
			t.Fatalf("stall timer should strictly increase, %.2f -> %.2f", prev, w.state.Zone.StallTimer)
		}
		prev = w.state.Zone.StallTimer
	}
	if !w.state.Zone.CountdownActive {
		t.Error("countdown should be active with 2s remaining")
	}

	puck.SetPosition(500, 240)
	sys.Update(0.5)
	if w.state.Zone.StallTimer != 0 {
		t.Errorf("stall timer after crossing: got %.2f, want 0", w.state.Zone.StallTimer)
	}
	if w.state.Zone.CountdownActive {
		t.Error("countdown should be cancelled by crossing")
	}
}

func TestZoneCountdownAnnouncedOnce(t *testing.T) {
	w := newTestWorld(800, 480)
	sys := NewZoneSystem(w.em, w.state, w.events, w.field, 7)
	w.body(w.puck).SetPosition(100, 240)

	var values []int
	count := 0
	sys.Update(0.1)
	for i := 0; i < 68; i++ {
		sys.Update(0.1)
		for _, e := range w.events.Drain() {
			if e.Type == event.ZoneCountdownStarted {
				count++
			}
		}
		if w.state.Zone.CountdownActive {
			values = append(values, w.state.Zone.CountdownValue)
		}
	}

	if count != 1 {
		t.Errorf("countdown announcements: got %d, want 1", count)
	}
	if len(values) == 0 || values[0] != 3 || values[len(values)-1] != 1 {
		t.Errorf("countdown values should run 3..1, got %v", values)
	}
}
