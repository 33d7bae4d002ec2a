package main

import (
	"image/color"
	"strings"
	"testing"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/decker502/airhockey/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// 82x27 的屏幕去掉 HUD 和边框后正好是 80x24，场地 800x480 时每列 10、每行 20 个单位
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(82, 27)
	return screen
}

func testSnapshot() game.Snapshot {
	red := color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	blue := color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	return game.Snapshot{
		Width:       800,
		Height:      480,
		Puck:        game.Circle{X: 405, Y: 250, Radius: 15},
		PuckVisible: true,
		Paddles: [2]game.PaddleView{
			{Circle: game.Circle{X: 205, Y: 250, Radius: 30}, Player: components.PlayerOne, Name: "Alice", Color: red, Score: 2},
			{Circle: game.Circle{X: 605, Y: 250, Radius: 30}, Player: components.PlayerTwo, Name: "Bob", Color: blue, Score: 4, Dragged: true},
		},
		Goals: [2]game.GoalView{
			{Top: 168, Bottom: 312, HeightPercent: 30},
			{Top: 168, Bottom: 312, HeightPercent: 30},
		},
	}
}

func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		r, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(82, 27, 800, 480)

	for _, cell := range [][2]int{{1, 2}, {21, 14}, {80, 25}} {
		x, y := v.toField(cell[0], cell[1])
		col, row := v.toCell(x, y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("toCell(toField(%d, %d)) = (%d, %d)", cell[0], cell[1], col, row)
		}
	}

	rx, ry := v.cellRadius(30)
	if rx != 3 || ry != 1.5 {
		t.Errorf("cellRadius(30) = (%v, %v), expected (3, 1.5)", rx, ry)
	}
}

func TestDrawSnapshotBodies(t *testing.T) {
	screen := newTestScreen(t)
	drawSnapshot(screen, testSnapshot(), "")

	tests := []struct {
		name     string
		col, row int
		expected rune
	}{
		{"puck center", 41, 14, 'o'},
		{"player one paddle", 21, 14, '@'},
		{"dragged paddle", 61, 14, '#'},
		{"top wall", 10, 1, '─'},
		{"bottom wall", 10, 26, '─'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := screen.GetContent(tt.col, tt.row)
			if r != tt.expected {
				t.Errorf("cell (%d, %d) = %q, expected %q", tt.col, tt.row, r, tt.expected)
			}
		})
	}
}

func TestDrawSnapshotGoalMouth(t *testing.T) {
	screen := newTestScreen(t)
	drawSnapshot(screen, testSnapshot(), "")

	for _, col := range []int{0, 81} {
		if r, _, _, _ := screen.GetContent(col, 2); r != '│' {
			t.Errorf("col %d row 2: expected wall, got %q", col, r)
		}
		if r, _, _, _ := screen.GetContent(col, 14); r == '│' {
			t.Errorf("col %d row 14: expected open goal mouth, got wall", col)
		}
	}
}

func TestDrawSnapshotHiddenPuck(t *testing.T) {
	screen := newTestScreen(t)
	snap := testSnapshot()
	snap.PuckVisible = false
	drawSnapshot(screen, snap, "")

	if r, _, _, _ := screen.GetContent(41, 14); r == 'o' {
		t.Error("Hidden puck should not be drawn")
	}
}

func TestDrawSnapshotHUDAndOverlay(t *testing.T) {
	screen := newTestScreen(t)
	snap := testSnapshot()
	snap.Phase = systems.PhaseGameOverDisplay
	snap.Winner = components.PlayerTwo
	drawSnapshot(screen, snap, "")

	hud := rowText(screen, 0)
	if !strings.Contains(hud, "Alice 2") || !strings.Contains(hud, "4 Bob") {
		t.Errorf("HUD = %q, expected both names and scores", hud)
	}
	if !strings.Contains(rowText(screen, 14), "Bob wins!") {
		t.Errorf("Overlay row = %q, expected winner", rowText(screen, 14))
	}

	snap.Phase = systems.PhaseGameOverCountdown
	snap.ResetCountdown = 2
	drawSnapshot(screen, snap, "")
	if !strings.Contains(rowText(screen, 14), "New game in 2") {
		t.Errorf("Overlay row = %q, expected countdown", rowText(screen, 14))
	}
}

func TestDrawSnapshotTinyScreen(t *testing.T) {
	screen := newTestScreen(t)
	screen.SetSize(2, 2)
	drawSnapshot(screen, testSnapshot(), "banner")
	drawSnapshot(screen, game.Snapshot{}, "")
}

func TestTerminalGameMouseDrag(t *testing.T) {
	screen := newTestScreen(t)
	cfg := config.DefaultMatchConfig()
	cfg.Seed = 7

	g, err := newTerminalGame(screen, cfg, newSoundPlayer(false))
	if err != nil {
		t.Fatalf("newTerminalGame failed: %v", err)
	}

	// 玩家1球拍默认在 (200, 240)，对应单元格 (21, 14)
	g.handleInput(tcell.NewEventMouse(21, 14, tcell.Button1, tcell.ModNone))
	g.step(1.0 / 60)
	if !g.match.Snapshot().Paddles[0].Dragged {
		t.Fatal("Expected player one paddle to be dragged")
	}

	g.handleInput(tcell.NewEventMouse(21, 14, tcell.ButtonNone, tcell.ModNone))
	g.step(1.0 / 60)
	if g.match.Snapshot().Paddles[0].Dragged {
		t.Error("Expected paddle released after button up")
	}
}

func TestTerminalGameQuitKeys(t *testing.T) {
	screen := newTestScreen(t)
	g, err := newTerminalGame(screen, config.DefaultMatchConfig(), newSoundPlayer(false))
	if err != nil {
		t.Fatalf("newTerminalGame failed: %v", err)
	}

	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), true},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.handleInput(tt.ev); got != tt.expected {
				t.Errorf("handleInput(%s) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}
