// airhockey-tui 在终端中运行桌上冰球，鼠标左键拖动球拍
//
// 用法:
//
//	go run ./cmd/airhockey-tui [-config data/match.yaml] [-seed 0] [-mute] [-verbose]
//
// 按 R 重新开局，Esc、q 或 Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/event"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/decker502/airhockey/pkg/systems"
	"github.com/decker502/airhockey/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 模拟步长，与 ebiten 宿主的 60 TPS 一致
const frameInterval = 16 * time.Millisecond

// bannerFrames 进球等提示的显示帧数
const bannerFrames = 90

type terminalGame struct {
	screen  tcell.Screen
	match   *game.Match
	sound   *soundPlayer
	tracker *utils.PointerTracker

	// mouse 当前按下的鼠标位置（单元格坐标），未按下时为 nil
	mouse *[2]int

	banner       string
	bannerFrames int
}

func main() {
	configPath := flag.String("config", "", "path to match config yaml (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable sound")
	verbose := flag.Bool("verbose", false, "write logs to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(*configPath, *seed, !*mute); err != nil {
		fmt.Fprintf(os.Stderr, "airhockey-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, sound bool) error {
	cfg := config.DefaultMatchConfig()
	if configPath != "" {
		loaded, err := config.LoadMatchConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	g, err := newTerminalGame(screen, cfg, newSoundPlayer(sound))
	if err != nil {
		screen.Fini()
		return err
	}
	defer g.cleanup()

	g.loop()
	return nil
}

func newTerminalGame(screen tcell.Screen, cfg *config.MatchConfig, sound *soundPlayer) (*terminalGame, error) {
	match := game.NewMatch(cfg, nil, game.ConfigProfiles{Players: cfg.Players})
	if err := match.Init(); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return &terminalGame{
		screen:  screen,
		match:   match,
		sound:   sound,
		tracker: utils.NewPointerTracker(),
	}, nil
}

func (g *terminalGame) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.step(frameInterval.Seconds())
			g.draw()
		}
	}
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (g *terminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			g.restart()
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			g.mouse = &[2]int{x, y}
		} else {
			g.mouse = nil
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step 推进一帧：鼠标转换为指针事件，然后推进模拟
func (g *terminalGame) step(dt float64) {
	g.applyPointers(g.samples())

	if err := g.match.Advance(dt); err != nil {
		log.Printf("[TUI] Advance failed: %v", err)
		return
	}
	g.match.Update()

	events := g.match.DrainEvents()
	g.sound.Play(events)
	for _, e := range events {
		if text := bannerText(e); text != "" {
			g.banner = text
			g.bannerFrames = bannerFrames
		}
	}
	if g.bannerFrames > 0 {
		g.bannerFrames--
		if g.bannerFrames == 0 {
			g.banner = ""
		}
	}
}

func (g *terminalGame) samples() []utils.PointerSample {
	if g.mouse == nil {
		return nil
	}
	snap := g.match.Snapshot()
	cols, rows := g.screen.Size()
	v := newViewport(cols, rows, snap.Width, snap.Height)
	x, y := v.toField(g.mouse[0], g.mouse[1])
	return []utils.PointerSample{{ID: utils.MousePointerID, X: x, Y: y}}
}

func (g *terminalGame) applyPointers(samples []utils.PointerSample) {
	for _, pe := range g.tracker.Update(samples) {
		id := systems.PointerID(pe.ID)
		switch pe.Type {
		case utils.PointerDown:
			g.match.PointerDown(id, pe.X, pe.Y)
		case utils.PointerMove:
			g.match.PointerMove(id, pe.X, pe.Y)
		case utils.PointerUp:
			g.match.PointerUp(id)
		}
	}
}

func (g *terminalGame) restart() {
	g.tracker.Reset()
	g.mouse = nil
	if err := g.match.Init(); err != nil {
		log.Printf("[TUI] Restart failed: %v", err)
		return
	}
	g.banner = ""
	g.bannerFrames = 0
}

func (g *terminalGame) draw() {
	drawSnapshot(g.screen, g.match.Snapshot(), g.banner)
	g.screen.Show()
}

func (g *terminalGame) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}

// bannerText 需要在场地中央提示的事件
func bannerText(e event.Event) string {
	switch e.Type {
	case event.GoalScored:
		return fmt.Sprintf(" Goal! Player %d ", e.Player)
	case event.ZoneTimeout:
		return " Too long in one half! "
	default:
		return ""
	}
}
