// Package scenes 提供 ebiten 宿主中的场景
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/event"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/decker502/airhockey/pkg/systems"
	"github.com/decker502/airhockey/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDHeight 场地上方记分栏的高度（逻辑像素）
const HUDHeight = 40

// bannerDuration 进球、超时等提示的显示时长
const bannerDuration = 1.5

var (
	tableColor     = color.RGBA{R: 0x1b, G: 0x26, B: 0x3b, A: 0xff}
	lineColor      = color.RGBA{R: 0x41, G: 0x5a, B: 0x77, A: 0xff}
	wallColor      = color.RGBA{R: 0xe0, G: 0xe1, B: 0xdd, A: 0xff}
	puckColor      = color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
	flashColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	countdownColor = color.RGBA{R: 0xff, G: 0xb7, B: 0x03, A: 0xff}
)

// powerupColors 道具按类型着色
var powerupColors = map[components.PowerupKind]color.RGBA{
	components.PowerupSmallerGoal: {R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	components.PowerupBiggerGoal:  {R: 0xe7, G: 0x6f, B: 0x51, A: 0xff},
	components.PowerupGiantPaddle: {R: 0x8a, G: 0xc9, B: 0x26, A: 0xff},
	components.PowerupTinyPaddle:  {R: 0x9b, G: 0x5d, B: 0xe5, A: 0xff},
}

// MatchScene 对局场景：把 ebiten 输入转换为指针事件，推进模拟并绘制快照
type MatchScene struct {
	match    *game.Match
	settings *game.SettingsManager
	audio    *game.AudioManager
	visuals  *visualPool

	tracker *utils.PointerTracker
	samples []utils.PointerSample

	banner      string
	bannerTimer float64
}

// NewMatchScene 创建并初始化对局场景
//
// 参数:
//   - cfg: 对局配置
//   - settings: 玩家设置，同时作为实时名称/颜色来源
//   - audio: 事件提示音，可为 nil
func NewMatchScene(cfg *config.MatchConfig, settings *game.SettingsManager, audio *game.AudioManager) (*MatchScene, error) {
	visuals := newVisualPool()
	var profiles game.ProfileSource = game.ConfigProfiles{Players: cfg.Players}
	if settings != nil {
		profiles = settings
	}

	match := game.NewMatch(cfg, visuals, profiles)
	if err := match.Init(); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	return &MatchScene{
		match:    match,
		settings: settings,
		audio:    audio,
		visuals:  visuals,
		tracker:  utils.NewPointerTracker(),
	}, nil
}

// Update 处理输入并推进一帧
func (s *MatchScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.restart()
	}

	if !ebiten.IsFocused() {
		s.applyPointerEvents(s.tracker.Reset())
	} else {
		s.samples = utils.SamplePointers(s.samples)
		for i := range s.samples {
			s.samples[i].Y -= HUDHeight
		}
		s.applyPointerEvents(s.tracker.Update(s.samples))
	}

	if err := s.match.Advance(deltaTime); err != nil {
		log.Printf("[MatchScene] Advance failed: %v", err)
		return
	}
	s.match.Update()

	s.visuals.decay(deltaTime)
	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
	}
	events := s.match.DrainEvents()
	s.audio.PlayEvents(events)
	for _, e := range events {
		s.handleEvent(e)
	}
}

func (s *MatchScene) applyPointerEvents(events []utils.PointerEvent) {
	for _, e := range events {
		id := systems.PointerID(e.ID)
		switch e.Type {
		case utils.PointerDown:
			s.match.PointerDown(id, e.X, e.Y)
		case utils.PointerMove:
			s.match.PointerMove(id, e.X, e.Y)
		case utils.PointerUp:
			s.match.PointerUp(id)
		}
	}
}

func (s *MatchScene) restart() {
	s.applyPointerEvents(s.tracker.Reset())
	if err := s.match.Init(); err != nil {
		log.Printf("[MatchScene] Restart failed: %v", err)
		return
	}
	s.showBanner("NEW MATCH")
}

// handleEvent 把模拟通知转换为提示文字
func (s *MatchScene) handleEvent(e event.Event) {
	snap := s.match.Snapshot()
	switch e.Type {
	case event.GoalScored:
		s.showBanner(fmt.Sprintf("GOAL! %s", playerName(snap, e.Player)))
	case event.ZoneTimeout:
		s.showBanner("TOO SLOW! PUCK MOVED")
	case event.PowerupCollected:
		s.showBanner(fmt.Sprintf("%s: %s", playerName(snap, e.Player), components.PowerupKind(e.Kind)))
	case event.GameOver:
		s.showBanner(fmt.Sprintf("%s WINS!", playerName(snap, e.Player)))
	case event.MatchReset:
		s.showBanner("NEW MATCH")
	}
}

func (s *MatchScene) showBanner(text string) {
	s.banner = text
	s.bannerTimer = bannerDuration
}

func playerName(snap game.Snapshot, player int) string {
	if player < 1 || player > 2 {
		return ""
	}
	return snap.Paddles[player-1].Name
}

// Draw 绘制记分栏和场地
func (s *MatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := s.match.Snapshot()

	s.drawHUD(screen, snap)

	oy := float32(HUDHeight)
	w, h := float32(snap.Width), float32(snap.Height)
	vector.DrawFilledRect(screen, 0, oy, w, h, tableColor, false)
	vector.StrokeLine(screen, w/2, oy, w/2, oy+h, 2, lineColor, false)
	vector.StrokeCircle(screen, w/2, oy+h/2, 60, 2, lineColor, true)

	// 边墙，球门口处留空
	for i, goal := range snap.Goals {
		x := float32(0)
		if i == 1 {
			x = w - 4
		}
		vector.DrawFilledRect(screen, x, oy, 4, float32(goal.Top), wallColor, false)
		vector.DrawFilledRect(screen, x, oy+float32(goal.Bottom), 4, h-float32(goal.Bottom), wallColor, false)
	}

	for _, p := range snap.Powerups {
		c := powerupColors[p.Kind]
		vector.DrawFilledCircle(screen, float32(p.X), oy+float32(p.Y), float32(p.Radius), c, true)
		// 外圈半径随剩余寿命收缩
		ring := float32(p.Radius) * (1 + float32(p.LifePercent)/200)
		vector.StrokeCircle(screen, float32(p.X), oy+float32(p.Y), ring, 2, c, true)
	}

	for i, paddle := range snap.Paddles {
		c := paddle.Color
		if v := s.visuals.paddles[i]; v != nil && v.flash > 0 {
			c = flashColor
		}
		vector.DrawFilledCircle(screen, float32(paddle.X), oy+float32(paddle.Y), float32(paddle.Radius), c, true)
		if paddle.Dragged {
			vector.StrokeCircle(screen, float32(paddle.X), oy+float32(paddle.Y), float32(paddle.Radius)+3, 2, wallColor, true)
		}
	}

	if snap.PuckVisible {
		vector.DrawFilledCircle(screen, float32(snap.Puck.X), oy+float32(snap.Puck.Y), float32(snap.Puck.Radius), puckColor, true)
	}

	if snap.ZoneCountdown > 0 {
		x := snap.Width / 4
		if snap.Zone == systems.ZoneRight {
			x = snap.Width * 3 / 4
		}
		vector.StrokeCircle(screen, float32(x), oy+h/2, 24, 3, countdownColor, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.ZoneCountdown), int(x)-3, HUDHeight+int(snap.Height/2)-8)
	}

	s.drawOverlay(screen, snap)
}

func (s *MatchScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	p1, p2 := snap.Paddles[0], snap.Paddles[1]
	vector.DrawFilledRect(screen, 0, 0, 12, HUDHeight, p1.Color, false)
	vector.DrawFilledRect(screen, float32(snap.Width)-12, 0, 12, HUDHeight, p2.Color, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d", p1.Name, p1.Score), 20, 12)
	right := fmt.Sprintf("%d  %s", p2.Score, p2.Name)
	ebitenutil.DebugPrintAt(screen, right, int(snap.Width)-20-len(right)*6, 12)

	goals := fmt.Sprintf("goal %.0f%% | %.0f%%", snap.Goals[0].HeightPercent, snap.Goals[1].HeightPercent)
	ebitenutil.DebugPrintAt(screen, goals, int(snap.Width)/2-len(goals)*3, 12)
}

func (s *MatchScene) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	cx := int(snap.Width) / 2
	cy := HUDHeight + int(snap.Height)/2

	switch snap.Phase {
	case systems.PhaseGameOverDisplay:
		text := fmt.Sprintf("%s WINS!", playerName(snap, int(snap.Winner)))
		ebitenutil.DebugPrintAt(screen, text, cx-len(text)*3, cy-40)
		return
	case systems.PhaseGameOverCountdown:
		text := fmt.Sprintf("NEW GAME IN %d", snap.ResetCountdown)
		ebitenutil.DebugPrintAt(screen, text, cx-len(text)*3, cy-40)
		return
	}

	if s.bannerTimer > 0 && s.banner != "" {
		ebitenutil.DebugPrintAt(screen, s.banner, cx-len(s.banner)*3, cy-40)
	}
}

// SaveOnExit 实现 game.Saveable，保存玩家设置
func (s *MatchScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[MatchScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

// Snapshot 返回当前对局快照
func (s *MatchScene) Snapshot() game.Snapshot {
	return s.match.Snapshot()
}
