package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
	"github.com/decker502/airhockey/pkg/systems"
)

var (
	// ErrNotInitialized 在 Init 之前调用 Advance
	ErrNotInitialized = errors.New("match not initialized")
	// ErrInvalidDelta 帧时间为负数、NaN 或无穷大
	ErrInvalidDelta = errors.New("invalid delta time")
)

// fallbackColor 玩家颜色无法解析时使用
var fallbackColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Match 一场双人桌上冰球对局的模拟核心
//
// 单线程使用：宿主每帧调用一次 Advance 和 Update，
// 指针事件在两帧之间按到达顺序调用 PointerDown/Move/Up。
// Match 不持有任何计时器，所有倒计时都以 Advance 传入的模拟时间推进。
type Match struct {
	cfg      *config.MatchConfig
	visuals  systems.VisualFactory
	profiles ProfileSource

	em     *ecs.EntityManager
	state  *systems.MatchState
	events *event.Queue
	rng    *rand.Rand

	effects   *systems.StatusEffectSystem
	physics   *systems.PhysicsSystem
	zone      *systems.ZoneSystem
	boundary  *systems.BoundarySystem
	collision *systems.CollisionSystem
	powerups  *systems.PowerupSystem
	score     *systems.ScoreSystem
	drag      *systems.DragSystem

	puck    ecs.EntityID
	paddles [2]ecs.EntityID

	initialized bool
}

// NewMatch 创建对局，需要调用 Init 后才能推进
//
// 参数:
//   - cfg: 对局配置（nil 时使用默认配置）
//   - visuals: 视觉对象工厂，可为 nil（无界面运行）
//   - profiles: 实时玩家信息，可为 nil（只使用配置）
func NewMatch(cfg *config.MatchConfig, visuals systems.VisualFactory, profiles ProfileSource) *Match {
	if cfg == nil {
		cfg = config.DefaultMatchConfig()
	}
	return &Match{
		cfg:      cfg,
		visuals:  visuals,
		profiles: profiles,
	}
}

// Init 创建实体、初始化记录和计数器，然后开局发球
//
// 重复调用会丢弃当前对局并重新开始。
func (m *Match) Init() error {
	if err := m.cfg.Validate(); err != nil {
		return fmt.Errorf("failed to init match: %w", err)
	}
	if m.em != nil {
		m.releaseVisuals()
	}

	seed := m.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.em = ecs.NewEntityManager()
	m.state = systems.NewMatchState(m.cfg.Rules.DefaultGoalHeight)
	m.events = event.NewQueue()
	m.rng = rand.New(rand.NewSource(seed))

	field := m.cfg.Field
	m.effects = systems.NewStatusEffectSystem(m.em, m.state, m.cfg.Drag.SizeIncreasePercent)
	m.physics = systems.NewPhysicsSystem(m.em, m.state, field)
	m.zone = systems.NewZoneSystem(m.em, m.state, m.events, field, m.cfg.Zone.MaxTime)
	m.boundary = systems.NewBoundarySystem(m.em, m.state, field)
	m.collision = systems.NewCollisionSystem(m.em, m.state, m.events, m.cfg.Puck.MaxSpeed)
	m.powerups = systems.NewPowerupSystem(m.em, m.state, m.events, m.effects, m.visuals, m.rng, m.cfg.Powerup, field)
	m.score = systems.NewScoreSystem(m.em, m.state, m.events, m.rng, field, m.cfg.Puck, m.cfg.Rules)
	m.drag = systems.NewDragSystem(m.em, m.state, m.cfg.Drag)
	m.score.OnFullReset = []func(){m.powerups.Clear, m.effects.ClearAll}

	m.puck = m.createPuck()
	m.paddles[0] = m.createPaddle(components.PlayerOne, m.cfg.Paddles.Player1Start)
	m.paddles[1] = m.createPaddle(components.PlayerTwo, m.cfg.Paddles.Player2Start)

	m.initialized = true
	m.syncProfiles()
	m.score.StartGame()

	log.Printf("[Match] Initialized: field %.0fx%.0f, first to %d, seed=%d",
		field.Width, field.Height, m.cfg.Rules.PointsToWin, seed)
	return nil
}

func (m *Match) createPuck() ecs.EntityID {
	pc := m.cfg.Puck
	id := m.em.CreateEntity()
	ecs.AddComponent(m.em, id, components.NewBodyComponent(m.cfg.Field.Width/2, m.cfg.Field.Height/2, pc.Radius, pc.Mass, pc.Friction))
	ecs.AddComponent(m.em, id, &components.PuckComponent{})

	var handle interface{}
	if m.visuals != nil {
		handle = m.visuals.NewPuckVisual()
	}
	visual := &components.VisualComponent{Handle: handle}
	ecs.AddComponent(m.em, id, visual)
	visual.WriteVisible(true)
	return id
}

func (m *Match) createPaddle(player components.PlayerID, start config.Point) ecs.EntityID {
	pc := m.cfg.Paddles
	id := m.em.CreateEntity()
	ecs.AddComponent(m.em, id, components.NewBodyComponent(start.X, start.Y, pc.Radius, pc.Mass, pc.Friction))
	ecs.AddComponent(m.em, id, &components.PaddleComponent{Player: player})
	ecs.AddComponent(m.em, id, &components.StatusEffectsComponent{})
	ecs.AddComponent(m.em, id, &components.PlayerRecordComponent{})

	var handle interface{}
	if m.visuals != nil {
		handle = m.visuals.NewPaddleVisual(player)
	}
	ecs.AddComponent(m.em, id, &components.VisualComponent{Handle: handle})
	return id
}

// Advance 推进一帧
//
// 顺序：状态效果 → 物理 → 半场计时 → 边墙/球门口 → 球拍碰撞 → 道具 → 计分。
// 比赛结束阶段只运行状态效果、物理（冰球冻结）和计分状态机。
//
// 返回:
//   - error: 未初始化或 deltaTime 非法时返回错误，本帧不执行
func (m *Match) Advance(deltaTime float64) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	if deltaTime < 0 || math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, deltaTime)
	}

	m.effects.Update(deltaTime)
	m.physics.Update(deltaTime)

	if !m.state.IsGameOver() {
		m.zone.Update(deltaTime)
		m.boundary.Update()
		m.collision.Update()
		m.powerups.Update(deltaTime)
	}

	m.score.Update(deltaTime)
	m.em.RemoveMarkedEntities()
	return nil
}

// Update 帧后同步：重新限制球拍位置，并把实时玩家信息写入记录和名牌
// 可重复调用
func (m *Match) Update() {
	if !m.initialized {
		return
	}
	m.physics.ClampPaddles()
	m.syncProfiles()
}

func (m *Match) syncProfiles() {
	fallbacks := [2]config.PlayerConfig{m.cfg.Players.One, m.cfg.Players.Two}
	for i, id := range m.paddles {
		player := components.PlayerID(i + 1)
		profile := resolveProfile(m.profiles, fallbacks[i], player)

		record, ok := ecs.GetComponent[*components.PlayerRecordComponent](m.em, id)
		if !ok {
			continue
		}
		record.Name = profile.Name
		if record.Color != profile.Color || record.RGBA.A == 0 {
			record.Color = profile.Color
			record.RGBA = config.HexColorOr(profile.Color, config.HexColorOr(fallbacks[i].Color, fallbackColor))
		}

		if visual, ok := ecs.GetComponent[*components.VisualComponent](m.em, id); ok {
			visual.WriteNameplate(record.Name, record.RGBA)
		}
	}
}

// PointerDown 指针按下，抓取范围内的球拍被绑定到该指针
//
// 返回:
//   - bool: 是否抓住了球拍
func (m *Match) PointerDown(pointer systems.PointerID, x, y float64) bool {
	if !m.initialized {
		return false
	}
	_, ok := m.drag.PointerDown(pointer, x, y)
	return ok
}

// PointerMove 移动已绑定的球拍，未知指针忽略
func (m *Match) PointerMove(pointer systems.PointerID, x, y float64) {
	if !m.initialized {
		return
	}
	m.drag.PointerMove(pointer, x, y)
}

// PointerUp 释放指针绑定，未知指针忽略
func (m *Match) PointerUp(pointer systems.PointerID) {
	if !m.initialized {
		return
	}
	m.drag.PointerUp(pointer)
}

// ReleaseAllPointers 释放全部绑定（窗口失焦、触摸取消）
func (m *Match) ReleaseAllPointers() {
	if !m.initialized {
		return
	}
	m.drag.ReleaseAll()
}

// DrainEvents 取出自上次调用以来的全部通知
func (m *Match) DrainEvents() []event.Event {
	if !m.initialized {
		return nil
	}
	return m.events.Drain()
}

// Config 返回对局配置
func (m *Match) Config() *config.MatchConfig {
	return m.cfg
}

// Phase 返回当前对局阶段
func (m *Match) Phase() systems.GamePhase {
	if !m.initialized {
		return systems.PhaseNormal
	}
	return m.state.Phase
}

// Score 返回玩家比分
func (m *Match) Score(player components.PlayerID) int {
	if record := m.record(player); record != nil {
		return record.Score
	}
	return 0
}

func (m *Match) record(player components.PlayerID) *components.PlayerRecordComponent {
	if !m.initialized || !player.Valid() {
		return nil
	}
	record, _ := ecs.GetComponent[*components.PlayerRecordComponent](m.em, m.paddles[player-1])
	return record
}

// releaseVisuals 重新初始化前归还全部视觉对象
func (m *Match) releaseVisuals() {
	if m.visuals == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.VisualComponent](m.em) {
		visual, _ := ecs.GetComponent[*components.VisualComponent](m.em, id)
		if visual.Handle != nil {
			m.visuals.ReleaseVisual(visual.Handle)
		}
	}
}
