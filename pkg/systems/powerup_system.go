package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

// PowerupSystem 管理道具的定时生成、寿命倒计时、拾取与效果发放
type PowerupSystem struct {
	em      *ecs.EntityManager
	state   *MatchState
	events  *event.Queue
	effects *StatusEffectSystem
	visuals VisualFactory
	rng     *rand.Rand

	cfg    config.PowerupConfig
	width  float64
	height float64

	spawnTimer float64
}

// NewPowerupSystem 创建道具系统
//
// 参数:
//   - effects: 用于发放球拍效果
//   - visuals: 可为 nil，此时道具没有视觉对象
//   - rng: 随机源（生成判定、位置、类型）
func NewPowerupSystem(em *ecs.EntityManager, state *MatchState, events *event.Queue, effects *StatusEffectSystem,
	visuals VisualFactory, rng *rand.Rand, cfg config.PowerupConfig, field config.FieldConfig) *PowerupSystem {
	log.Printf("[PowerupSystem] Initialized with interval=%.1fs, max=%d", cfg.SpawnInterval, cfg.Max)
	return &PowerupSystem{
		em:      em,
		state:   state,
		events:  events,
		effects: effects,
		visuals: visuals,
		rng:     rng,
		cfg:     cfg,
		width:   field.Width,
		height:  field.Height,
	}
}

// Update 生成 → 寿命倒计时 → 拾取
func (s *PowerupSystem) Update(deltaTime float64) {
	s.updateSpawn(deltaTime)
	s.updateLifespans(deltaTime)
	s.updatePickups()
}

// ActiveCount 返回场上（未被标记删除）的道具数量
func (s *PowerupSystem) ActiveCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.PowerupComponent](s.em) {
		if !s.em.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// updateSpawn 计时到达间隔后掷硬币决定是否生成
func (s *PowerupSystem) updateSpawn(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.cfg.SpawnInterval {
		return
	}
	s.spawnTimer = 0

	if s.ActiveCount() >= s.cfg.Max {
		return
	}
	if s.rng.Float64() >= config.PowerupSpawnChance {
		return
	}

	x := s.cfg.Padding + s.rng.Float64()*(s.width-2*s.cfg.Padding)
	y := s.cfg.Padding + s.rng.Float64()*(s.height-2*s.cfg.Padding)
	kind := components.PowerupKind(s.rng.Intn(int(components.PowerupKindCount)))
	s.Spawn(kind, x, y)
}

// Spawn 在 (x, y) 创建一个道具
func (s *PowerupSystem) Spawn(kind components.PowerupKind, x, y float64) ecs.EntityID {
	id := s.em.CreateEntity()
	ecs.AddComponent(s.em, id, &components.PowerupComponent{
		X:           x,
		Y:           y,
		Radius:      s.cfg.Radius,
		Kind:        kind,
		Lifespan:    config.PowerupLifespan,
		MaxLifespan: config.PowerupLifespan,
	})

	var handle interface{}
	if s.visuals != nil {
		handle = s.visuals.NewPowerupVisual(kind)
	}
	visual := &components.VisualComponent{Handle: handle}
	ecs.AddComponent(s.em, id, visual)
	visual.WriteLifePercent(100)

	log.Printf("[PowerupSystem] Spawned %s (id=%d) at (%.0f, %.0f)", kind, id, x, y)
	s.events.Push(event.Event{Type: event.PowerupSpawned, ID: uint64(id), Kind: int(kind)})
	return id
}

// updateLifespans 寿命归零的道具写入 0% 后移除，其余写入剩余百分比
func (s *PowerupSystem) updateLifespans(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PowerupComponent](s.em) {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		p, _ := ecs.GetComponent[*components.PowerupComponent](s.em, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.em, id)

		p.Lifespan -= deltaTime
		if p.Lifespan <= 0 {
			p.Lifespan = 0
			visual.WriteLifePercent(0)
			s.remove(id)
			s.events.Push(event.Event{Type: event.PowerupExpired, ID: uint64(id), Kind: int(p.Kind)})
			continue
		}
		visual.WriteLifePercent(p.LifePercent())
	}
}

// updatePickups 与冰球重叠的道具发给最后触球的玩家；无人触球时不拾取
func (s *PowerupSystem) updatePickups() {
	recipient := s.state.LastTouchedBy
	if !recipient.Valid() {
		return
	}
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PowerupComponent](s.em) {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		p, _ := ecs.GetComponent[*components.PowerupComponent](s.em, id)
		if math.Hypot(puck.X-p.X, puck.Y-p.Y) >= puck.Radius+p.Radius {
			continue
		}

		s.remove(id)
		s.dispatch(p.Kind, recipient)
		log.Printf("[PowerupSystem] Player %d collected %s", recipient, p.Kind)
		s.events.Push(event.Event{Type: event.PowerupCollected, ID: uint64(id), Kind: int(p.Kind), Player: int(recipient)})
	}
}

// dispatch 发放道具效果
//
//	smaller-goal: 自己的球门 -5%
//	bigger-goal:  对手的球门 +5%
//	giant-paddle: 自己的球拍变大
//	tiny-paddle:  对手的球拍变小
func (s *PowerupSystem) dispatch(kind components.PowerupKind, recipient components.PlayerID) {
	opponent := recipient.Opponent()
	switch kind {
	case components.PowerupSmallerGoal:
		s.state.SetGoalHeight(recipient, s.state.GoalHeight(recipient)-config.GoalHeightStep)
	case components.PowerupBiggerGoal:
		s.state.SetGoalHeight(opponent, s.state.GoalHeight(opponent)+config.GoalHeightStep)
	case components.PowerupGiantPaddle:
		if id, _, ok := findPaddle(s.em, recipient); ok {
			s.effects.ApplyEffect(id, components.EffectGiantPaddle, config.PaddleEffectDuration)
		}
	case components.PowerupTinyPaddle:
		if id, _, ok := findPaddle(s.em, opponent); ok {
			s.effects.ApplyEffect(id, components.EffectTinyPaddle, config.PaddleEffectDuration)
		}
	}
}

// Clear 移除全部道具并重置生成计时（新一局开始时调用）
func (s *PowerupSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.PowerupComponent](s.em) {
		if !s.em.IsMarkedForDestroy(id) {
			s.remove(id)
		}
	}
	s.spawnTimer = 0
}

func (s *PowerupSystem) remove(id ecs.EntityID) {
	if visual, ok := ecs.GetComponent[*components.VisualComponent](s.em, id); ok && visual.Handle != nil && s.visuals != nil {
		s.visuals.ReleaseVisual(visual.Handle)
	}
	s.em.DestroyEntity(id)
}
