package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

// CollisionSystem 处理球拍与冰球的碰撞
type CollisionSystem struct {
	em       *ecs.EntityManager
	state    *MatchState
	events   *event.Queue
	maxSpeed float64
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - maxSpeed: 冰球速度上限
func NewCollisionSystem(em *ecs.EntityManager, state *MatchState, events *event.Queue, maxSpeed float64) *CollisionSystem {
	return &CollisionSystem{
		em:       em,
		state:    state,
		events:   events,
		maxSpeed: maxSpeed,
	}
}

// Update 依次检查玩家1、玩家2的球拍
func (s *CollisionSystem) Update() {
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}

	for _, player := range []components.PlayerID{components.PlayerOne, components.PlayerTwo} {
		id, paddle, ok := findPaddle(s.em, player)
		if !ok {
			continue
		}
		if s.Resolve(paddle, puck, player) {
			if visual, ok := ecs.GetComponent[*components.VisualComponent](s.em, id); ok {
				visual.WriteHit()
			}
			s.events.Push(event.Event{Type: event.Collision, Player: int(player)})
		}
	}
}

// Resolve 解析一次球拍-冰球碰撞
//
// 重叠时记录触球玩家，并沿法线把冰球推出到刚好接触（只修正位置，不增加能量）。
// 两者相互接近，或球拍速度超过阈值时施加冲量；后一种情况相对速度取负绝对值，
// 保证冲量总是把冰球推离球拍。冲量之后叠加一部分球拍速度并限制冰球速度。
//
// 返回:
//   - bool: 是否施加了冲量
func (s *CollisionSystem) Resolve(paddle, puck *components.BodyComponent, player components.PlayerID) bool {
	dx := puck.X - paddle.X
	dy := puck.Y - paddle.Y
	dist := math.Hypot(dx, dy)
	minDist := paddle.Radius + puck.Radius
	if dist <= 0 || dist >= minDist {
		return false
	}

	s.state.LastTouchedBy = player

	nx := dx / dist
	ny := dy / dist

	overlap := minDist - dist
	puck.X += nx * overlap
	puck.Y += ny * overlap

	relVX := puck.VX - paddle.VX
	relVY := puck.VY - paddle.VY
	dot := relVX*nx + relVY*ny

	approaching := dot < 0
	swinging := speedOf(paddle) > config.PaddlePushSpeedThreshold
	if !approaching && !swinging {
		return false
	}
	if !approaching {
		dot = -math.Abs(dot)
	}

	impulse := -(1 + config.PaddlePuckRestitution) * dot / (1/puck.Mass + 1/paddle.Mass)
	puck.VX += impulse / puck.Mass * nx
	puck.VY += impulse / puck.Mass * ny

	puck.VX += paddle.VX * config.HitPowerFactor
	puck.VY += paddle.VY * config.HitPowerFactor

	clampSpeed(puck, s.maxSpeed)
	return true
}
