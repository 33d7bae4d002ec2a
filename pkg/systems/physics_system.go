package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
)

// PhysicsSystem 积分位置、施加摩擦，并把球拍限制在各自半场内
//
// 被拖拽的实体不积分，速度由位置差推导，松手后保留甩出的动量。
type PhysicsSystem struct {
	em     *ecs.EntityManager
	state  *MatchState
	width  float64
	height float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - state: 对局状态（拖拽绑定、比赛阶段）
//   - field: 场地尺寸
func NewPhysicsSystem(em *ecs.EntityManager, state *MatchState, field config.FieldConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:     em,
		state:  state,
		width:  field.Width,
		height: field.Height,
	}
}

// Update 推进一帧
//
// 比赛结束阶段冰球冻结，只有球拍继续运动。
func (s *PhysicsSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.em) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)

		frozen := s.state.IsGameOver() && ecs.HasComponent[*components.PuckComponent](s.em, id)
		switch {
		case frozen:
		case s.state.IsDragged(id):
			if deltaTime > 0 {
				body.VX = (body.X - body.PrevX) / deltaTime
				body.VY = (body.Y - body.PrevY) / deltaTime
			}
		default:
			integrate(body, deltaTime)
		}
	}

	s.ClampPaddles()

	// 无论是否拖拽，每个实体都在帧末记录位置
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.em) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)
		body.PrevX, body.PrevY = body.X, body.Y
	}
}

// integrate 位置积分 + 摩擦 + 低速归零
func integrate(b *components.BodyComponent, deltaTime float64) {
	b.X += b.VX * deltaTime
	b.Y += b.VY * deltaTime

	b.VX *= b.Friction
	b.VY *= b.Friction

	if math.Abs(b.VX) < config.VelocitySnapThreshold {
		b.VX = 0
	}
	if math.Abs(b.VY) < config.VelocitySnapThreshold {
		b.VY = 0
	}
}

// ClampPaddles 将球拍限制在本方半场和上下边界内（按当前有效半径内缩）
func (s *PhysicsSystem) ClampPaddles() {
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.BodyComponent](s.em) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](s.em, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)

		minX, maxX := s.HalfBounds(paddle.Player, body.Radius)
		body.X = clampRange(body.X, minX, maxX)
		body.Y = clampRange(body.Y, body.Radius, s.height-body.Radius)
	}
}

// HalfBounds 返回玩家球拍圆心允许的 X 范围
func (s *PhysicsSystem) HalfBounds(player components.PlayerID, radius float64) (minX, maxX float64) {
	mid := s.width / 2
	if player == components.PlayerTwo {
		return mid + radius, s.width - radius
	}
	return radius, mid - radius
}
