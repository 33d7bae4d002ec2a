package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
)

// DragSystem 把外部指针绑定到球拍
//
// 指针事件在两帧之间到达，按到达顺序直接修改绑定表和球拍位置；
// 速度由下一帧的物理系统根据位置差推导。
type DragSystem struct {
	em    *ecs.EntityManager
	state *MatchState
	cfg   config.DragConfig
}

// NewDragSystem 创建拖拽系统
func NewDragSystem(em *ecs.EntityManager, state *MatchState, cfg config.DragConfig) *DragSystem {
	return &DragSystem{em: em, state: state, cfg: cfg}
}

// PointerDown 绑定抓取范围（半径 × 倍率）内最近的未绑定球拍
//
// 返回:
//   - ecs.EntityID: 被绑定的球拍
//   - bool: 是否绑定成功
func (s *DragSystem) PointerDown(pointer PointerID, x, y float64) (ecs.EntityID, bool) {
	if _, bound := s.state.Drags[pointer]; bound {
		return 0, false
	}
	if !s.cfg.MultiTouch && len(s.state.Drags) > 0 {
		return 0, false
	}

	var (
		best     ecs.EntityID
		bestDist = math.Inf(1)
	)
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.BodyComponent](s.em) {
		if s.state.IsDragged(id) {
			continue
		}
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)
		d := math.Hypot(x-body.X, y-body.Y)
		if d <= body.Radius*s.cfg.CaptureMultiplier && d < bestDist {
			best, bestDist = id, d
		}
	}
	if best == 0 {
		return 0, false
	}

	s.state.Drags[pointer] = best
	return best, true
}

// PointerMove 把已绑定的球拍移到指针位置，未绑定的指针忽略
func (s *DragSystem) PointerMove(pointer PointerID, x, y float64) {
	id, ok := s.state.Drags[pointer]
	if !ok {
		return
	}
	body, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
	if !ok {
		return
	}
	body.X, body.Y = x, y
}

// PointerUp 解除绑定，球拍保留松手前推导出的速度
func (s *DragSystem) PointerUp(pointer PointerID) {
	delete(s.state.Drags, pointer)
}

// ReleaseAll 解除全部绑定（宿主失去焦点时）
func (s *DragSystem) ReleaseAll() {
	for pointer := range s.state.Drags {
		delete(s.state.Drags, pointer)
	}
}
