package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
)

// BoundarySystem 处理冰球与边墙、球门口的碰撞
//
// 玩家1防守左侧球门，玩家2防守右侧球门。球门口在左右边墙的垂直居中位置，
// 高度为场地高度 × 球门高度百分比。冰球圆心位于球门口范围内时不反弹，
// 可以穿过边线进入球门通道，由得分系统判定进球。
type BoundarySystem struct {
	em     *ecs.EntityManager
	state  *MatchState
	width  float64
	height float64
}

// NewBoundarySystem 创建边界系统
func NewBoundarySystem(em *ecs.EntityManager, state *MatchState, field config.FieldConfig) *BoundarySystem {
	return &BoundarySystem{
		em:     em,
		state:  state,
		width:  field.Width,
		height: field.Height,
	}
}

// GoalMouth 返回玩家球门口的 Y 范围
func (s *BoundarySystem) GoalMouth(player components.PlayerID) (top, bottom float64) {
	half := s.height * s.state.GoalHeight(player) / 100 / 2
	mid := s.height / 2
	return mid - half, mid + half
}

// Update 反弹并修正位置
func (s *BoundarySystem) Update() {
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}

	// 已越过边线的冰球在球门通道内运动，只受通道上下沿约束
	if puck.X < 0 || puck.X > s.width {
		owner := components.PlayerOne
		if puck.X > s.width {
			owner = components.PlayerTwo
		}
		top, bottom := s.GoalMouth(owner)
		if puck.Y < top {
			puck.Y = top
			puck.VY = math.Abs(puck.VY) * config.WallRestitution
		} else if puck.Y > bottom {
			puck.Y = bottom
			puck.VY = -math.Abs(puck.VY) * config.WallRestitution
		}
		return
	}

	r := puck.Radius

	if puck.Y < r {
		puck.Y = r
		puck.VY = math.Abs(puck.VY) * config.WallRestitution
	} else if puck.Y > s.height-r {
		puck.Y = s.height - r
		puck.VY = -math.Abs(puck.VY) * config.WallRestitution
	}

	if puck.X < r && !s.inMouth(components.PlayerOne, puck.Y) {
		puck.X = r
		puck.VX = math.Abs(puck.VX) * config.WallRestitution
	} else if puck.X > s.width-r && !s.inMouth(components.PlayerTwo, puck.Y) {
		puck.X = s.width - r
		puck.VX = -math.Abs(puck.VX) * config.WallRestitution
	}
}

func (s *BoundarySystem) inMouth(player components.PlayerID, y float64) bool {
	top, bottom := s.GoalMouth(player)
	return y >= top && y <= bottom
}
