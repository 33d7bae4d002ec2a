package systems

import (
	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
)

// Zone 冰球所在半场
type Zone int

const (
	// ZoneNone 尚未判定
	ZoneNone Zone = iota
	// ZoneLeft 左半场（玩家1的半场）
	ZoneLeft
	// ZoneRight 右半场（玩家2的半场）
	ZoneRight
)

// Opposite 返回对面的半场
func (z Zone) Opposite() Zone {
	switch z {
	case ZoneLeft:
		return ZoneRight
	case ZoneRight:
		return ZoneLeft
	default:
		return ZoneNone
	}
}

// GamePhase 对局阶段
type GamePhase int

const (
	// PhaseNormal 冰球在场上
	PhaseNormal GamePhase = iota
	// PhaseGameOverDisplay 展示胜者，冰球冻结并隐藏
	PhaseGameOverDisplay
	// PhaseGameOverCountdown 新一局开始前的倒计时
	PhaseGameOverCountdown
)

// String 返回阶段名称
func (p GamePhase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseGameOverDisplay:
		return "game-over"
	case PhaseGameOverCountdown:
		return "new-game-countdown"
	default:
		return "unknown"
	}
}

// ZoneState 半场停留计时
type ZoneState struct {
	Current    Zone
	StallTimer float64
	// CountdownActive 倒计时播报已发出
	CountdownActive bool
	// CountdownValue 向上取整的剩余秒数，仅在 CountdownActive 时有意义
	CountdownValue int
}

// PointerID 外部指针标识（触摸ID，鼠标使用固定值）
type PointerID int

// MatchState 对局的离散规则状态
//
// 由 game.Match 持有，并以指针显式传给各个系统。
type MatchState struct {
	// LastTouchedBy 最后触碰冰球的玩家，PlayerNone 表示无
	LastTouchedBy components.PlayerID

	// Drags 指针 -> 被拖拽的球拍实体
	Drags map[PointerID]ecs.EntityID

	// goalHeights 双方球门高度（场地高度百分比），下标为 PlayerID-1
	goalHeights [2]float64

	Zone ZoneState

	Phase GamePhase
	// PhaseTimer 当前比赛结束阶段剩余时间
	PhaseTimer float64
	// Winner 最近一次比赛结束的胜者
	Winner components.PlayerID
}

// NewMatchState 创建初始状态
func NewMatchState(defaultGoalHeight float64) *MatchState {
	s := &MatchState{
		Drags: make(map[PointerID]ecs.EntityID),
	}
	s.ResetGoalHeights(defaultGoalHeight)
	return s
}

// GoalHeight 返回玩家自己球门的高度百分比
func (s *MatchState) GoalHeight(p components.PlayerID) float64 {
	if !p.Valid() {
		return 0
	}
	return s.goalHeights[p-1]
}

// SetGoalHeight 设置玩家球门高度，结果限制在 5%~90%
func (s *MatchState) SetGoalHeight(p components.PlayerID, percent float64) {
	if !p.Valid() {
		return
	}
	s.goalHeights[p-1] = config.ClampGoalHeight(percent)
}

// ResetGoalHeights 恢复默认球门高度
func (s *MatchState) ResetGoalHeights(percent float64) {
	s.SetGoalHeight(components.PlayerOne, percent)
	s.SetGoalHeight(components.PlayerTwo, percent)
}

// ResetZone 清空半场停留计时和倒计时播报
func (s *MatchState) ResetZone() {
	s.Zone = ZoneState{}
}

// IsDragged 实体是否正被某个指针拖拽
func (s *MatchState) IsDragged(id ecs.EntityID) bool {
	for _, bound := range s.Drags {
		if bound == id {
			return true
		}
	}
	return false
}

// IsGameOver 是否处于比赛结束的任一阶段
func (s *MatchState) IsGameOver() bool {
	return s.Phase != PhaseNormal
}
