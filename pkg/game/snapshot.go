package game

import (
	"image/color"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/systems"
)

// Circle 渲染用的圆形实体
type Circle struct {
	X, Y   float64
	Radius float64
}

// PaddleView 球拍及其玩家信息
type PaddleView struct {
	Circle
	Player  components.PlayerID
	Name    string
	Color   color.RGBA
	Score   int
	Dragged bool
	Effects []components.EffectKind
}

// PowerupView 场上道具
type PowerupView struct {
	Circle
	ID          ecs.EntityID
	Kind        components.PowerupKind
	LifePercent float64
}

// GoalView 球门口的 Y 范围
type GoalView struct {
	Top, Bottom   float64
	HeightPercent float64
}

// Snapshot 一帧结束时渲染所需的全部数据（值拷贝，可跨帧保存）
type Snapshot struct {
	Width, Height float64

	Puck        Circle
	PuckVisible bool

	// Paddles 下标 0 为玩家1，1 为玩家2
	Paddles [2]PaddleView
	// Goals 下标 0 为左侧（玩家1防守），1 为右侧
	Goals    [2]GoalView
	Powerups []PowerupView

	Zone systems.Zone
	// ZoneCountdown 半场停留倒计时的显示值，0 表示未在倒计时
	ZoneCountdown int

	Phase  systems.GamePhase
	Winner components.PlayerID
	// ResetCountdown 新一局倒计时的显示值，仅在 PhaseGameOverCountdown 时非 0
	ResetCountdown int
}

// Snapshot 返回当前帧的渲染数据，未初始化时返回零值
func (m *Match) Snapshot() Snapshot {
	if !m.initialized {
		return Snapshot{}
	}

	snap := Snapshot{
		Width:          m.cfg.Field.Width,
		Height:         m.cfg.Field.Height,
		Zone:           m.state.Zone.Current,
		Phase:          m.state.Phase,
		Winner:         m.state.Winner,
		ResetCountdown: m.score.CountdownValue(),
	}
	if m.state.Zone.CountdownActive {
		snap.ZoneCountdown = m.state.Zone.CountdownValue
	}

	if body, ok := ecs.GetComponent[*components.BodyComponent](m.em, m.puck); ok {
		snap.Puck = Circle{X: body.X, Y: body.Y, Radius: body.Radius}
	}
	if tag, ok := ecs.GetComponent[*components.PuckComponent](m.em, m.puck); ok {
		snap.PuckVisible = !tag.Hidden
	}

	for i, id := range m.paddles {
		player := components.PlayerID(i + 1)
		view := PaddleView{Player: player, Dragged: m.state.IsDragged(id)}
		if body, ok := ecs.GetComponent[*components.BodyComponent](m.em, id); ok {
			view.Circle = Circle{X: body.X, Y: body.Y, Radius: body.Radius}
		}
		if record, ok := ecs.GetComponent[*components.PlayerRecordComponent](m.em, id); ok {
			view.Name = record.Name
			view.Color = record.RGBA
			view.Score = record.Score
		}
		if effects, ok := ecs.GetComponent[*components.StatusEffectsComponent](m.em, id); ok {
			for _, e := range effects.Effects {
				view.Effects = append(view.Effects, e.Kind)
			}
		}
		snap.Paddles[i] = view

		top, bottom := m.boundary.GoalMouth(player)
		snap.Goals[i] = GoalView{Top: top, Bottom: bottom, HeightPercent: m.state.GoalHeight(player)}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PowerupComponent](m.em) {
		if m.em.IsMarkedForDestroy(id) {
			continue
		}
		p, _ := ecs.GetComponent[*components.PowerupComponent](m.em, id)
		snap.Powerups = append(snap.Powerups, PowerupView{
			ID:          id,
			Circle:      Circle{X: p.X, Y: p.Y, Radius: p.Radius},
			Kind:        p.Kind,
			LifePercent: p.LifePercent(),
		})
	}

	return snap
}
