package systems

import (
	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
)

// effectModifier 状态效果对半径和摩擦的倍率
type effectModifier struct {
	kind     components.EffectKind
	radius   float64
	friction float64
}

// effectPrecedence 按优先级从高到低排列，同时存在多个效果时只应用第一个命中的
var effectPrecedence = []effectModifier{
	{kind: components.EffectGiantPaddle, radius: config.GiantPaddleRadiusMultiplier, friction: 1.0},
	{kind: components.EffectTinyPaddle, radius: config.TinyPaddleRadiusMultiplier, friction: 1.0},
}

// StatusEffectSystem 每帧重新计算实体的有效半径/摩擦，并推进效果计时
type StatusEffectSystem struct {
	em    *ecs.EntityManager
	state *MatchState
	// dragScale 拖拽中的球拍半径倍率
	dragScale float64
}

// NewStatusEffectSystem 创建状态效果系统
//
// 参数:
//   - em: 实体管理器
//   - state: 对局状态（用于判断拖拽）
//   - dragSizeIncreasePercent: 拖拽时的半径增加百分比
func NewStatusEffectSystem(em *ecs.EntityManager, state *MatchState, dragSizeIncreasePercent float64) *StatusEffectSystem {
	return &StatusEffectSystem{
		em:        em,
		state:     state,
		dragScale: 1 + dragSizeIncreasePercent/100,
	}
}

// ApplyEffect 为实体施加效果，同类效果只刷新计时
func (s *StatusEffectSystem) ApplyEffect(id ecs.EntityID, kind components.EffectKind, duration float64) bool {
	effects, ok := ecs.GetComponent[*components.StatusEffectsComponent](s.em, id)
	if !ok {
		return false
	}
	effects.Apply(kind, duration)
	return true
}

// Update 重算有效值并推进计时
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.em) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)

		body.Radius = body.BaseRadius
		body.Friction = body.BaseFriction

		effects, hasEffects := ecs.GetComponent[*components.StatusEffectsComponent](s.em, id)
		if hasEffects {
			for _, mod := range effectPrecedence {
				if effects.Has(mod.kind) {
					body.Radius *= mod.radius
					body.Friction *= mod.friction
					break
				}
			}
		}

		if s.state.IsDragged(id) {
			body.Radius *= s.dragScale
		}

		if hasEffects {
			tickEffects(effects, deltaTime)
		}
	}
}

// tickEffects 推进计时并移除到期效果
// 从尾部向前遍历，原地删除不会跳过元素，且保持剩余效果的顺序
func tickEffects(c *components.StatusEffectsComponent, deltaTime float64) {
	for i := range c.Effects {
		c.Effects[i].Timer -= deltaTime
	}
	for i := len(c.Effects) - 1; i >= 0; i-- {
		if c.Effects[i].Timer <= 0 {
			c.Effects = append(c.Effects[:i], c.Effects[i+1:]...)
		}
	}
}

// ClearAll 移除所有实体的状态效果并恢复基础半径/摩擦
func (s *StatusEffectSystem) ClearAll() {
	for _, id := range ecs.GetEntitiesWith2[*components.StatusEffectsComponent, *components.BodyComponent](s.em) {
		effects, _ := ecs.GetComponent[*components.StatusEffectsComponent](s.em, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)
		effects.Clear()
		body.Radius = body.BaseRadius
		body.Friction = body.BaseFriction
	}
}
