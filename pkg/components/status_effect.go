package components

// EffectKind 状态效果类型
type EffectKind int

const (
	EffectGiantPaddle EffectKind = iota + 1
	EffectTinyPaddle
)

// String 返回效果名称
func (k EffectKind) String() string {
	switch k {
	case EffectGiantPaddle:
		return "giant-paddle"
	case EffectTinyPaddle:
		return "tiny-paddle"
	default:
		return "unknown"
	}
}

// StatusEffect 单个计时状态效果
type StatusEffect struct {
	Kind     EffectKind
	Timer    float64 // 剩余时间（秒）
	Duration float64 // 最近一次施加时的持续时间
}

// StatusEffectsComponent 实体上按施加顺序排列的状态效果
// 同一类型最多一条记录，重复施加只刷新计时
type StatusEffectsComponent struct {
	Effects []StatusEffect
}

// Apply 施加效果：已存在同类型则重置计时，否则追加
func (c *StatusEffectsComponent) Apply(kind EffectKind, duration float64) {
	for i := range c.Effects {
		if c.Effects[i].Kind == kind {
			c.Effects[i].Timer = duration
			c.Effects[i].Duration = duration
			return
		}
	}
	c.Effects = append(c.Effects, StatusEffect{Kind: kind, Timer: duration, Duration: duration})
}

// Has 检查是否存在指定类型的效果
func (c *StatusEffectsComponent) Has(kind EffectKind) bool {
	for _, e := range c.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Find 返回指定类型的效果
func (c *StatusEffectsComponent) Find(kind EffectKind) (StatusEffect, bool) {
	for _, e := range c.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return StatusEffect{}, false
}

// Clear 移除全部效果
func (c *StatusEffectsComponent) Clear() {
	c.Effects = c.Effects[:0]
}
