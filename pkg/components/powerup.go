package components

// PowerupKind 道具类型
type PowerupKind int

const (
	PowerupSmallerGoal PowerupKind = iota
	PowerupBiggerGoal
	PowerupGiantPaddle
	PowerupTinyPaddle

	// PowerupKindCount 道具类型数量，用于随机选取
	PowerupKindCount
)

// String 返回道具名称
func (k PowerupKind) String() string {
	switch k {
	case PowerupSmallerGoal:
		return "smaller-goal"
	case PowerupBiggerGoal:
		return "bigger-goal"
	case PowerupGiantPaddle:
		return "giant-paddle"
	case PowerupTinyPaddle:
		return "tiny-paddle"
	default:
		return "unknown"
	}
}

// PowerupComponent 场上的道具（静止的圆形拾取区域）
type PowerupComponent struct {
	X, Y        float64
	Radius      float64
	Kind        PowerupKind
	Lifespan    float64 // 剩余存在时间（秒）
	MaxLifespan float64
}

// LifePercent 返回剩余存在时间百分比 [0, 100]
func (p *PowerupComponent) LifePercent() float64 {
	if p.MaxLifespan <= 0 || p.Lifespan <= 0 {
		return 0
	}
	return p.Lifespan / p.MaxLifespan * 100
}
