package config

// 玩法常量
// 本文件定义了对局中不随配置文件变化的规则参数

// 碰撞与物理参数
const (
	// PaddlePuckRestitution 是球拍与冰球碰撞的恢复系数
	PaddlePuckRestitution = 0.8

	// HitPowerFactor 是碰撞后叠加到冰球上的球拍速度比例（击球力度）
	HitPowerFactor = 0.5

	// PaddlePushSpeedThreshold 球拍速度超过该值（单位/秒）时，即使两者并未相互接近也施加冲量
	PaddlePushSpeedThreshold = 150.0

	// VelocitySnapThreshold 速度分量绝对值低于该值时直接归零，防止无限缓慢滑动
	VelocitySnapThreshold = 1.0

	// WallRestitution 是冰球与边墙反弹的恢复系数
	WallRestitution = 0.9
)

// 球门与得分参数
const (
	// GoalScoreMargin 冰球越过场地左右边缘多少单位判定为进球
	GoalScoreMargin = 30.0

	// GoalHeightStep 球门道具每次改变的高度（场地高度百分比）
	GoalHeightStep = 5.0

	// MinGoalHeightPercent 球门高度下限（场地高度百分比）
	MinGoalHeightPercent = 5.0

	// MaxGoalHeightPercent 球门高度上限（场地高度百分比）
	MaxGoalHeightPercent = 90.0
)

// 状态效果参数
const (
	// GiantPaddleRadiusMultiplier 巨型球拍效果的半径倍率
	GiantPaddleRadiusMultiplier = 1.5

	// TinyPaddleRadiusMultiplier 迷你球拍效果的半径倍率
	TinyPaddleRadiusMultiplier = 0.7

	// PaddleEffectDuration 道具授予的球拍效果持续时间（秒）
	PaddleEffectDuration = 8.0
)

// 道具参数
const (
	// PowerupLifespan 道具在场上存在的时间（秒）
	PowerupLifespan = 10.0

	// PowerupSpawnChance 每次生成间隔到达时实际生成道具的概率
	PowerupSpawnChance = 0.5
)

// 计时参数
const (
	// ZoneCountdownSeconds 半场停留剩余时间小于等于该值时开始倒计时播报
	ZoneCountdownSeconds = 3.0

	// MinGameOverDisplay 比赛结束展示时长下限（秒），小于该值时使用默认值
	MinGameOverDisplay = 1.0

	// DefaultGameOverDisplay 比赛结束展示默认时长（秒）
	DefaultGameOverDisplay = 3.0

	// DefaultResetCountdown 新一局开始前倒计时默认时长（秒）
	DefaultResetCountdown = 3.0
)

// ClampGoalHeight 将球门高度限制在 [MinGoalHeightPercent, MaxGoalHeightPercent] 范围内
func ClampGoalHeight(percent float64) float64 {
	if percent < MinGoalHeightPercent {
		return MinGoalHeightPercent
	}
	if percent > MaxGoalHeightPercent {
		return MaxGoalHeightPercent
	}
	return percent
}

// EffectiveGameOverDisplay 返回实际使用的比赛结束展示时长
// 未设置或小于下限时回退到默认值
func EffectiveGameOverDisplay(configured float64) float64 {
	if configured < MinGameOverDisplay {
		return DefaultGameOverDisplay
	}
	return configured
}

// EffectiveResetCountdown 返回实际使用的新一局倒计时时长
func EffectiveResetCountdown(configured float64) float64 {
	if configured <= 0 {
		return DefaultResetCountdown
	}
	return configured
}
