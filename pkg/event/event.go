// Package event 定义模拟向宿主（渲染、音效、记分牌）发出的通知
//
// 通知只用于表现层，模拟本身从不读取它们。
// 单线程使用：模拟在一帧内 Push，宿主在帧与帧之间 Drain。
package event

// Type 通知类型
type Type int

const (
	// Collision 球拍击中冰球并施加了冲量
	// Player: 球拍所属玩家
	Collision Type = iota + 1

	// GoalScored 进球（非决胜球也会发出）
	// Player: 得分玩家, Value: 得分后的比分
	GoalScored

	// PuckIncoming 普通进球或开局后冰球重新发球
	PuckIncoming

	// ZoneCountdownStarted 半场停留倒计时开始
	// Zone: 当前半场, Value: 倒计时整数秒
	ZoneCountdownStarted

	// ZoneTimeout 停留超时，冰球被移到对方半场
	// Zone: 超时前所在半场
	ZoneTimeout

	// PowerupSpawned 道具生成
	// ID: 道具实体, Kind: 道具类型
	PowerupSpawned

	// PowerupExpired 道具过期消失
	PowerupExpired

	// PowerupCollected 道具被拾取
	// Player: 获得道具的玩家
	PowerupCollected

	// GameOver 达到胜利分数
	// Player: 胜者
	GameOver

	// NewGameCountdownStarted 胜者展示结束，开始新一局倒计时
	// Value: 倒计时整数秒
	NewGameCountdownStarted

	// MatchReset 新一局开始（比分清零）
	MatchReset
)

// String 返回通知名称
func (t Type) String() string {
	switch t {
	case Collision:
		return "collision"
	case GoalScored:
		return "goal-scored"
	case PuckIncoming:
		return "puck-incoming"
	case ZoneCountdownStarted:
		return "zone-countdown-started"
	case ZoneTimeout:
		return "zone-timeout"
	case PowerupSpawned:
		return "powerup-spawned"
	case PowerupExpired:
		return "powerup-expired"
	case PowerupCollected:
		return "powerup-collected"
	case GameOver:
		return "game-over"
	case NewGameCountdownStarted:
		return "new-game-countdown-started"
	case MatchReset:
		return "match-reset"
	default:
		return "unknown"
	}
}

// Event 单条通知
// 未使用的字段保持零值
type Event struct {
	Type   Type
	Player int
	Zone   int
	Value  int
	ID     uint64
	Kind   int
}

// Queue 按发生顺序保存通知
type Queue struct {
	events []Event
}

// NewQueue 创建空队列
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push 追加通知
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len 返回未取出的通知数量
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain 取出全部通知（FIFO）并清空队列
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
