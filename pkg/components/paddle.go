package components

// PlayerID 玩家编号：1 为左半场玩家，2 为右半场玩家，0 表示无
type PlayerID int

const (
	PlayerNone PlayerID = iota
	PlayerOne
	PlayerTwo
)

// Opponent 返回对手编号
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return PlayerNone
	}
}

// Valid 是否为有效玩家
func (p PlayerID) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// PaddleComponent 标记球拍实体及其所属玩家
type PaddleComponent struct {
	Player PlayerID
}

// PuckComponent 标记冰球实体
type PuckComponent struct {
	// Hidden 比赛结束展示阶段冰球被冻结并隐藏
	Hidden bool
}
