package components

import "image/color"

// PlayerRecordComponent 玩家记录，挂在该玩家的球拍实体上
// 名称和颜色每帧可能从实时配置重新同步，比分只在新一局开始时清零
type PlayerRecordComponent struct {
	Name  string
	Color string
	RGBA  color.RGBA
	Score int
}
