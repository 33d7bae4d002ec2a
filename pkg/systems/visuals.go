package systems

import "github.com/decker502/airhockey/pkg/components"

// VisualFactory 由渲染协作方实现，为实体创建视觉对象
//
// 返回的句柄只会被写入（见 components.VisualComponent 的能力接口）。
// 返回 nil 表示该实体暂无视觉对象，模拟照常运行。
type VisualFactory interface {
	NewPaddleVisual(player components.PlayerID) interface{}
	NewPuckVisual() interface{}
	NewPowerupVisual(kind components.PowerupKind) interface{}
	// ReleaseVisual 实体被移除时调用
	ReleaseVisual(handle interface{})
}
