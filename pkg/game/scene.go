package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 宿主中的一个画面（对局、暂停等）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 推进场景，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：窗口关闭时保存场景相关的设置
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 移动端进入后台
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
