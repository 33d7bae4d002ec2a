package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SamplePointers 读取 ebiten 当前按下的触摸点和鼠标左键
//
// 有触摸时忽略鼠标，避免移动端浏览器模拟出的鼠标事件重复抓取球拍。
// 坐标为 Layout 返回的逻辑坐标。
func SamplePointers(buf []PointerSample) []PointerSample {
	buf = buf[:0]

	var touchIDs []ebiten.TouchID
	touchIDs = ebiten.AppendTouchIDs(touchIDs)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, PointerSample{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if len(touchIDs) > 0 {
		return buf
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, PointerSample{ID: MousePointerID, X: float64(x), Y: float64(y)})
	}
	return buf
}
