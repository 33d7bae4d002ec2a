// Package utils 提供宿主层的通用工具：指针跟踪、平台检测、存储目录
package utils

import "sort"

// MousePointerID 鼠标左键使用的固定指针ID（触摸ID从 0 开始）
const MousePointerID = -1

// PointerSample 本帧处于按下状态的一个指针
type PointerSample struct {
	ID   int
	X, Y float64
}

// PointerEventType 指针事件类型
type PointerEventType int

const (
	PointerDown PointerEventType = iota
	PointerMove
	PointerUp
)

// PointerEvent 由相邻两帧的按下集合推导出的事件
type PointerEvent struct {
	Type PointerEventType
	ID   int
	X, Y float64
}

// PointerTracker 把每帧的按下指针集合转换为 down/move/up 事件
//
// 同时支持多个触摸点和鼠标。事件顺序固定：先 up，再 move，最后 down，
// 同类事件按指针ID升序，这样松开一个手指和按下另一个手指发生在同一帧时，
// 被释放的球拍可以立刻被新手指抓住。
type PointerTracker struct {
	active map[int]PointerSample
}

// NewPointerTracker 创建空的跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{active: make(map[int]PointerSample)}
}

// Update 输入本帧所有按下的指针，返回事件列表
func (t *PointerTracker) Update(samples []PointerSample) []PointerEvent {
	current := make(map[int]PointerSample, len(samples))
	for _, s := range samples {
		current[s.ID] = s
	}

	var ups, moves, downs []PointerEvent
	for id, prev := range t.active {
		if _, ok := current[id]; !ok {
			ups = append(ups, PointerEvent{Type: PointerUp, ID: id, X: prev.X, Y: prev.Y})
		}
	}
	for id, s := range current {
		prev, ok := t.active[id]
		switch {
		case !ok:
			downs = append(downs, PointerEvent{Type: PointerDown, ID: id, X: s.X, Y: s.Y})
		case prev.X != s.X || prev.Y != s.Y:
			moves = append(moves, PointerEvent{Type: PointerMove, ID: id, X: s.X, Y: s.Y})
		}
	}

	t.active = current

	events := make([]PointerEvent, 0, len(ups)+len(moves)+len(downs))
	for _, group := range [][]PointerEvent{ups, moves, downs} {
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		events = append(events, group...)
	}
	return events
}

// Reset 释放所有指针，返回对应的 up 事件
func (t *PointerTracker) Reset() []PointerEvent {
	return t.Update(nil)
}

// Active 返回当前按下的指针数量
func (t *PointerTracker) Active() int {
	return len(t.active)
}
