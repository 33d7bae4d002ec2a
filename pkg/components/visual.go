package components

import "image/color"

// VisualComponent 持有外部渲染层创建的视觉对象句柄
//
// 句柄由渲染协作方拥有，模拟只会写入、不会读取。句柄可能为 nil，
// 也可能只实现了部分能力接口；每次写入都先检查能力，缺失时静默跳过。
type VisualComponent struct {
	Handle interface{}
}

// LifeIndicator 能显示剩余寿命百分比的视觉对象（道具）
type LifeIndicator interface {
	SetLifePercent(percent float64)
}

// HitFeedback 能播放碰撞反馈动画的视觉对象（球拍）
type HitFeedback interface {
	TriggerHit()
}

// Nameplate 能显示玩家名称与颜色的视觉对象（球拍、记分牌）
type Nameplate interface {
	SetNameplate(name string, c color.RGBA)
}

// Visibility 能切换可见性的视觉对象（冰球）
type Visibility interface {
	SetVisible(visible bool)
}

// WriteLifePercent 写入剩余寿命百分比，句柄不支持时返回 false
func (v *VisualComponent) WriteLifePercent(percent float64) bool {
	if v == nil {
		return false
	}
	if h, ok := v.Handle.(LifeIndicator); ok {
		h.SetLifePercent(percent)
		return true
	}
	return false
}

// WriteHit 触发碰撞反馈
func (v *VisualComponent) WriteHit() bool {
	if v == nil {
		return false
	}
	if h, ok := v.Handle.(HitFeedback); ok {
		h.TriggerHit()
		return true
	}
	return false
}

// WriteNameplate 写入名称与颜色
func (v *VisualComponent) WriteNameplate(name string, c color.RGBA) bool {
	if v == nil {
		return false
	}
	if h, ok := v.Handle.(Nameplate); ok {
		h.SetNameplate(name, c)
		return true
	}
	return false
}

// WriteVisible 写入可见性
func (v *VisualComponent) WriteVisible(visible bool) bool {
	if v == nil {
		return false
	}
	if h, ok := v.Handle.(Visibility); ok {
		h.SetVisible(visible)
		return true
	}
	return false
}
