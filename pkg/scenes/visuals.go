package scenes

import (
	"image/color"

	"github.com/decker502/airhockey/pkg/components"
)

// hitFlashDuration 球拍击球后高亮的时长（秒）
const hitFlashDuration = 0.15

// entityVisual 场景持有的视觉对象，模拟只通过能力接口写入
type entityVisual struct {
	name    string
	color   color.RGBA
	visible bool
	life    float64
	flash   float64
}

func (v *entityVisual) SetNameplate(name string, c color.RGBA) {
	v.name = name
	v.color = c
}

func (v *entityVisual) SetVisible(visible bool) { v.visible = visible }

func (v *entityVisual) SetLifePercent(percent float64) { v.life = percent }

func (v *entityVisual) TriggerHit() { v.flash = hitFlashDuration }

// decay 推进击球高亮计时
func (v *entityVisual) decay(deltaTime float64) {
	if v.flash > 0 {
		v.flash -= deltaTime
	}
}

// visualPool 实现 systems.VisualFactory
//
// 球拍和冰球的句柄按身份保存，绘制时读取；
// 道具句柄只用于接收寿命百分比，绘制直接使用快照数据。
type visualPool struct {
	paddles  [2]*entityVisual
	puck     *entityVisual
	powerups map[*entityVisual]struct{}
}

func newVisualPool() *visualPool {
	return &visualPool{powerups: make(map[*entityVisual]struct{})}
}

func (p *visualPool) NewPaddleVisual(player components.PlayerID) interface{} {
	v := &entityVisual{visible: true}
	if player.Valid() {
		p.paddles[player-1] = v
	}
	return v
}

func (p *visualPool) NewPuckVisual() interface{} {
	p.puck = &entityVisual{visible: true}
	return p.puck
}

func (p *visualPool) NewPowerupVisual(kind components.PowerupKind) interface{} {
	v := &entityVisual{visible: true, life: 100}
	p.powerups[v] = struct{}{}
	return v
}

func (p *visualPool) ReleaseVisual(handle interface{}) {
	v, ok := handle.(*entityVisual)
	if !ok {
		return
	}
	delete(p.powerups, v)
	for i := range p.paddles {
		if p.paddles[i] == v {
			p.paddles[i] = nil
		}
	}
	if p.puck == v {
		p.puck = nil
	}
}

func (p *visualPool) decay(deltaTime float64) {
	for _, v := range p.paddles {
		if v != nil {
			v.decay(deltaTime)
		}
	}
}
