package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/ecs"
)

// findPuck 返回冰球实体及其物理组件
func findPuck(em *ecs.EntityManager) (ecs.EntityID, *components.BodyComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PuckComponent, *components.BodyComponent](em) {
		body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
		if ok {
			return id, body, true
		}
	}
	return 0, nil, false
}

// findPaddle 返回指定玩家的球拍实体及其物理组件
func findPaddle(em *ecs.EntityManager, player components.PlayerID) (ecs.EntityID, *components.BodyComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PaddleComponent, *components.BodyComponent](em) {
		paddle, _ := ecs.GetComponent[*components.PaddleComponent](em, id)
		if paddle.Player != player {
			continue
		}
		body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
		if ok {
			return id, body, true
		}
	}
	return 0, nil, false
}

// clampRange 将 v 限制在 [lo, hi]，区间为空时取中点
func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// speedOf 返回速度大小
func speedOf(b *components.BodyComponent) float64 {
	return math.Hypot(b.VX, b.VY)
}

// clampSpeed 将速度按比例缩放到不超过 maxSpeed
func clampSpeed(b *components.BodyComponent, maxSpeed float64) {
	speed := speedOf(b)
	if speed > maxSpeed && speed > 0 {
		scale := maxSpeed / speed
		b.VX *= scale
		b.VY *= scale
	}
}
