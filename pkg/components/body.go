package components

// BodyComponent 是冰球和球拍共用的圆形物理实体
//
// Radius/Friction 是当前帧的有效值，每帧由状态效果系统从 BaseRadius/BaseFriction
// 和当前生效的效果重新计算，不能单独持久化。
type BodyComponent struct {
	X, Y   float64 // 圆心位置
	VX, VY float64 // 速度（单位/秒）

	Mass     float64
	Radius   float64 // 当前有效半径
	Friction float64 // 当前有效摩擦（每帧速度保留比例）

	BaseRadius   float64
	BaseFriction float64

	// PrevX, PrevY 上一帧结束时的位置，用于拖拽时推导速度
	PrevX, PrevY float64
}

// NewBodyComponent 创建位于 (x, y) 的静止实体
func NewBodyComponent(x, y, radius, mass, friction float64) *BodyComponent {
	return &BodyComponent{
		X:            x,
		Y:            y,
		Mass:         mass,
		Radius:       radius,
		Friction:     friction,
		BaseRadius:   radius,
		BaseFriction: friction,
		PrevX:        x,
		PrevY:        y,
	}
}

// SetPosition 同时设置当前位置和上一帧位置，避免瞬移被推导成速度
func (b *BodyComponent) SetPosition(x, y float64) {
	b.X, b.Y = x, y
	b.PrevX, b.PrevY = x, y
}

// Stop 清零速度
func (b *BodyComponent) Stop() {
	b.VX, b.VY = 0, 0
}
