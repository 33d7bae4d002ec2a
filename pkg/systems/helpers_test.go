package systems

import (
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// testWorld 测试用的最小对局：一个冰球、两个球拍
type testWorld struct {
	em      *ecs.EntityManager
	state   *MatchState
	events  *event.Queue
	field   config.FieldConfig
	puck    ecs.EntityID
	paddle1 ecs.EntityID
	paddle2 ecs.EntityID
}

func newTestWorld(width, height float64) *testWorld {
	w := &testWorld{
		em:     ecs.NewEntityManager(),
		state:  NewMatchState(30),
		events: event.NewQueue(),
		field:  config.FieldConfig{Width: width, Height: height},
	}

	w.puck = w.em.CreateEntity()
	ecs.AddComponent(w.em, w.puck, components.NewBodyComponent(width/2, height/2, 15, 1, 1))
	ecs.AddComponent(w.em, w.puck, &components.PuckComponent{})

	w.paddle1 = w.addPaddle(components.PlayerOne, width/4, height/2)
	w.paddle2 = w.addPaddle(components.PlayerTwo, width*3/4, height/2)
	return w
}

func (w *testWorld) addPaddle(player components.PlayerID, x, y float64) ecs.EntityID {
	id := w.em.CreateEntity()
	ecs.AddComponent(w.em, id, components.NewBodyComponent(x, y, 30, 5, 1))
	ecs.AddComponent(w.em, id, &components.PaddleComponent{Player: player})
	ecs.AddComponent(w.em, id, &components.StatusEffectsComponent{})
	ecs.AddComponent(w.em, id, &components.PlayerRecordComponent{Name: "p"})
	return id
}

func (w *testWorld) body(id ecs.EntityID) *components.BodyComponent {
	b, _ := ecs.GetComponent[*components.BodyComponent](w.em, id)
	return b
}

func (w *testWorld) record(id ecs.EntityID) *components.PlayerRecordComponent {
	r, _ := ecs.GetComponent[*components.PlayerRecordComponent](w.em, id)
	return r
}

func (w *testWorld) drainTypes() []event.Type {
	var types []event.Type
	for _, e := range w.events.Drain() {
		types = append(types, e.Type)
	}
	return types
}

func containsType(types []event.Type, want event.Type) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// fakeVisual 记录所有写入
type fakeVisual struct {
	lifes   []float64
	hits    int
	visible []bool
}

func (v *fakeVisual) SetLifePercent(p float64) { v.lifes = append(v.lifes, p) }
func (v *fakeVisual) TriggerHit()               { v.hits++ }
func (v *fakeVisual) SetVisible(b bool)         { v.visible = append(v.visible, b) }

// fakeFactory 为每个实体创建 fakeVisual
type fakeFactory struct {
	created  []*fakeVisual
	released int
}

func (f *fakeFactory) newVisual() interface{} {
	v := &fakeVisual{}
	f.created = append(f.created, v)
	return v
}

func (f *fakeFactory) NewPaddleVisual(components.PlayerID) interface{} { return f.newVisual() }

func (f *fakeFactory) NewPuckVisual() interface{} { return f.newVisual() }

func (f *fakeFactory) NewPowerupVisual(components.PowerupKind) interface{} { return f.newVisual() }

func (f *fakeFactory) ReleaseVisual(interface{}) { f.released++ }
