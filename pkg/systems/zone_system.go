package systems

import (
	"log"
	"math"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

// ZoneSystem 防拖延规则：冰球在同一半场停留超过 maxTime 后被移到对方半场
type ZoneSystem struct {
	em      *ecs.EntityManager
	state   *MatchState
	events  *event.Queue
	width   float64
	height  float64
	maxTime float64
}

// NewZoneSystem 创建半场停留系统
func NewZoneSystem(em *ecs.EntityManager, state *MatchState, events *event.Queue, field config.FieldConfig, maxTime float64) *ZoneSystem {
	return &ZoneSystem{
		em:      em,
		state:   state,
		events:  events,
		width:   field.Width,
		height:  field.Height,
		maxTime: maxTime,
	}
}

// ZoneOf 返回 x 坐标所在半场：中线以左为左半场，其余为右半场
func (s *ZoneSystem) ZoneOf(x float64) Zone {
	if x < s.width/2 {
		return ZoneLeft
	}
	return ZoneRight
}

// Update 推进停留计时
func (s *ZoneSystem) Update(deltaTime float64) {
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}

	zs := &s.state.Zone
	zone := s.ZoneOf(puck.X)
	if zone != zs.Current {
		zs.Current = zone
		zs.StallTimer = 0
		zs.CountdownActive = false
		zs.CountdownValue = 0
		return
	}

	zs.StallTimer += deltaTime

	if zs.StallTimer > s.maxTime {
		s.relocate(puck)
		return
	}

	remaining := s.maxTime - zs.StallTimer
	if remaining > 0 && remaining <= config.ZoneCountdownSeconds {
		zs.CountdownValue = int(math.Ceil(remaining))
		if !zs.CountdownActive {
			zs.CountdownActive = true
			s.events.Push(event.Event{
				Type:  event.ZoneCountdownStarted,
				Zone:  int(zs.Current),
				Value: zs.CountdownValue,
			})
		}
	}
}

// relocate 把冰球移到对方半场距中线四分之一场宽处并清空速度
func (s *ZoneSystem) relocate(puck *components.BodyComponent) {
	zs := &s.state.Zone
	from := zs.Current
	target := from.Opposite()

	x := s.width / 4
	if target == ZoneRight {
		x = s.width - s.width/4
	}
	puck.SetPosition(x, s.height/2)
	puck.Stop()

	s.state.LastTouchedBy = components.PlayerNone
	zs.Current = target
	zs.StallTimer = 0
	zs.CountdownActive = false
	zs.CountdownValue = 0

	log.Printf("[ZoneSystem] Stall timeout in zone %d, puck moved to zone %d", from, target)
	s.events.Push(event.Event{Type: event.ZoneTimeout, Zone: int(from)})
}
