package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/ecs"
	"github.com/decker502/airhockey/pkg/event"
)

// ScoreSystem 进球判定与比赛结束状态机
//
// 状态转换:
//
//	Normal --(达到胜利分数)--> GameOverDisplay --(展示计时结束)--> GameOverCountdown --(倒计时结束)--> Normal
//
// 未达到胜利分数的进球在同一帧内重新发球，不改变阶段。
type ScoreSystem struct {
	em     *ecs.EntityManager
	state  *MatchState
	events *event.Queue
	rng    *rand.Rand

	width  float64
	height float64

	puckCfg config.PuckConfig
	rules   config.RulesConfig

	// OnFullReset 新一局开始时依次调用（清理道具、状态效果等）
	OnFullReset []func()
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(em *ecs.EntityManager, state *MatchState, events *event.Queue, rng *rand.Rand,
	field config.FieldConfig, puck config.PuckConfig, rules config.RulesConfig) *ScoreSystem {
	return &ScoreSystem{
		em:      em,
		state:   state,
		events:  events,
		rng:     rng,
		width:   field.Width,
		height:  field.Height,
		puckCfg: puck,
		rules:   rules,
	}
}

// StartGame 开局发球（带来球通知）
func (s *ScoreSystem) StartGame() {
	s.state.Phase = PhaseNormal
	s.state.PhaseTimer = 0
	s.serve(true)
}

// Update 推进计分状态机
func (s *ScoreSystem) Update(deltaTime float64) {
	switch s.state.Phase {
	case PhaseNormal:
		s.checkGoal()
	case PhaseGameOverDisplay:
		s.state.PhaseTimer -= deltaTime
		if s.state.PhaseTimer <= 0 {
			s.state.Phase = PhaseGameOverCountdown
			s.state.PhaseTimer = config.EffectiveResetCountdown(s.rules.ResetCountdown)
			log.Printf("[ScoreSystem] New game in %.1fs", s.state.PhaseTimer)
			s.events.Push(event.Event{Type: event.NewGameCountdownStarted, Value: s.CountdownValue()})
		}
	case PhaseGameOverCountdown:
		s.state.PhaseTimer -= deltaTime
		if s.state.PhaseTimer <= 0 {
			s.FullReset()
		}
	}
}

// CountdownValue 新一局倒计时的整数显示值，非倒计时阶段返回 0
func (s *ScoreSystem) CountdownValue() int {
	if s.state.Phase != PhaseGameOverCountdown || s.state.PhaseTimer <= 0 {
		return 0
	}
	return int(math.Ceil(s.state.PhaseTimer))
}

// checkGoal 冰球越过任一侧边线 30 单位后判对方得分
func (s *ScoreSystem) checkGoal() {
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}

	var scorer components.PlayerID
	switch {
	case puck.X < -config.GoalScoreMargin:
		scorer = components.PlayerTwo
	case puck.X > s.width+config.GoalScoreMargin:
		scorer = components.PlayerOne
	default:
		return
	}

	record := s.record(scorer)
	if record == nil {
		return
	}
	record.Score++
	log.Printf("[ScoreSystem] Player %d scored (%d)", scorer, record.Score)
	s.events.Push(event.Event{Type: event.GoalScored, Player: int(scorer), Value: record.Score})

	if record.Score >= s.rules.PointsToWin {
		s.enterGameOver(scorer, puck)
		return
	}

	s.serve(true)
	s.state.ResetZone()
	s.state.LastTouchedBy = components.PlayerNone
}

// enterGameOver 冻结并隐藏冰球，开始展示胜者
func (s *ScoreSystem) enterGameOver(winner components.PlayerID, puck *components.BodyComponent) {
	puck.Stop()
	s.setPuckHidden(true)

	s.state.Phase = PhaseGameOverDisplay
	s.state.PhaseTimer = config.EffectiveGameOverDisplay(s.rules.GameOverDisplay)
	s.state.Winner = winner

	log.Printf("[ScoreSystem] Game over, winner: player %d", winner)
	s.events.Push(event.Event{Type: event.GameOver, Player: int(winner)})
}

// FullReset 比分清零、恢复默认球门、冰球回到中心，开始新一局
func (s *ScoreSystem) FullReset() {
	for _, p := range []components.PlayerID{components.PlayerOne, components.PlayerTwo} {
		if record := s.record(p); record != nil {
			record.Score = 0
		}
	}
	s.state.ResetGoalHeights(s.rules.DefaultGoalHeight)
	s.state.Phase = PhaseNormal
	s.state.PhaseTimer = 0
	s.state.Winner = components.PlayerNone
	s.state.ResetZone()
	s.state.LastTouchedBy = components.PlayerNone

	s.setPuckHidden(false)
	s.serve(false)

	for _, hook := range s.OnFullReset {
		hook()
	}

	log.Printf("[ScoreSystem] Match reset")
	s.events.Push(event.Event{Type: event.MatchReset})
}

// serve 冰球回到中心，水平方向随机，垂直速度在 [-spread, spread] 内均匀分布
func (s *ScoreSystem) serve(incoming bool) {
	_, puck, ok := findPuck(s.em)
	if !ok {
		return
	}
	puck.SetPosition(s.width/2, s.height/2)

	vx := s.puckCfg.ServeSpeed
	if s.rng.Intn(2) == 0 {
		vx = -vx
	}
	puck.VX = vx
	puck.VY = (s.rng.Float64()*2 - 1) * s.puckCfg.ServeSpread

	if incoming {
		s.events.Push(event.Event{Type: event.PuckIncoming})
	}
}

func (s *ScoreSystem) setPuckHidden(hidden bool) {
	id, _, ok := findPuck(s.em)
	if !ok {
		return
	}
	if tag, ok := ecs.GetComponent[*components.PuckComponent](s.em, id); ok {
		tag.Hidden = hidden
	}
	if visual, ok := ecs.GetComponent[*components.VisualComponent](s.em, id); ok {
		visual.WriteVisible(!hidden)
	}
}

func (s *ScoreSystem) record(p components.PlayerID) *components.PlayerRecordComponent {
	id, _, ok := findPaddle(s.em, p)
	if !ok {
		return nil
	}
	record, _ := ecs.GetComponent[*components.PlayerRecordComponent](s.em, id)
	return record
}
