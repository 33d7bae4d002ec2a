package main

import (
	"log"
	"time"

	"github.com/decker502/airhockey/pkg/event"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// soundPlayer 把对局事件转换为提示音
//
// 扬声器初始化失败时静默运行。
type soundPlayer struct {
	enabled bool
}

// newSoundPlayer 初始化扬声器，失败不影响游戏
func newSoundPlayer(enabled bool) *soundPlayer {
	if !enabled {
		return &soundPlayer{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return &soundPlayer{}
	}
	return &soundPlayer{enabled: true}
}

// Play 为一批事件播放提示音，同一帧同类事件只响一次
func (s *soundPlayer) Play(events []event.Event) {
	if !s.enabled {
		return
	}
	played := make(map[event.Type]bool)
	for _, e := range events {
		if played[e.Type] {
			continue
		}
		tones, ok := game.EventTones[e.Type]
		if !ok {
			continue
		}
		played[e.Type] = true
		if streamer := toneSequence(tones); streamer != nil {
			speaker.Play(streamer)
		}
	}
}

// Close 关闭扬声器
func (s *soundPlayer) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}

// toneSequence 把若干正弦音拼成一个 streamer
func toneSequence(tones []game.Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			log.Printf("[Sound] Invalid tone %.0fHz: %v", t.Freq, err)
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(t.Duration), sine))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}
