package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/decker502/airhockey/pkg/event"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate ebiten 音频上下文的采样率
const AudioSampleRate = 48000

// Tone 一个短促的正弦提示音
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// EventTones 对局事件对应的提示音，按顺序连续播放
// 桌面端和终端宿主共用同一张表
var EventTones = map[event.Type][]Tone{
	event.Collision:        {{880, 40 * time.Millisecond}},
	event.GoalScored:       {{523, 120 * time.Millisecond}, {784, 180 * time.Millisecond}},
	event.ZoneTimeout:      {{220, 200 * time.Millisecond}},
	event.PowerupCollected: {{1046, 80 * time.Millisecond}},
	event.GameOver:         {{523, 150 * time.Millisecond}, {659, 150 * time.Millisecond}, {784, 300 * time.Millisecond}},
	event.MatchReset:       {{440, 100 * time.Millisecond}},
}

// AudioManager 音频管理器
// 职责：
//   - 把对局事件转换为合成的提示音
//   - 从 SettingsManager 读取音效开关和音量
//
// 提示音在第一次使用时合成并缓存为播放器。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager             // 可为 nil，此时总是以默认音量播放
	players         map[event.Type]*audio.Player // 事件类型 -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，为 nil 时所有播放请求都被忽略
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[event.Type]*audio.Player),
	}
}

// PlayEvents 为一帧的事件播放提示音，同一帧同类事件只响一次
func (am *AudioManager) PlayEvents(events []event.Event) {
	if am == nil {
		return
	}
	played := make(map[event.Type]bool)
	for _, e := range events {
		if played[e.Type] {
			continue
		}
		if am.PlayEvent(e.Type) {
			played[e.Type] = true
		}
	}
}

// PlayEvent 播放事件对应的提示音
//
// 返回：
//   - bool: 是否成功播放（音效关闭、无对应提示音或无音频上下文时返回 false）
func (am *AudioManager) PlayEvent(t event.Type) bool {
	if am == nil || am.context == nil {
		return false
	}
	volume := DefaultSettings().SoundVolume
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player := am.getPlayer(t)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %d: %v", t, err)
	}
	player.Play()
	return true
}

func (am *AudioManager) getPlayer(t event.Type) *audio.Player {
	if player, ok := am.players[t]; ok {
		return player
	}
	tones, ok := EventTones[t]
	if !ok {
		return nil
	}
	player := am.context.NewPlayerFromBytes(SynthesizeTones(AudioSampleRate, tones))
	am.players[t] = player
	return player
}

// Close 释放所有缓存的播放器
func (am *AudioManager) Close() {
	if am == nil {
		return
	}
	for t, player := range am.players {
		if err := player.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player %d: %v", t, err)
		}
		delete(am.players, t)
	}
}

// fadeSamples 每个音首尾的淡入淡出长度，避免爆音
const fadeSamples = 96

// SynthesizeTones 把提示音合成为 16 位小端立体声 PCM
//
// 参数：
//   - sampleRate: 采样率
//   - tones: 依次播放的正弦音
//
// 返回：
//   - []byte: 可直接交给 audio.Context.NewPlayerFromBytes 的数据
func SynthesizeTones(sampleRate int, tones []Tone) []byte {
	total := 0
	for _, t := range tones {
		total += toneSamples(sampleRate, t)
	}

	buf := make([]byte, 0, total*4)
	for _, t := range tones {
		n := toneSamples(sampleRate, t)
		for i := 0; i < n; i++ {
			amp := 0.5
			if i < fadeSamples {
				amp *= float64(i) / fadeSamples
			}
			if n-i < fadeSamples {
				amp *= float64(n-i) / fadeSamples
			}
			v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*t.Freq*float64(i)/float64(sampleRate)))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}

func toneSamples(sampleRate int, t Tone) int {
	if t.Duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(t.Duration.Seconds() * float64(sampleRate))
}
