package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 本机保存的玩家设置
// 玩家名称和颜色为空时使用对局配置中的值
type GameSettings struct {
	Player1 PlayerProfile `yaml:"player1"`
	Player2 PlayerProfile `yaml:"player2"`

	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 (0.0 ~ 1.0)
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundEnabled: true,
		SoundVolume:  0.6,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存，并作为对局的实时玩家信息来源
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "players"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚未保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// Profile 实现 ProfileSource
func (sm *SettingsManager) Profile(player components.PlayerID) (PlayerProfile, bool) {
	p := sm.profile(player)
	if p == nil {
		return PlayerProfile{}, false
	}
	return *p, true
}

// SetPlayerName 修改玩家名称，空字符串表示恢复配置中的名称
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetPlayerName(player components.PlayerID, name string) error {
	p := sm.profile(player)
	if p == nil {
		return fmt.Errorf("invalid player %d", player)
	}
	p.Name = strings.TrimSpace(name)
	return nil
}

// SetPlayerColor 修改玩家颜色（"#rrggbb"），空字符串表示恢复配置中的颜色
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetPlayerColor(player components.PlayerID, hex string) error {
	p := sm.profile(player)
	if p == nil {
		return fmt.Errorf("invalid player %d", player)
	}
	hex = strings.TrimSpace(hex)
	if hex != "" {
		if _, err := config.ParseHexColor(hex); err != nil {
			return err
		}
	}
	p.Color = hex
	return nil
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume 设置音效音量，超出 [0, 1] 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	sm.settings.SoundVolume = volume
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func (sm *SettingsManager) profile(player components.PlayerID) *PlayerProfile {
	switch player {
	case components.PlayerOne:
		return &sm.settings.Player1
	case components.PlayerTwo:
		return &sm.settings.Player2
	default:
		return nil
	}
}
