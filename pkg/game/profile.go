package game

import (
	"github.com/decker502/airhockey/pkg/components"
	"github.com/decker502/airhockey/pkg/config"
)

// PlayerProfile 玩家显示信息
type PlayerProfile struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // "#rrggbb"
}

// ProfileSource 实时玩家信息来源
//
// Match.Update 每帧读取一次。返回 false 或空字段时使用对局配置中的值。
type ProfileSource interface {
	Profile(player components.PlayerID) (PlayerProfile, bool)
}

// ConfigProfiles 直接使用对局配置中的玩家信息
type ConfigProfiles struct {
	Players config.PlayersConfig
}

// Profile 实现 ProfileSource
func (c ConfigProfiles) Profile(player components.PlayerID) (PlayerProfile, bool) {
	switch player {
	case components.PlayerOne:
		return PlayerProfile{Name: c.Players.One.Name, Color: c.Players.One.Color}, true
	case components.PlayerTwo:
		return PlayerProfile{Name: c.Players.Two.Name, Color: c.Players.Two.Color}, true
	default:
		return PlayerProfile{}, false
	}
}

// resolveProfile 合并实时信息与配置默认值
func resolveProfile(src ProfileSource, fallback config.PlayerConfig, player components.PlayerID) PlayerProfile {
	profile := PlayerProfile{Name: fallback.Name, Color: fallback.Color}
	if src == nil {
		return profile
	}
	live, ok := src.Profile(player)
	if !ok {
		return profile
	}
	if live.Name != "" {
		profile.Name = live.Name
	}
	if live.Color != "" {
		profile.Color = live.Color
	}
	return profile
}
