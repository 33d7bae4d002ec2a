package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MatchConfig 对局配置
//
// 描述场地尺寸、实体初始参数、道具节奏、停留超时与胜负规则。
// 所有长度单位为场地单位（与渲染像素 1:1），时间单位为秒。
//
// 配置文件位置: data/match.yaml
type MatchConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Puck    PuckConfig    `yaml:"puck"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Drag    DragConfig    `yaml:"drag"`
	Powerup PowerupConfig `yaml:"powerups"`
	Zone    ZoneConfig    `yaml:"zone"`
	Rules   RulesConfig   `yaml:"rules"`
	Players PlayersConfig `yaml:"players"`

	// Seed 随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// FieldConfig 场地尺寸
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point 场地坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PuckConfig 冰球参数
type PuckConfig struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"` // 每帧速度保留比例 (0, 1]
	MaxSpeed float64 `yaml:"maxSpeed"`

	// ServeSpeed 发球时的水平速度
	ServeSpeed float64 `yaml:"serveSpeed"`
	// ServeSpread 发球时垂直速度的随机范围 [-ServeSpread, ServeSpread]
	ServeSpread float64 `yaml:"serveSpread"`
}

// PaddlesConfig 球拍参数（两名玩家共用尺寸，起始位置分别配置）
type PaddlesConfig struct {
	Radius       float64 `yaml:"radius"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Player1Start Point   `yaml:"player1Start"`
	Player2Start Point   `yaml:"player2Start"`
}

// DragConfig 拖拽参数
type DragConfig struct {
	// SizeIncreasePercent 拖拽中的球拍半径增加百分比
	SizeIncreasePercent float64 `yaml:"sizeIncreasePercent"`
	// CaptureMultiplier 按下指针时的抓取半径倍率（半径 × 倍率）
	CaptureMultiplier float64 `yaml:"captureMultiplier"`
	// MultiTouch 是否允许多个指针同时拖拽不同球拍
	MultiTouch bool `yaml:"multiTouch"`
}

// PowerupConfig 道具参数
type PowerupConfig struct {
	Max           int     `yaml:"max"`
	SpawnInterval float64 `yaml:"spawnInterval"`
	Radius        float64 `yaml:"radius"`
	// Padding 道具生成位置距离场地边缘的最小距离
	Padding float64 `yaml:"padding"`
}

// ZoneConfig 半场停留规则
type ZoneConfig struct {
	// MaxTime 冰球在同一半场停留的最长时间（秒）
	MaxTime float64 `yaml:"maxTime"`
}

// RulesConfig 胜负规则
type RulesConfig struct {
	PointsToWin int `yaml:"pointsToWin"`
	// DefaultGoalHeight 默认球门高度（场地高度百分比）
	DefaultGoalHeight float64 `yaml:"defaultGoalHeight"`
	// GameOverDisplay 比赛结束后展示胜者的时长
	GameOverDisplay float64 `yaml:"gameOverDisplay"`
	// ResetCountdown 展示结束后到新一局开始的倒计时
	ResetCountdown float64 `yaml:"resetCountdown"`
}

// PlayerConfig 玩家显示信息
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // "#rrggbb"
}

// PlayersConfig 两名玩家的显示信息
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// DefaultMatchConfig 返回默认对局配置
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		Field: FieldConfig{Width: 800, Height: 480},
		Puck: PuckConfig{
			Radius:      15,
			Mass:        1,
			Friction:    0.995,
			MaxSpeed:    900,
			ServeSpeed:  200,
			ServeSpread: 120,
		},
		Paddles: PaddlesConfig{
			Radius:       30,
			Mass:         5,
			Friction:     0.9,
			Player1Start: Point{X: 200, Y: 240},
			Player2Start: Point{X: 600, Y: 240},
		},
		Drag: DragConfig{
			SizeIncreasePercent: 10,
			CaptureMultiplier:   1.5,
			MultiTouch:          true,
		},
		Powerup: PowerupConfig{
			Max:           3,
			SpawnInterval: 5,
			Radius:        18,
			Padding:       60,
		},
		Zone: ZoneConfig{MaxTime: 7},
		Rules: RulesConfig{
			PointsToWin:       5,
			DefaultGoalHeight: 30,
			GameOverDisplay:   DefaultGameOverDisplay,
			ResetCountdown:    DefaultResetCountdown,
		},
		Players: PlayersConfig{
			One: PlayerConfig{Name: "Player 1", Color: "#e74c3c"},
			Two: PlayerConfig{Name: "Player 2", Color: "#3498db"},
		},
	}
}

// ParseMatchConfig 解析 YAML 对局配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *MatchConfig: 解析并验证通过的配置
//   - error: 解析或验证失败时返回错误
func ParseMatchConfig(data []byte) (*MatchConfig, error) {
	cfg := DefaultMatchConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse match config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	return cfg, nil
}

// LoadMatchConfig 从文件加载对局配置
//
// 参数:
//   - path: 配置文件路径（如 "data/match.yaml"）
func LoadMatchConfig(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read match config: %w", err)
	}
	return ParseMatchConfig(data)
}

// Validate 验证配置有效性
//
// 模拟核心不检查配置，非法的尺寸、半径等必须在这里被拒绝。
func (c *MatchConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive: %.1fx%.1f", c.Field.Width, c.Field.Height)
	}

	if err := validateBody("puck", c.Puck.Radius, c.Puck.Mass, c.Puck.Friction); err != nil {
		return err
	}
	if c.Puck.MaxSpeed <= 0 {
		return fmt.Errorf("puck maxSpeed must be positive: %.1f", c.Puck.MaxSpeed)
	}
	if c.Puck.ServeSpeed < 0 || c.Puck.ServeSpread < 0 {
		return fmt.Errorf("puck serve speed/spread must not be negative")
	}

	if err := validateBody("paddle", c.Paddles.Radius, c.Paddles.Mass, c.Paddles.Friction); err != nil {
		return err
	}
	if !c.insideField(c.Paddles.Player1Start) || c.Paddles.Player1Start.X > c.Field.Width/2 {
		return fmt.Errorf("player1Start (%.1f, %.1f) must be inside the left half", c.Paddles.Player1Start.X, c.Paddles.Player1Start.Y)
	}
	if !c.insideField(c.Paddles.Player2Start) || c.Paddles.Player2Start.X < c.Field.Width/2 {
		return fmt.Errorf("player2Start (%.1f, %.1f) must be inside the right half", c.Paddles.Player2Start.X, c.Paddles.Player2Start.Y)
	}

	if c.Drag.SizeIncreasePercent < 0 {
		return fmt.Errorf("drag sizeIncreasePercent must not be negative: %.1f", c.Drag.SizeIncreasePercent)
	}
	if c.Drag.CaptureMultiplier < 1 {
		return fmt.Errorf("drag captureMultiplier must be >= 1: %.2f", c.Drag.CaptureMultiplier)
	}

	if c.Powerup.Max < 0 {
		return fmt.Errorf("powerups max must not be negative: %d", c.Powerup.Max)
	}
	if c.Powerup.SpawnInterval <= 0 || c.Powerup.Radius <= 0 {
		return fmt.Errorf("powerups spawnInterval and radius must be positive")
	}
	if c.Powerup.Padding < 0 || 2*c.Powerup.Padding >= c.Field.Width || 2*c.Powerup.Padding >= c.Field.Height {
		return fmt.Errorf("powerups padding %.1f does not fit the field", c.Powerup.Padding)
	}

	if c.Zone.MaxTime <= 0 {
		return fmt.Errorf("zone maxTime must be positive: %.1f", c.Zone.MaxTime)
	}

	if c.Rules.PointsToWin < 1 {
		return fmt.Errorf("pointsToWin must be at least 1: %d", c.Rules.PointsToWin)
	}
	if c.Rules.DefaultGoalHeight < MinGoalHeightPercent || c.Rules.DefaultGoalHeight > MaxGoalHeightPercent {
		return fmt.Errorf("defaultGoalHeight %.1f out of range [%.0f, %.0f]",
			c.Rules.DefaultGoalHeight, MinGoalHeightPercent, MaxGoalHeightPercent)
	}

	for _, p := range []PlayerConfig{c.Players.One, c.Players.Two} {
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}

	return nil
}

func (c *MatchConfig) insideField(p Point) bool {
	return p.X >= 0 && p.X <= c.Field.Width && p.Y >= 0 && p.Y <= c.Field.Height
}

func validateBody(name string, radius, mass, friction float64) error {
	if radius <= 0 {
		return fmt.Errorf("%s radius must be positive: %.1f", name, radius)
	}
	if mass <= 0 {
		return fmt.Errorf("%s mass must be positive: %.1f", name, mass)
	}
	if friction <= 0 || friction > 1 {
		return fmt.Errorf("%s friction must be in (0, 1]: %.3f", name, friction)
	}
	return nil
}
