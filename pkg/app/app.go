// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/airhockey/pkg/config"
	"github.com/decker502/airhockey/pkg/embedded"
	"github.com/decker502/airhockey/pkg/game"
	"github.com/decker502/airhockey/pkg/scenes"
	"github.com/decker502/airhockey/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 嵌入的默认对局配置
const DefaultConfigPath = "data/match.yaml"

// sceneMatch 对局场景名称
const sceneMatch = "match"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部对局配置文件，为空时使用嵌入的 data/match.yaml
	ConfigPath string
	// Seed 非 0 时覆盖配置中的随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	audio        *game.AudioManager
	matchConfig  *config.MatchConfig
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	matchConfig, err := LoadMatchConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		matchConfig.Seed = cfg.Seed
	}

	settings := game.NewSettingsManager(openStorage())
	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settings)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != sceneMatch {
			return nil
		}
		scene, err := scenes.NewMatchScene(matchConfig, settings, audioManager)
		if err != nil {
			log.Printf("[App] %v", err)
			return nil
		}
		return scene
	})
	if !sceneManager.LoadScene(sceneMatch) {
		return nil, fmt.Errorf("failed to create match scene")
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		audio:        audioManager,
		matchConfig:  matchConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadMatchConfig 读取外部配置文件，path 为空时读取嵌入的默认配置
func LoadMatchConfig(path string) (*config.MatchConfig, error) {
	if path != "" {
		return config.LoadMatchConfig(path)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded match config: %w", err)
	}
	return config.ParseMatchConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: "airhockey"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		return nil
	}
	return m
}

// Update 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 退出全屏后等待几帧再恢复窗口大小，让窗口管理器先处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetSoundEnabled(!a.settings.GetSettings().SoundEnabled)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时使用黑色 letterbox 和线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕为场地加上方记分栏
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.matchConfig.Field.Width), int(a.matchConfig.Field.Height) + scenes.HUDHeight
}

// GetSceneManager 返回场景管理器，用于关闭时保存
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回玩家设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// SaveOnExit 保存当前场景的状态并释放音频播放器
func (a *App) SaveOnExit() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		s.SaveOnExit()
	}
	a.audio.Close()
}
