package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// SceneManager 保证同一时刻只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 或 LoadScene 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadScene 通过工厂创建并切换到指定场景
//
// 返回:
//   - bool: 是否切换成功
func (sm *SceneManager) LoadScene(name string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	scene := sm.sceneFactory(name)
	if scene == nil {
		log.Printf("[SceneManager] Error: cannot create scene %q", name)
		return false
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Switched to scene %q", name)
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
