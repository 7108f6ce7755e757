package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按关卡路径创建场景
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager 管理当前活动场景，只有活动场景会被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	currentLevel string
}

// NewSceneManager 创建没有活动场景的场景管理器，使用 SwitchTo 或 LoadLevel 设置初始场景
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

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回最近一次成功加载的关卡路径
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 通过场景工厂加载关卡并切换过去
//
// 加载失败时保留当前场景。
func (sm *SceneManager) LoadLevel(levelPath string) error {
	log.Printf("[SceneManager] 加载关卡: %s", levelPath)

	if sm.sceneFactory == nil {
		return fmt.Errorf("failed to load level %s: scene factory not set", levelPath)
	}

	scene, err := sm.sceneFactory(levelPath)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	sm.SwitchTo(scene)
	sm.currentLevel = levelPath
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelPath)
	return nil
}

// Reload 重新加载当前关卡
func (sm *SceneManager) Reload() error {
	if sm.currentLevel == "" {
		return fmt.Errorf("failed to reload: no level loaded")
	}
	return sm.LoadLevel(sm.currentLevel)
}

// Update 更新活动场景
// deltaTime 为自上一帧以来经过的时间（秒）
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制活动场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
