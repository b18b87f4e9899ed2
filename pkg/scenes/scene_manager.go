package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按 ID 创建场景，避免场景之间互相依赖构造细节
type SceneFactory func(id SceneID) Scene

// SceneManager 场景管理器
// 同一时刻只有一个场景处于活动状态，只有它的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene  Scene
	sceneFactory  SceneFactory
	quitRequested bool
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，需要调用 SwitchTo 或 Show 设置第一个场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 直接切换到给定的场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// Show 通过工厂创建并切换到指定场景
func (sm *SceneManager) Show(id SceneID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换到场景: %s", id)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// RequestQuit 请求退出游戏，App 在下一次 Update 时返回 ebiten.Termination
func (sm *SceneManager) RequestQuit() {
	log.Printf("[SceneManager] 收到退出请求")
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update 更新当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
