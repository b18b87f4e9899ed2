// Package scenes 提供 ebiten 前端的各个场景
//
// 场景只负责读取按键、驱动模拟核心和绘制快照，
// 游戏规则全部在 pkg/game 中实现。
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏中的一个画面（标题菜单、操作说明、游戏）
// 每个场景有各自的更新和绘制逻辑
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 为距上一次更新经过的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// SceneID 场景标识
type SceneID int

const (
	// SceneMainMenu 标题菜单
	SceneMainMenu SceneID = iota
	// SceneOptions 操作说明
	SceneOptions
	// SceneGame 游戏场景（每次进入都开始新的一局）
	SceneGame
)

// String 返回场景名称
func (id SceneID) String() string {
	switch id {
	case SceneMainMenu:
		return "main_menu"
	case SceneOptions:
		return "options"
	case SceneGame:
		return "game"
	default:
		return "unknown"
	}
}
