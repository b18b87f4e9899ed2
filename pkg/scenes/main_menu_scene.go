package scenes

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/gonewx/bladefury/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameTitle 标题菜单上显示的游戏名称
const GameTitle = "Blade of Fury"

// MainMenuScene 标题菜单
// 灰色背景、居中标题和三个按钮：开始游戏、操作说明、退出
type MainMenuScene struct {
	sceneManager *SceneManager
	keys         input.KeyBindings
	face         text.Face
	ui           *ebitenui.UI
}

// NewMainMenuScene 创建标题菜单
//
// 参数:
//   - sm: 场景管理器，用于切换场景和请求退出
//   - keys: 按键绑定，回车等同于点击 Start Game
func NewMainMenuScene(sm *SceneManager, keys input.KeyBindings) *MainMenuScene {
	s := &MainMenuScene{
		sceneManager: sm,
		keys:         keys,
		face:         newFace(),
	}

	column := newColumn(nil, widget.AnchorLayoutPositionCenter, 0)
	column.AddChild(newButton(&s.face, "Start Game", func() { sm.Show(SceneGame) }))
	column.AddChild(newButton(&s.face, "Options", func() { sm.Show(SceneOptions) }))
	column.AddChild(newButton(&s.face, "Quit", sm.RequestQuit))
	s.ui = newRootUI(column)

	return s
}

// Update 处理按钮点击和回车快捷键
func (s *MainMenuScene) Update(deltaTime float64) {
	s.ui.Update()
	if s.keys.ConfirmJustPressed() {
		s.sceneManager.Show(SceneGame)
	}
}

// Draw 绘制背景、标题和按钮
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)
	bounds := screen.Bounds()
	drawTextCentered(screen, GameTitle, s.face, float64(bounds.Dx())/2, float64(bounds.Dy())/4-20, 4, textColor)
	s.ui.Draw(screen)
}
