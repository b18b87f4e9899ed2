package scenes

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/gonewx/bladefury/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OptionsScene 操作说明
// 列出当前按键绑定，Back 按钮或暂停键返回标题菜单
type OptionsScene struct {
	sceneManager *SceneManager
	keys         input.KeyBindings
	face         text.Face
	ui           *ebitenui.UI
}

// NewOptionsScene 创建操作说明场景
func NewOptionsScene(sm *SceneManager, keys input.KeyBindings) *OptionsScene {
	s := &OptionsScene{
		sceneManager: sm,
		keys:         keys,
		face:         newFace(),
	}

	panel := newColumn(imageui.NewNineSliceColor(panelColor), widget.AnchorLayoutPositionCenter, 30)
	panel.AddChild(newLabel(&s.face, "Controls"))
	for _, line := range controlLines(keys) {
		panel.AddChild(newLabel(&s.face, line))
	}
	panel.AddChild(newButton(&s.face, "Back", func() { sm.Show(SceneMainMenu) }))
	s.ui = newRootUI(panel)

	return s
}

// controlLines 生成按键说明文字
func controlLines(keys input.KeyBindings) []string {
	rows := []struct {
		action string
		keys   string
	}{
		{"Move up", input.KeyNames(keys.Up)},
		{"Move down", input.KeyNames(keys.Down)},
		{"Move left", input.KeyNames(keys.Left)},
		{"Move right", input.KeyNames(keys.Right)},
		{"Attack", input.KeyNames(keys.Attack)},
		{"Continue", input.KeyNames(keys.Confirm)},
		{"Pause", input.KeyNames(keys.Pause)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %s", r.action, r.keys))
	}
	return lines
}

// Update 处理按钮点击，暂停键也可以返回
func (s *OptionsScene) Update(deltaTime float64) {
	s.ui.Update()
	if s.keys.PauseJustPressed() {
		s.sceneManager.Show(SceneMainMenu)
	}
}

// Draw 绘制说明面板
func (s *OptionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)
	s.ui.Draw(screen)
}
