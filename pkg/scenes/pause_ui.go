package scenes

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// newPauseUI 创建居中的暂停面板，包含 Resume 和 Main Menu 两个按钮
func newPauseUI(face *text.Face, onResume, onMainMenu func()) *ebitenui.UI {
	panel := newColumn(imageui.NewNineSliceColor(panelColor), widget.AnchorLayoutPositionCenter, 30)
	panel.AddChild(newLabel(face, "Paused"))
	panel.AddChild(newButton(face, "Resume", onResume))
	panel.AddChild(newButton(face, "Main Menu", onMainMenu))
	return newRootUI(panel)
}
