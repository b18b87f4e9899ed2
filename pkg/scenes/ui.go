package scenes

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	buttonWidth   = 200
	buttonHeight  = 50
	buttonSpacing = 25
)

var (
	menuBackgroundColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	textColor           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonTextColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	buttonIdleColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	buttonHoverColor    = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	buttonPressedColor  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	panelColor          = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
)

// newFace 使用内置的 basicfont 创建字体，不依赖外部字体文件
func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// newButton 创建白底黑字的菜单按钮
func newButton(face *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdleColor),
			Hover:   imageui.NewNineSliceColor(buttonHoverColor),
			Pressed: imageui.NewNineSliceColor(buttonPressedColor),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: buttonTextColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(buttonWidth, buttonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newLabel 创建一行居中文字
func newLabel(face *text.Face, str string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(str, face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// newColumn 创建竖直排列的容器
// background 为 nil 时容器透明
func newColumn(background *imageui.NineSlice, vertical widget.AnchorLayoutPosition, padding int) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(buttonSpacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: padding, Bottom: padding, Left: padding, Right: padding}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vertical,
			}),
		),
	}
	if background != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(background))
	}
	return widget.NewContainer(opts...)
}

// newRootUI 把内容放在一个锚点布局的根容器中
func newRootUI(content *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(content)
	return &ebitenui.UI{Container: root}
}

// drawTextCentered 以 cx 为水平中心绘制文字
// scale 用于放大 basicfont 的标题文字
func drawTextCentered(screen *ebiten.Image, str string, face text.Face, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(cx-w*scale/2, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, opts)
}

// drawText 在 (x, y) 处绘制文字
func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, opts)
}
