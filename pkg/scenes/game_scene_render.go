package scenes

import (
	"image/color"

	"github.com/gonewx/bladefury/pkg/game"
	"github.com/gonewx/bladefury/pkg/types"
	"github.com/gonewx/bladefury/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarHeight = 5
	healthBarOffset = 8
	overlayLineGap  = 24
	overlaySlide    = 30
)

var (
	arenaColor        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	playerColor       = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	cannonColor       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	archerTowerColor  = color.RGBA{R: 140, G: 95, B: 50, A: 255}
	rubbleColor       = color.RGBA{R: 100, G: 100, B: 100, A: 160}
	projectileColor   = color.RGBA{R: 230, G: 140, B: 40, A: 255}
	rangeColor        = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	healthBackColor   = color.RGBA{R: 120, G: 0, B: 0, A: 255}
	healthFillColor   = color.RGBA{R: 0, G: 220, B: 0, A: 255}
	overlayShadeColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func defenseColor(kind types.DefenseKind) color.Color {
	if kind == types.DefenseArcherTower {
		return archerTowerColor
	}
	return cannonColor
}

// drawDefenses 绘制防御塔
// 被摧毁的防御塔仍留在关卡中，显示为废墟
func drawDefenses(screen *ebiten.Image, defenses []game.DefenseView) {
	for _, d := range defenses {
		if d.Destroyed {
			vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.Size), float32(d.Size), rubbleColor, false)
			continue
		}
		cx, cy := d.X+d.Size/2, d.Y+d.Size/2
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(d.AttackRange), 1, rangeColor, true)
		vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.Size), float32(d.Size), defenseColor(d.Kind), false)
		drawHealthBar(screen, d.EntityView)
	}
}

// drawPlayer 绘制玩家，攻击就绪时显示攻击范围
func drawPlayer(screen *ebiten.Image, p game.PlayerView) {
	if p.AttackReady && !p.Destroyed {
		cx, cy := p.X+p.Size/2, p.Y+p.Size/2
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.AttackRange), 1, rangeColor, true)
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size), playerColor, false)
	drawHealthBar(screen, p.EntityView)
}

func drawProjectiles(screen *ebiten.Image, projectiles []game.ProjectileView) {
	for _, p := range projectiles {
		vector.DrawFilledRect(screen, float32(p.X-p.Size/2), float32(p.Y-p.Size/2), float32(p.Size), float32(p.Size), projectileColor, true)
	}
}

// drawHealthBar 在实体上方绘制血条
func drawHealthBar(screen *ebiten.Image, e game.EntityView) {
	x, y, w := float32(e.X), float32(e.Y-healthBarOffset), float32(e.Size)
	vector.DrawFilledRect(screen, x, y, w, healthBarHeight, healthBackColor, false)
	if fill := w * float32(e.HealthRatio()); fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, healthBarHeight, healthFillColor, false)
	}
}

// drawOverlay 半透明遮罩加居中提示文字
// fade ∈ [0, 1] 控制遮罩透明度和文字下落的进度
func drawOverlay(screen *ebiten.Image, lines []string, face text.Face, fade float64) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	shade := overlayShadeColor
	shade.A = uint8(utils.Lerp(0, float64(overlayShadeColor.A), fade))
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)

	y := h/2 - float64(len(lines))*overlayLineGap/2 - utils.Lerp(overlaySlide, 0, fade)
	for i, line := range lines {
		scale := 1.0
		if i == 0 {
			scale = 2
		}
		drawTextCentered(screen, line, face, w/2, y, scale, textColor)
		y += overlayLineGap * scale
	}
}
