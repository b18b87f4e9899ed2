// Package terminal 提供基于 tcell 的终端前端
//
// 竞技场按比例缩放到终端网格：第 0 行是状态栏，其余行是竞技场。
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/bladefury/pkg/game"
	"github.com/gonewx/bladefury/pkg/types"
)

const (
	// 能完整显示状态栏和竞技场的最小终端尺寸
	minWidth  = 40
	minHeight = 12
)

var (
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleCannon      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleArcherTower = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRubble      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleProjectile  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleBanner      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus      = tcell.StyleDefault.Reverse(true)
)

// Renderer 把快照绘制到终端
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// grid 竞技场到终端网格的映射
type grid struct {
	cols, rows     int
	arenaW, arenaH float64
}

// cell 把竞技场坐标映射到终端单元格（竞技场从第 1 行开始）
func (g grid) cell(x, y float64) (int, int) {
	cx := int(x / g.arenaW * float64(g.cols))
	cy := int(y / g.arenaH * float64(g.rows))
	cx = min(max(cx, 0), g.cols-1)
	cy = min(max(cy, 0), g.rows-1)
	return cx, cy + 1
}

// Draw 绘制一帧
func (r *Renderer) Draw(s game.Snapshot, paused bool) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < minWidth || h < minHeight {
		r.drawString(0, 0, "Terminal too small", styleBanner)
		r.screen.Show()
		return
	}

	g := grid{cols: w, rows: h - 1, arenaW: s.ArenaWidth, arenaH: s.ArenaHeight}

	for _, d := range s.Defenses {
		glyph, style := defenseGlyph(d)
		r.fillEntity(g, d.EntityView, glyph, style)
	}
	r.fillEntity(g, s.Player.EntityView, '@', stylePlayer)
	for _, p := range s.Projectiles {
		x, y := g.cell(p.X, p.Y)
		r.screen.SetContent(x, y, '*', nil, styleProjectile)
	}

	r.drawString(0, 0, padRight(" "+s.StatusLine(), w), styleStatus)

	lines := s.Banner()
	if paused {
		lines = []string{"Paused", "Esc / P to resume, Q to quit", "M to toggle sound"}
	}
	r.drawBanner(lines, w, h)

	r.screen.Show()
}

func defenseGlyph(d game.DefenseView) (rune, tcell.Style) {
	if d.Destroyed {
		return 'x', styleRubble
	}
	if d.Kind == types.DefenseArcherTower {
		return 'A', styleArcherTower
	}
	return 'C', styleCannon
}

// fillEntity 用 glyph 填满实体覆盖的单元格，至少一格
func (r *Renderer) fillEntity(g grid, e game.EntityView, glyph rune, style tcell.Style) {
	x0, y0 := g.cell(e.X, e.Y)
	x1, y1 := g.cell(e.X+e.Size, e.Y+e.Size)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawBanner(lines []string, w, h int) {
	y := h/2 - len(lines)/2
	for _, line := range lines {
		x := (w - len(line)) / 2
		r.drawString(max(x, 0), y, line, styleBanner)
		y++
	}
}

func (r *Renderer) drawString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
