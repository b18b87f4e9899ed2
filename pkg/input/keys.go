// Package input 把 ebiten 键盘状态映射为游戏动作
// 只有窗口前端使用，模拟核心不依赖本包
package input

import (
	"strings"

	"github.com/gonewx/bladefury/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 按键绑定
// 每个动作可以绑定多个按键，任意一个按下即视为触发
type KeyBindings struct {
	Up      []ebiten.Key
	Down    []ebiten.Key
	Left    []ebiten.Key
	Right   []ebiten.Key
	Attack  []ebiten.Key
	Confirm []ebiten.Key
	Pause   []ebiten.Key
}

// DefaultKeyBindings 返回默认按键绑定
// 方向键和 WASD 移动，空格/J 攻击，回车确认，Esc/P 暂停
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:      []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Attack:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ},
		Confirm: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		Pause:   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
	}
}

// PollHeld 轮询当前按住的移动和攻击键
func (b KeyBindings) PollHeld() game.InputState {
	return b.held(ebiten.IsKeyPressed)
}

func (b KeyBindings) held(pressed func(ebiten.Key) bool) game.InputState {
	return game.InputState{
		Up:     anyKey(b.Up, pressed),
		Down:   anyKey(b.Down, pressed),
		Left:   anyKey(b.Left, pressed),
		Right:  anyKey(b.Right, pressed),
		Attack: anyKey(b.Attack, pressed),
	}
}

// ConfirmJustPressed 确认键是否在本帧刚按下
func (b KeyBindings) ConfirmJustPressed() bool {
	return anyKey(b.Confirm, inpututil.IsKeyJustPressed)
}

// PauseJustPressed 暂停键是否在本帧刚按下
func (b KeyBindings) PauseJustPressed() bool {
	return anyKey(b.Pause, inpututil.IsKeyJustPressed)
}

// anyKey 任意一个按键满足 pressed 即返回 true
func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// KeyNames 返回按键名称列表，用 " / " 连接，用于操作说明
func KeyNames(keys []ebiten.Key) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return strings.Join(names, " / ")
}
