package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/bladefury/pkg/game"
)

// DefaultHoldWindow 按键按下后被视为“持续按住”的时长
// 终端只报告按下（以及自动重复），不报告松开
const DefaultHoldWindow = 200 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionLeft
	actionRight
	actionAttack
	actionConfirm
	actionPause
	actionMute
	actionQuit
)

// classify 把终端按键映射为游戏动作
// 方向键/WASD 移动，空格/J 攻击，回车确认，Esc/P 暂停，M 静音，Q/Ctrl-C 退出
func classify(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEnter:
		return actionConfirm
	case tcell.KeyEscape:
		return actionPause
	case tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return actionUp
		case 's':
			return actionDown
		case 'a':
			return actionLeft
		case 'd':
			return actionRight
		case ' ', 'j':
			return actionAttack
		case 'p':
			return actionPause
		case 'm':
			return actionMute
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// KeyTracker 用“最近一次按下的时间”近似按键的按住状态
// 时间戳为毫秒，来自 game.Clock
type KeyTracker struct {
	window int64
	last   map[action]int64
}

// NewKeyTracker 创建按键跟踪器，window <= 0 时使用 DefaultHoldWindow
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{
		window: window.Milliseconds(),
		last:   make(map[action]int64),
	}
}

// Press 记录一次按下
func (k *KeyTracker) Press(a action, at int64) {
	k.last[a] = at
}

// Reset 清除所有按住状态
func (k *KeyTracker) Reset() {
	clear(k.last)
}

func (k *KeyTracker) held(a action, now int64) bool {
	t, ok := k.last[a]
	return ok && now-t < k.window
}

// State 返回 now 时刻的输入状态
func (k *KeyTracker) State(now int64) game.InputState {
	return game.InputState{
		Up:     k.held(actionUp, now),
		Down:   k.held(actionDown, now),
		Left:   k.held(actionLeft, now),
		Right:  k.held(actionRight, now),
		Attack: k.held(actionAttack, now),
	}
}
