package game

// InputState 一帧的输入状态
// 由表现层根据按键轮询结果填充，具体按键绑定与核心无关
type InputState struct {
	Up, Down, Left, Right bool // 当前按住的方向，可任意组合
	Attack                bool // 是否按住攻击键
}

// MovementDelta 计算本帧位移（8 方向，两轴独立 ±speed）
// 相反方向同时按下时互相抵消
func (in InputState) MovementDelta(speed float64) (float64, float64) {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	return dx, dy
}

// IsIdle 没有任何按键被按住
func (in InputState) IsIdle() bool {
	return !in.Up && !in.Down && !in.Left && !in.Right && !in.Attack
}
