package game

// State 游戏顶层状态
// 同一时刻只有一个状态生效，只有状态切换才会重置或推进实体
type State int

const (
	// StatePlaying 正在游戏中，唯一会推进模拟的状态
	StatePlaying State = iota
	// StateLevelComplete 当前关卡的防御塔全部被摧毁，等待确认进入下一关
	StateLevelComplete
	// StateGameOver 玩家死亡，等待确认重新开始
	StateGameOver
	// StateVictory 通过最后一关，等待确认重新开始
	StateVictory
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Stats 本局统计数据
type Stats struct {
	DefensesDestroyed int // 摧毁的防御塔数量
	AttacksLanded     int // 命中的攻击次数
	ProjectilesFired  int // 防御塔发射的子弹数量
	DamageTaken       int // 玩家受到的总伤害
}
