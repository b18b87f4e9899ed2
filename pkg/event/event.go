// Package event 提供游戏事件的发布/订阅
//
// 模拟核心只负责发布事件，音效、日志等表现层通过订阅获得通知，
// 核心本身不依赖任何订阅者。
package event

// Type 事件类型
type Type string

const (
	// PlayerAttacked 玩家攻击命中防御塔，Amount 为造成的伤害
	PlayerAttacked Type = "player_attacked"
	// DefenseDestroyed 防御塔被摧毁
	DefenseDestroyed Type = "defense_destroyed"
	// ProjectileFired 防御塔发射子弹
	ProjectileFired Type = "projectile_fired"
	// PlayerHit 玩家被子弹击中，Amount 为受到的伤害
	PlayerHit Type = "player_hit"
	// LevelStarted 关卡开始（包括重新开始）
	LevelStarted Type = "level_started"
	// LevelComplete 关卡所有防御塔被摧毁
	LevelComplete Type = "level_complete"
	// GameOver 玩家死亡
	GameOver Type = "game_over"
	// Victory 通过最后一关
	Victory Type = "victory"
)

// Event 事件数据
type Event struct {
	Type   Type
	Time   int64   // 事件发生时的时间戳（毫秒）
	Level  int     // 当前关卡编号
	Amount int     // 伤害等数值，无意义时为 0
	X, Y   float64 // 事件发生位置，无意义时为 0
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 允许普通函数作为订阅者
type ListenerFunc func(e Event)

// OnEvent 调用函数本身
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher 事件分发器
// 与游戏循环在同一线程中同步分发，不做缓冲
type Dispatcher struct {
	listeners map[Type][]Listener
	wildcard  []Listener
}

// NewDispatcher 创建新的分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.wildcard = append(d.wildcard, l)
}

// Dispatch 按订阅顺序通知所有订阅者
// nil 分发器上调用是安全的空操作
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.wildcard {
		l.OnEvent(e)
	}
}
