package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/entities"
	"github.com/gonewx/bladefury/pkg/types"
)

// Level 一个关卡及其防御塔
// 防御塔集合在创建时固定，关卡切换时整体替换
type Level struct {
	Number   int
	Defenses []*entities.Defense
}

// NewLevel 创建关卡并随机生成防御塔
// 防御塔数量随关卡编号增加（见 config.Tuning.DefenseCount）
func NewLevel(number int, t *config.Tuning, rng *rand.Rand) *Level {
	l := &Level{Number: number}
	l.createDefenses(t.DefenseCount(number), t, rng)
	log.Printf("[Level] 关卡 %d 生成 %d 座防御塔", number, len(l.Defenses))
	return l
}

// createDefenses 随机生成 count 座防御塔
//
// 每座防御塔的类型从 types.DefenseKinds 中均匀随机选择，
// 位置在距竞技场边缘 SpawnMargin 以内的安全区域中均匀随机，
// 属性取自该类型的模板。位置不保证互不重叠。
func (l *Level) createDefenses(count int, catalog *config.Tuning, rng *rand.Rand) {
	tile := catalog.Arena.TileSize
	margin := catalog.Levels.SpawnMargin
	spanX := catalog.Arena.Width - 2*margin - tile
	spanY := catalog.Arena.Height - 2*margin - tile

	l.Defenses = make([]*entities.Defense, 0, count)
	for i := 0; i < count; i++ {
		kind := types.DefenseKinds[rng.Intn(len(types.DefenseKinds))]
		stats, ok := catalog.DefenseStatsFor(kind)
		if !ok {
			log.Printf("[Level] Warning: no stats for defense kind %s, skipping", kind)
			continue
		}
		x := margin + rng.Float64()*spanX
		y := margin + rng.Float64()*spanY
		l.Defenses = append(l.Defenses, entities.NewDefense(kind, x, y, tile, stats))
	}
}

// IsCompleted 所有防御塔都被摧毁时关卡完成
func (l *Level) IsCompleted() bool {
	for _, d := range l.Defenses {
		if !d.IsDestroyed() {
			return false
		}
	}
	return true
}

// Remaining 返回尚未被摧毁的防御塔数量
func (l *Level) Remaining() int {
	n := 0
	for _, d := range l.Defenses {
		if !d.IsDestroyed() {
			n++
		}
	}
	return n
}
