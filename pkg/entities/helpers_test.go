package entities

import (
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/types"
)

// newTestTuning 返回测试用默认配置
func newTestTuning() *config.Tuning {
	return config.DefaultTuning()
}

// newTestDefense 在指定位置创建一座测试用防御塔
func newTestDefense(t *config.Tuning, kind types.DefenseKind, x, y float64) *Defense {
	stats, _ := t.DefenseStatsFor(kind)
	return NewDefense(kind, x, y, t.Arena.TileSize, stats)
}
