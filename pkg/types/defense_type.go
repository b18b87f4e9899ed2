// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// DefenseKind 定义防御塔的种类
type DefenseKind int

const (
	// DefenseUnknown 未知防御塔类型
	DefenseUnknown DefenseKind = iota
	// DefenseCannon 加农炮：血厚、伤害高、射速慢
	DefenseCannon
	// DefenseArcherTower 箭塔：血薄、伤害低、射程远、射速快
	DefenseArcherTower
)

// DefenseKinds 可随机生成的防御塔类型列表（顺序固定，供均匀随机选择）
var DefenseKinds = []DefenseKind{DefenseCannon, DefenseArcherTower}

// String 返回防御塔类型的配置键名
func (k DefenseKind) String() string {
	switch k {
	case DefenseCannon:
		return "cannon"
	case DefenseArcherTower:
		return "archerTower"
	default:
		return "unknown"
	}
}

// ParseDefenseKind 将配置键名解析为 DefenseKind
func ParseDefenseKind(name string) (DefenseKind, error) {
	for _, k := range DefenseKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return DefenseUnknown, fmt.Errorf("unknown defense kind %q", name)
}
