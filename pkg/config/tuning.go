package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gonewx/bladefury/pkg/embedded"
	"github.com/gonewx/bladefury/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultTuningPath 内置调参文件路径（嵌入资源）
const DefaultTuningPath = "data/tuning.yaml"

// ErrArenaChanged 热重载的配置修改了竞技场尺寸
// 窗口布局和已创建实体的边界都依赖竞技场尺寸，运行中不能修改
var ErrArenaChanged = errors.New("arena cannot change while running")

// Tuning 游戏数值配置
// 所有字段都有默认值（见 DefaultTuning），YAML 文件只需覆盖需要修改的字段
type Tuning struct {
	Arena      ArenaTuning             `yaml:"arena"`      // 竞技场尺寸
	Player     PlayerTuning            `yaml:"player"`     // 玩家属性
	Projectile ProjectileTuning        `yaml:"projectile"` // 子弹属性
	Defenses   map[string]DefenseStats `yaml:"defenses"`   // 防御塔属性模板，键为 DefenseKind.String()
	Levels     LevelTuning             `yaml:"levels"`     // 关卡参数
}

// ArenaTuning 竞技场配置
type ArenaTuning struct {
	Width    float64 `yaml:"width"`    // 竞技场宽度（像素）
	Height   float64 `yaml:"height"`   // 竞技场高度（像素）
	TileSize float64 `yaml:"tileSize"` // 实体边长（像素）
}

// PlayerTuning 玩家配置
type PlayerTuning struct {
	MaxHealth        int     `yaml:"maxHealth"`        // 最大生命值
	Speed            float64 `yaml:"speed"`            // 每帧移动距离
	AttackRange      float64 `yaml:"attackRange"`      // 攻击范围
	AttackDamage     int     `yaml:"attackDamage"`     // 攻击伤害
	AttackCooldownMs int64   `yaml:"attackCooldownMs"` // 攻击冷却（毫秒）
	LevelHealBonus   int     `yaml:"levelHealBonus"`   // 过关回血量
}

// ProjectileTuning 子弹配置
type ProjectileTuning struct {
	Speed float64 `yaml:"speed"` // 每帧移动距离
	Size  float64 `yaml:"size"`  // 碰撞盒边长
}

// DefenseStats 单个防御塔类型的属性模板
type DefenseStats struct {
	Health      int     `yaml:"health"`      // 生命值
	Damage      int     `yaml:"damage"`      // 子弹伤害
	AttackRange float64 `yaml:"attackRange"` // 射程
	FireRateMs  int64   `yaml:"fireRateMs"`  // 开火间隔（毫秒）
}

// LevelTuning 关卡配置
type LevelTuning struct {
	Final            int     `yaml:"final"`            // 最后一关编号
	BaseDefenseCount int     `yaml:"baseDefenseCount"` // 防御塔数量基数
	DefensesPerLevel int     `yaml:"defensesPerLevel"` // 每关增加的防御塔数量
	SpawnMargin      float64 `yaml:"spawnMargin"`      // 生成区域边距
}

// DefaultTuning 返回使用 unit_config.go 常量构建的默认配置
func DefaultTuning() *Tuning {
	return &Tuning{
		Arena: ArenaTuning{
			Width:    ArenaWidth,
			Height:   ArenaHeight,
			TileSize: TileSize,
		},
		Player: PlayerTuning{
			MaxHealth:        PlayerMaxHealth,
			Speed:            PlayerSpeed,
			AttackRange:      PlayerAttackRange,
			AttackDamage:     PlayerAttackDamage,
			AttackCooldownMs: PlayerAttackCooldownMs,
			LevelHealBonus:   PlayerLevelHealBonus,
		},
		Projectile: ProjectileTuning{
			Speed: ProjectileSpeed,
			Size:  ProjectileSize,
		},
		Defenses: map[string]DefenseStats{
			types.DefenseCannon.String(): {
				Health:      CannonHealth,
				Damage:      CannonDamage,
				AttackRange: CannonAttackRange,
				FireRateMs:  CannonFireRateMs,
			},
			types.DefenseArcherTower.String(): {
				Health:      ArcherTowerHealth,
				Damage:      ArcherTowerDamage,
				AttackRange: ArcherTowerAttackRange,
				FireRateMs:  ArcherTowerFireRateMs,
			},
		},
		Levels: LevelTuning{
			Final:            FinalLevel,
			BaseDefenseCount: BaseDefenseCount,
			DefensesPerLevel: DefensesPerLevel,
			SpawnMargin:      SpawnMargin,
		},
	}
}

// LoadTuning 从 YAML 文件加载数值配置
// 以 "data/" 开头的路径优先从嵌入资源读取，其余路径从文件系统读取
//
// 返回：
//
//	*Tuning - 合并默认值后的配置
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadTuning(path string) (*Tuning, error) {
	return loadTuning(path, readConfigFile)
}

// LoadTuningFile 总是从文件系统读取配置
// 热重载时使用，嵌入资源中的副本不会随编辑变化
func LoadTuningFile(path string) (*Tuning, error) {
	return loadTuning(path, os.ReadFile)
}

func loadTuning(path string, read func(string) ([]byte, error)) (*Tuning, error) {
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning 解析 YAML 数据并覆盖到默认配置上
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(t); err != nil {
		return nil, err
	}
	return t, nil
}

func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(path, "data/") && embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// validateTuning 验证配置的合法性，返回第一个不合法字段
func validateTuning(t *Tuning) error {
	a := t.Arena
	if a.TileSize <= 0 {
		return fmt.Errorf("arena.tileSize must be positive, got %v", a.TileSize)
	}
	if a.Width <= a.TileSize || a.Height <= a.TileSize {
		return fmt.Errorf("arena (%vx%v) must be larger than one tile (%v)", a.Width, a.Height, a.TileSize)
	}

	p := t.Player
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", p.MaxHealth)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %v", p.Speed)
	}
	if p.AttackRange <= 0 {
		return fmt.Errorf("player.attackRange must be positive, got %v", p.AttackRange)
	}
	if p.AttackDamage <= 0 {
		return fmt.Errorf("player.attackDamage must be positive, got %d", p.AttackDamage)
	}
	if p.AttackCooldownMs < 0 {
		return fmt.Errorf("player.attackCooldownMs cannot be negative, got %d", p.AttackCooldownMs)
	}
	if p.LevelHealBonus < 0 {
		return fmt.Errorf("player.levelHealBonus cannot be negative, got %d", p.LevelHealBonus)
	}

	if t.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile.speed must be positive, got %v", t.Projectile.Speed)
	}
	if t.Projectile.Size <= 0 {
		return fmt.Errorf("projectile.size must be positive, got %v", t.Projectile.Size)
	}

	for name := range t.Defenses {
		if _, err := types.ParseDefenseKind(name); err != nil {
			return fmt.Errorf("defenses: %w", err)
		}
	}
	for _, kind := range types.DefenseKinds {
		stats, ok := t.Defenses[kind.String()]
		if !ok {
			return fmt.Errorf("defenses.%s is required", kind)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("defenses.%s.health must be positive, got %d", kind, stats.Health)
		}
		if stats.Damage <= 0 {
			return fmt.Errorf("defenses.%s.damage must be positive, got %d", kind, stats.Damage)
		}
		if stats.AttackRange <= 0 {
			return fmt.Errorf("defenses.%s.attackRange must be positive, got %v", kind, stats.AttackRange)
		}
		if stats.FireRateMs <= 0 {
			return fmt.Errorf("defenses.%s.fireRateMs must be positive, got %d", kind, stats.FireRateMs)
		}
	}

	l := t.Levels
	if l.Final < 1 {
		return fmt.Errorf("levels.final must be at least 1, got %d", l.Final)
	}
	if l.BaseDefenseCount+l.DefensesPerLevel < 1 {
		return fmt.Errorf("level 1 must have at least one defense (baseDefenseCount=%d, defensesPerLevel=%d)",
			l.BaseDefenseCount, l.DefensesPerLevel)
	}
	if l.DefensesPerLevel < 0 {
		return fmt.Errorf("levels.defensesPerLevel cannot be negative, got %d", l.DefensesPerLevel)
	}
	if l.SpawnMargin < 0 {
		return fmt.Errorf("levels.spawnMargin cannot be negative, got %v", l.SpawnMargin)
	}
	if 2*l.SpawnMargin+a.TileSize > a.Width || 2*l.SpawnMargin+a.TileSize > a.Height {
		return fmt.Errorf("levels.spawnMargin %v leaves no room to place defenses in a %vx%v arena",
			l.SpawnMargin, a.Width, a.Height)
	}

	return nil
}

// DefenseStatsFor 获取指定防御塔类型的属性模板
// 如果类型不存在，返回零值和 false
func (t *Tuning) DefenseStatsFor(kind types.DefenseKind) (DefenseStats, bool) {
	stats, ok := t.Defenses[kind.String()]
	return stats, ok
}

// PlayerSpawn 返回玩家出生点（左上角坐标）：底部居中，距底边一个格子
func (t *Tuning) PlayerSpawn() (float64, float64) {
	return t.Arena.Width/2 - t.Arena.TileSize/2, t.Arena.Height - 2*t.Arena.TileSize
}

// DefenseCount 返回指定关卡的防御塔数量
func (t *Tuning) DefenseCount(level int) int {
	n := t.Levels.BaseDefenseCount + level*t.Levels.DefensesPerLevel
	if n < 1 {
		return 1
	}
	return n
}

// MaxX 返回实体左上角 X 坐标上限
func (t *Tuning) MaxX() float64 {
	return t.Arena.Width - t.Arena.TileSize
}

// MaxY 返回实体左上角 Y 坐标上限
func (t *Tuning) MaxY() float64 {
	return t.Arena.Height - t.Arena.TileSize
}

// CheckReload 检查 next 能否在运行中替换 t
// 竞技场尺寸（含格子大小）不同时返回 ErrArenaChanged
func (t *Tuning) CheckReload(next *Tuning) error {
	if next.Arena != t.Arena {
		return fmt.Errorf("%w: %+v → %+v", ErrArenaChanged, t.Arena, next.Arena)
	}
	return nil
}
