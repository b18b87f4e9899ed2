package config

// 单位配置常量
// 本文件定义了竞技场、玩家、防御塔和子弹的默认参数
// 运行时可通过 data/tuning.yaml 覆盖（见 tuning.go）

// Arena Configuration (竞技场配置)
const (
	// ArenaWidth 竞技场宽度（像素），同时也是窗口逻辑宽度
	ArenaWidth = 800.0

	// ArenaHeight 竞技场高度（像素）
	ArenaHeight = 600.0

	// TileSize 实体边长（像素），玩家和防御塔的碰撞盒均为 TileSize×TileSize
	TileSize = 50.0

	// TicksPerSecond 模拟帧率，每帧调用一次 Game.Update
	TicksPerSecond = 60
)

// Player Configuration (玩家配置)
const (
	// PlayerMaxHealth 玩家最大生命值
	PlayerMaxHealth = 100

	// PlayerSpeed 玩家每帧移动距离（像素/帧），各轴独立
	PlayerSpeed = 5.0

	// PlayerAttackRange 玩家近战攻击范围（像素）
	PlayerAttackRange = 100.0

	// PlayerAttackDamage 玩家单次攻击伤害
	PlayerAttackDamage = 25

	// PlayerAttackCooldownMs 玩家攻击冷却时间（毫秒）
	PlayerAttackCooldownMs = 500

	// PlayerLevelHealBonus 进入下一关时恢复的生命值（不超过上限）
	PlayerLevelHealBonus = 30
)

// Projectile Configuration (子弹配置)
const (
	// ProjectileSpeed 子弹移动速度（像素/帧）
	ProjectileSpeed = 7.0

	// ProjectileSize 子弹碰撞盒边长（像素），以子弹位置为中心
	ProjectileSize = 10.0
)

// Defense Configuration (防御塔配置)
const (
	// CannonHealth 加农炮生命值
	CannonHealth = 150
	// CannonDamage 加农炮子弹伤害
	CannonDamage = 20
	// CannonAttackRange 加农炮射程（像素）
	CannonAttackRange = 220.0
	// CannonFireRateMs 加农炮开火间隔（毫秒）
	CannonFireRateMs = 2000

	// ArcherTowerHealth 箭塔生命值
	ArcherTowerHealth = 75
	// ArcherTowerDamage 箭塔子弹伤害
	ArcherTowerDamage = 8
	// ArcherTowerAttackRange 箭塔射程（像素）
	ArcherTowerAttackRange = 300.0
	// ArcherTowerFireRateMs 箭塔开火间隔（毫秒）
	ArcherTowerFireRateMs = 1000
)

// Level Configuration (关卡配置)
const (
	// FinalLevel 最后一关编号，通过后进入胜利状态
	FinalLevel = 3

	// BaseDefenseCount 第 0 关的防御塔数量基数，第 N 关数量为 BaseDefenseCount + N*DefensesPerLevel
	BaseDefenseCount = 2

	// DefensesPerLevel 每提升一关增加的防御塔数量
	DefensesPerLevel = 1

	// SpawnMargin 防御塔生成区域距竞技场边缘的最小距离（像素）
	// 避免防御塔生成在玩家出生点上
	SpawnMargin = 100.0
)
