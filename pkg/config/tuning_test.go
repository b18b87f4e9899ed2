package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/bladefury/pkg/embedded"
	"github.com/gonewx/bladefury/pkg/types"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := validateTuning(DefaultTuning()); err != nil {
		t.Fatalf("DefaultTuning() should be valid, got %v", err)
	}
}

func TestDefaultTuningStatTemplates(t *testing.T) {
	tuning := DefaultTuning()

	cannon, ok := tuning.DefenseStatsFor(types.DefenseCannon)
	if !ok {
		t.Fatal("cannon stats missing")
	}
	archer, ok := tuning.DefenseStatsFor(types.DefenseArcherTower)
	if !ok {
		t.Fatal("archer tower stats missing")
	}

	if cannon.Health <= archer.Health {
		t.Errorf("cannon health %d should exceed archer tower health %d", cannon.Health, archer.Health)
	}
	if cannon.Damage <= archer.Damage {
		t.Errorf("cannon damage %d should exceed archer tower damage %d", cannon.Damage, archer.Damage)
	}
	if archer.AttackRange <= cannon.AttackRange {
		t.Errorf("archer tower range %.0f should exceed cannon range %.0f", archer.AttackRange, cannon.AttackRange)
	}
	if cannon.FireRateMs <= archer.FireRateMs {
		t.Errorf("cannon should fire slower: cannon %dms, archer %dms", cannon.FireRateMs, archer.FireRateMs)
	}

	if _, ok := tuning.DefenseStatsFor(types.DefenseUnknown); ok {
		t.Error("unknown kind should have no stats")
	}
}

func TestParseTuningOverridesDefaults(t *testing.T) {
	data := []byte(`
player:
  speed: 8
levels:
  final: 5
`)
	tuning, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning() error = %v", err)
	}

	if tuning.Player.Speed != 8 {
		t.Errorf("Expected player speed 8, got %v", tuning.Player.Speed)
	}
	if tuning.Levels.Final != 5 {
		t.Errorf("Expected final level 5, got %d", tuning.Levels.Final)
	}
	// 未覆盖的字段保持默认值
	if tuning.Player.MaxHealth != PlayerMaxHealth {
		t.Errorf("Expected default max health %d, got %d", PlayerMaxHealth, tuning.Player.MaxHealth)
	}
	if _, ok := tuning.DefenseStatsFor(types.DefenseCannon); !ok {
		t.Error("default cannon stats should survive a partial override")
	}
}

func TestParseTuningValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "玩家生命值为零",
			yaml:    "player:\n  maxHealth: 0\n",
			wantErr: "player.maxHealth",
		},
		{
			name:    "负的攻击冷却",
			yaml:    "player:\n  attackCooldownMs: -1\n",
			wantErr: "player.attackCooldownMs",
		},
		{
			name:    "子弹速度为零",
			yaml:    "projectile:\n  speed: 0\n",
			wantErr: "projectile.speed",
		},
		{
			name:    "未知防御塔类型",
			yaml:    "defenses:\n  catapult:\n    health: 10\n    damage: 1\n    attackRange: 10\n    fireRateMs: 10\n",
			wantErr: "unknown defense kind",
		},
		{
			name:    "防御塔开火间隔为零",
			yaml:    "defenses:\n  cannon:\n    health: 10\n    damage: 1\n    attackRange: 10\n    fireRateMs: 0\n",
			wantErr: "defenses.cannon.fireRateMs",
		},
		{
			name:    "边距过大",
			yaml:    "levels:\n  spawnMargin: 400\n",
			wantErr: "levels.spawnMargin",
		},
		{
			name:    "竞技场比格子小",
			yaml:    "arena:\n  width: 40\n",
			wantErr: "must be larger than one tile",
		},
		{
			name:    "YAML 语法错误",
			yaml:    "player: [",
			wantErr: "failed to parse tuning YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  attackDamage: 40\n"), 0644); err != nil {
		t.Fatalf("failed to write tuning file: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if tuning.Player.AttackDamage != 40 {
		t.Errorf("Expected attack damage 40, got %d", tuning.Player.AttackDamage)
	}
}

func TestLoadTuningFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultTuningPath: &fstest.MapFile{Data: []byte("levels:\n  final: 4\n")},
	})
	defer embedded.Init(nil)

	tuning, err := LoadTuning(DefaultTuningPath)
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if tuning.Levels.Final != 4 {
		t.Errorf("Expected final level 4, got %d", tuning.Levels.Final)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestDefenseCountScalesWithLevel(t *testing.T) {
	tuning := DefaultTuning()

	prev := 0
	for level := 1; level <= tuning.Levels.Final; level++ {
		n := tuning.DefenseCount(level)
		if n <= prev {
			t.Errorf("level %d: defense count %d should exceed previous %d", level, n, prev)
		}
		prev = n
	}
	if got := tuning.DefenseCount(1); got != 3 {
		t.Errorf("Expected 3 defenses on level 1, got %d", got)
	}
}

func TestPlayerSpawnInsideArena(t *testing.T) {
	tuning := DefaultTuning()
	x, y := tuning.PlayerSpawn()

	if x < 0 || x > tuning.MaxX() || y < 0 || y > tuning.MaxY() {
		t.Errorf("spawn (%.0f, %.0f) outside arena bounds", x, y)
	}
	// 出生点必须位于防御塔生成区域之外
	if y < tuning.Arena.Height-tuning.Levels.SpawnMargin-tuning.Arena.TileSize {
		t.Errorf("spawn y %.0f overlaps defense spawn region", y)
	}
}

func TestLoadTuningFileIgnoresEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultTuningPath: &fstest.MapFile{Data: []byte("levels:\n  final: 4\n")},
	})
	defer embedded.Init(nil)

	// 测试在 pkg/config 目录下运行，磁盘上没有 data/tuning.yaml
	_, err := LoadTuningFile(DefaultTuningPath)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadTuningFile 应只读取文件系统，got err = %v", err)
	}
}

func TestCheckReload(t *testing.T) {
	current := DefaultTuning()

	tests := []struct {
		name    string
		modify  func(*Tuning)
		wantErr bool
	}{
		{"数值修改", func(c *Tuning) { c.Player.Speed = 8 }, false},
		{"关卡数修改", func(c *Tuning) { c.Levels.Final = 5 }, false},
		{"竞技场宽度", func(c *Tuning) { c.Arena.Width = 1024 }, true},
		{"格子大小", func(c *Tuning) { c.Arena.TileSize = 40 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := DefaultTuning()
			tt.modify(next)
			err := current.CheckReload(next)
			if tt.wantErr != errors.Is(err, ErrArenaChanged) {
				t.Errorf("CheckReload() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckReload() unexpected error = %v", err)
			}
		})
	}
}
