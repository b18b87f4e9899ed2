package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/bladefury/pkg/config"
)

func TestLoadTuningFallsBackToDefaults(t *testing.T) {
	// 测试在 cmd/bladefury-term 目录下运行，默认路径不存在
	tuning, err := loadTuning(config.DefaultTuningPath)
	if err != nil {
		t.Fatalf("loadTuning() error = %v", err)
	}
	if tuning.Levels.Final != config.FinalLevel {
		t.Errorf("Expected default final level %d, got %d", config.FinalLevel, tuning.Levels.Final)
	}
}

func TestLoadTuningExplicitMissingPathFails(t *testing.T) {
	if _, err := loadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("显式指定的文件不存在时应返回错误")
	}
}

func TestSetupLogWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term.log")
	closeLog, err := setupLog(path)
	if err != nil {
		t.Fatalf("setupLog() error = %v", err)
	}
	closeLog()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("日志文件应被创建: %v", err)
	}
}
