package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gonewx/bladefury/pkg/app"
	"github.com/gonewx/bladefury/pkg/config"
	"github.com/gonewx/bladefury/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置的 data/tuning.yaml）")
	watch      = flag.Bool("watch", false, "监听调参文件变化并热重载")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	level      = flag.Int("level", 0, "直接从指定关卡开始（跳过标题菜单）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
		Seed:       *seed,
		StartLevel: *level,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()

	w, h := a.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Blade of Fury")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
