package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/airhockey/pkg/app"
	"github.com/decker502/airhockey/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "对局配置文件（默认使用内置 data/match.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置文件中的值）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Air Hockey")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	runErr := ebiten.RunGame(gameApp)
	gameApp.SaveOnExit()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
