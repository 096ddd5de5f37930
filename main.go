package main

import (
	"flag"
	"log"

	"github.com/decker502/rangeslider/pkg/app"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// 默认配置在嵌入资源中的路径
const defaultConfigPath = "assets/config/demo.yaml"

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "演示配置文件路径（为空时使用内置配置）")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS)

	demo, err := loadDemoConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Demo:    demo,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(demo.Window.Width, demo.Window.Height)
	ebiten.SetWindowTitle(demo.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

// loadDemoConfig 加载外部配置文件，未指定时使用内置配置
func loadDemoConfig(path string) (*config.DemoConfig, error) {
	if path != "" {
		return config.LoadDemoConfig(path)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseDemoConfig(data)
}
