// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、创建实体、组装系统，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/entities"
	"github.com/decker502/rangeslider/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Demo 演示配置（窗口、外观、滑动条列表）
	Demo *config.DemoConfig
	// Input 指针输入，为 nil 时使用鼠标/触摸
	Input systems.PointerInput
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager

	inputSystem  *systems.RangeSliderInputSystem
	layoutSystem *systems.RangeSliderLayoutSystem
	sliderRender *systems.RangeSliderRenderSystem
	labelRender  *systems.LabelRenderSystem

	background   color.RGBA
	screenWidth  int
	screenHeight int
	verbose      bool
}

// NewApp 创建并初始化演示程序
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Demo == nil {
		return nil, fmt.Errorf("demo config is required")
	}
	demo := cfg.Demo

	background, err := config.ParseHexColor(demo.Window.Background)
	if err != nil {
		return nil, fmt.Errorf("窗口背景色无效: %w", err)
	}
	style, err := demo.Style.ToStyle()
	if err != nil {
		return nil, fmt.Errorf("滑动条外观配置无效: %w", err)
	}

	em := ecs.NewEntityManager()
	layout := demo.Layout

	y := layout.Margin
	for i, sliderCfg := range demo.Sliders {
		_, err := entities.NewRangeSliderRow(em, entities.RangeSliderRowOptions{
			X:            layout.Margin,
			Y:            y,
			Width:        layout.MinWidth,
			Height:       layout.RowHeight,
			LabelWidth:   layout.LabelWidth,
			LabelSpacing: layout.LabelSpacing,
			Style:        style,
			Slider:       sliderCfg,
		})
		if err != nil {
			return nil, fmt.Errorf("滑动条 %d 创建失败: %w", i, err)
		}
		y += layout.RowHeight + layout.RowSpacing
	}
	log.Printf("[App] Created %d range sliders", len(demo.Sliders))

	labelRender, err := systems.NewLabelRenderSystem(em)
	if err != nil {
		return nil, err
	}

	var inputSystem *systems.RangeSliderInputSystem
	if cfg.Input != nil {
		inputSystem = systems.NewRangeSliderInputSystemWithInput(em, cfg.Input)
	} else {
		inputSystem = systems.NewRangeSliderInputSystem(em)
	}

	return &App{
		entityManager: em,
		inputSystem:   inputSystem,
		layoutSystem:  systems.NewRangeSliderLayoutSystem(em, layout.Margin, layout.MinWidth),
		sliderRender:  systems.NewRangeSliderRenderSystem(em),
		labelRender:   labelRender,
		background:    background,
		screenWidth:   demo.Window.Width,
		screenHeight:  demo.Window.Height,
		verbose:       cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.step()
	return nil
}

// step 运行一帧的系统更新
// 先布局再处理输入，保证拖拽换算使用本帧的控件宽度
func (a *App) step() {
	a.layoutSystem.Update(a.screenWidth)
	a.inputSystem.Update()
	a.entityManager.RemoveMarkedEntities()
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.sliderRender.Draw(screen)
	a.labelRender.Draw(screen)
}

// Layout 使用窗口的实际尺寸作为逻辑尺寸，窗口缩放时滑动条随之拉伸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.screenWidth || outsideHeight != a.screenHeight {
		log.Printf("[App] Layout changed to %dx%d", outsideWidth, outsideHeight)
	}
	a.screenWidth, a.screenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// EntityManager 返回实体管理器
func (a *App) EntityManager() *ecs.EntityManager {
	return a.entityManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
