package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/rangeslider/pkg/rangeslider"
	"gopkg.in/yaml.v3"
)

// 演示程序配置
//
// 描述窗口、滑动条外观以及要创建的滑动条列表，
// 默认配置嵌入在 assets/config/demo.yaml 中。

// LabelMode 滑动条两侧标签的显示方式
type LabelMode string

const (
	// LabelNone 不显示标签
	LabelNone LabelMode = "none"
	// LabelNumber 显示数值
	LabelNumber LabelMode = "number"
	// LabelSize 显示人类可读的文件大小
	LabelSize LabelMode = "size"
)

// DemoConfig 演示程序配置根节点
type DemoConfig struct {
	Window  WindowConfig   `yaml:"window"`
	Style   StyleConfig    `yaml:"style"`
	Layout  LayoutConfig   `yaml:"layout"`
	Sliders []SliderConfig `yaml:"sliders"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

// LayoutConfig 控件排布参数（像素）
type LayoutConfig struct {
	Margin       float64 `yaml:"margin"`       // 窗口四周边距
	RowHeight    float64 `yaml:"rowHeight"`    // 每一行滑动条的高度
	RowSpacing   float64 `yaml:"rowSpacing"`   // 行间距
	LabelWidth   float64 `yaml:"labelWidth"`   // 标签宽度
	LabelSpacing float64 `yaml:"labelSpacing"` // 标签与滑动条的间距
	MinWidth     float64 `yaml:"minWidth"`     // 滑动条拉伸后的最小宽度，窗口过窄时标签可能超出窗口
}

// StyleConfig 滑动条外观
type StyleConfig struct {
	TrackColor  string `yaml:"trackColor"`
	FillColor   string `yaml:"fillColor"`
	BorderColor string `yaml:"borderColor"`
	ThumbColor  string `yaml:"thumbColor"`
	ThumbWidth  int    `yaml:"thumbWidth"`
	ThumbHeight int    `yaml:"thumbHeight"`
	TrackHeight int    `yaml:"trackHeight"`
	TrackMargin int    `yaml:"trackMargin"`
	TickPadding int    `yaml:"tickPadding"`
}

// SliderConfig 单个滑动条
type SliderConfig struct {
	Min    int64     `yaml:"min"`
	Max    int64     `yaml:"max"`
	Left   *int64    `yaml:"left,omitempty"`  // 为空时取 Min
	Right  *int64    `yaml:"right,omitempty"` // 为空时取 Max
	Ticks  int       `yaml:"ticks"`
	Labels LabelMode `yaml:"labels"`
}

// LoadDemoConfig 从 YAML 文件加载演示配置
func LoadDemoConfig(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo config file %s: %w", path, err)
	}

	cfg, err := ParseDemoConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseDemoConfig 解析并校验 YAML 数据
// 未填写的窗口、布局和外观字段使用默认值
func ParseDemoConfig(data []byte) (*DemoConfig, error) {
	cfg := defaultDemoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo config YAML: %w", err)
	}

	for i := range cfg.Sliders {
		if cfg.Sliders[i].Labels == "" {
			cfg.Sliders[i].Labels = LabelNone
		}
	}

	if err := validateDemoConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}
	return cfg, nil
}

// defaultDemoConfig 返回不含滑动条的默认配置，作为解析的基础
func defaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Window: WindowConfig{
			Width:      640,
			Height:     480,
			Title:      "Range Slider",
			Background: "#f0f0f0",
		},
		Style: StyleConfig{
			TrackColor:  "#c7c7c7",
			FillColor:   "#0181ff",
			BorderColor: "#a0a0a0",
			ThumbColor:  "#ffffff",
			ThumbWidth:  16,
			ThumbHeight: 16,
			TrackHeight: 3,
			TrackMargin: 5,
			TickPadding: 5,
		},
		Layout: LayoutConfig{
			Margin:       20,
			RowHeight:    30,
			RowSpacing:   20,
			LabelWidth:   70,
			LabelSpacing: 6,
			MinWidth:     rangeslider.MinWidth,
		},
	}
}

func validateDemoConfig(cfg *DemoConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if _, err := ParseHexColor(cfg.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}
	if _, err := cfg.Style.ToStyle(); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if cfg.Layout.RowHeight < rangeslider.MinHeight {
		return fmt.Errorf("layout.rowHeight must be at least %d, got %v", rangeslider.MinHeight, cfg.Layout.RowHeight)
	}

	if cfg.Layout.MinWidth < rangeslider.MinWidth {
		return fmt.Errorf("layout.minWidth must be at least %d, got %v", rangeslider.MinWidth, cfg.Layout.MinWidth)
	}

	for i, s := range cfg.Sliders {
		if s.Max <= s.Min {
			return fmt.Errorf("slider %d: max (%d) must be greater than min (%d)", i, s.Max, s.Min)
		}
		left, right := s.ThumbValues()
		if right <= left {
			return fmt.Errorf("slider %d: right thumb value %d must be greater than left thumb value %d", i, right, left)
		}
		if s.Ticks < 0 {
			return fmt.Errorf("slider %d: ticks cannot be negative, got %d", i, s.Ticks)
		}
		switch s.Labels {
		case LabelNone, LabelNumber, LabelSize:
		default:
			return fmt.Errorf("slider %d: labels must be one of: none, number, size, got %q", i, s.Labels)
		}
	}
	return nil
}

// ThumbValues 返回左右滑块的初始值（应用默认值之后）
func (s SliderConfig) ThumbValues() (left, right int64) {
	left, right = s.Min, s.Max
	if s.Left != nil {
		left = *s.Left
	}
	if s.Right != nil {
		right = *s.Right
	}
	return left, right
}

// ToStyle 转换为控件外观
func (c StyleConfig) ToStyle() (rangeslider.Style, error) {
	style := rangeslider.Style{
		ThumbWidth:  c.ThumbWidth,
		ThumbHeight: c.ThumbHeight,
		TrackHeight: c.TrackHeight,
		TrackMargin: c.TrackMargin,
		TickPadding: c.TickPadding,
	}

	targets := []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"trackColor", c.TrackColor, &style.TrackColor},
		{"fillColor", c.FillColor, &style.FillColor},
		{"borderColor", c.BorderColor, &style.BorderColor},
		{"thumbColor", c.ThumbColor, &style.ThumbColor},
	}
	for _, target := range targets {
		v, err := ParseHexColor(target.value)
		if err != nil {
			return rangeslider.Style{}, fmt.Errorf("%s: %w", target.name, err)
		}
		*target.dst = v
	}

	if style.ThumbWidth <= 0 || style.ThumbHeight <= 0 || style.TrackHeight <= 0 {
		return rangeslider.Style{}, fmt.Errorf("thumb and track sizes must be positive")
	}
	if style.TrackMargin < 0 || style.TickPadding < 0 {
		return rangeslider.Style{}, fmt.Errorf("trackMargin and tickPadding cannot be negative")
	}
	return style, nil
}
