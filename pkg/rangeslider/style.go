package rangeslider

import "image/color"

// 默认尺寸（像素）
const (
	// MinWidth 控件最小宽度
	MinWidth = 120
	// MinHeight 控件最小高度
	MinHeight = 30
)

// Style 滑动条外观配置
// 由构造方提供，核心逻辑不依赖任何全局调色板
type Style struct {
	TrackColor  color.Color // 滑轨颜色
	FillColor   color.Color // 两个滑块之间的填充颜色
	BorderColor color.Color // 滑块边框与刻度线颜色
	ThumbColor  color.Color // 滑块填充颜色

	ThumbWidth  int // 滑块宽度
	ThumbHeight int // 滑块高度
	TrackHeight int // 滑轨高度
	TrackMargin int // 滑轨两端在半个滑块宽度之外额外保留的边距
	TickPadding int // 刻度线与滑轨之间的间距
}

// DefaultStyle 返回默认外观
func DefaultStyle() Style {
	return Style{
		TrackColor:  color.RGBA{R: 0xc7, G: 0xc7, B: 0xc7, A: 0xff},
		FillColor:   color.RGBA{R: 0x01, G: 0x81, B: 0xff, A: 0xff},
		BorderColor: color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
		ThumbColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ThumbWidth:  16,
		ThumbHeight: 16,
		TrackHeight: 3,
		TrackMargin: 5,
		TickPadding: 5,
	}
}

// Padding 滑轨左右两侧各保留的水平边距
func (s Style) Padding() int {
	return s.ThumbWidth/2 + s.TrackMargin
}

// withDefaults 用默认值补齐未设置的字段
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.TrackColor == nil {
		s.TrackColor = d.TrackColor
	}
	if s.FillColor == nil {
		s.FillColor = d.FillColor
	}
	if s.BorderColor == nil {
		s.BorderColor = d.BorderColor
	}
	if s.ThumbColor == nil {
		s.ThumbColor = d.ThumbColor
	}
	if s.ThumbWidth <= 0 {
		s.ThumbWidth = d.ThumbWidth
	}
	if s.ThumbHeight <= 0 {
		s.ThumbHeight = d.ThumbHeight
	}
	if s.TrackHeight <= 0 {
		s.TrackHeight = d.TrackHeight
	}
	if s.TrackMargin < 0 {
		s.TrackMargin = d.TrackMargin
	}
	if s.TickPadding < 0 {
		s.TickPadding = d.TickPadding
	}
	return s
}
