package components

import "github.com/decker502/rangeslider/pkg/rangeslider"

// RangeSliderComponent 范围滑动条组件
// 持有控件实例和它在屏幕上占据的尺寸
type RangeSliderComponent struct {
	Slider *rangeslider.RangeSlider

	// 控件尺寸（像素）
	Width  float64
	Height float64

	// Stretch 为 true 时由布局系统按窗口宽度拉伸
	Stretch bool
	// ReservedWidth 拉伸时需要让出的宽度（两侧标签等）
	ReservedWidth float64

	// Dirty 控件请求了重绘，渲染系统绘制后清除
	// ebiten 每帧都会重绘整个画面，渲染系统不依赖该标记；
	// 它只记录控件发出的重绘请求，供测试检查
	Dirty bool
}

// Invalidate 实现 rangeslider.Host
func (c *RangeSliderComponent) Invalidate() {
	c.Dirty = true
}

// Size 返回整数像素尺寸，不小于控件的最小尺寸
func (c *RangeSliderComponent) Size() (w, h int) {
	w, h = int(c.Width), int(c.Height)
	if c.Slider == nil {
		return w, h
	}
	minW, minH := c.Slider.MinSize()
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}
	return w, h
}
