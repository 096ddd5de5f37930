// Package rangeslider 实现带两个滑块的范围滑动条
//
// 控件在值域 [domainMin, domainMax] 上维护左右两个滑块的值，
// 绘制滑轨、可选刻度、两滑块之间的高亮区域以及两个圆形滑块，
// 并根据宿主派发的指针按下/移动/释放事件更新滑块。
//
// 本包不依赖具体的 UI 框架：绘制通过 Painter 接口完成，
// 重绘请求通过 Host 接口发出，值变化通过订阅函数通知。
// 所有方法都应在宿主的 UI 线程上同步调用。
package rangeslider

import (
	"errors"
	"fmt"
	"image"
	"log"
)

var (
	// ErrInvalidRange 右滑块的值不大于左滑块的值，或值域为空
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidArgument 参数无效（如刻度数为负）
	ErrInvalidArgument = errors.New("invalid argument")
)

// Host 控件的宿主
// Invalidate 请求重绘，宿主可以合并多次请求
type Host interface {
	Invalidate()
}

// Thumb 滑块状态
type Thumb struct {
	Value   int64           // 滑块的值
	Rect    image.Rectangle // 最近一次绘制时的命中区域，每次绘制重新计算
	Pressed bool            // 是否被按住
}

// ValueChangedFunc 滑块值变化回调
type ValueChangedFunc func(value int64)

// DragState 指针交互状态
type DragState int

const (
	// Idle 没有滑块被按住
	Idle DragState = iota
	// DraggingLeft 正在拖动左滑块
	DraggingLeft
	// DraggingRight 正在拖动右滑块
	DraggingRight
)

// String 返回状态名
func (d DragState) String() string {
	switch d {
	case DraggingLeft:
		return "DraggingLeft"
	case DraggingRight:
		return "DraggingRight"
	default:
		return "Idle"
	}
}

// RangeSlider 双滑块范围滑动条
type RangeSlider struct {
	host  Host
	style Style

	domainMin int64
	domainMax int64

	left  Thumb
	right Thumb

	tickCount int

	// 最近一次绘制或缩放时的画布尺寸，用于把拖拽坐标换算回值
	canvasWidth  int
	canvasHeight int
	hasCanvas    bool

	leftListeners  []*listener
	rightListeners []*listener
}

type listener struct {
	fn ValueChangedFunc
}

type options struct {
	left      *int64
	right     *int64
	style     Style
	tickCount int
}

// Option 构造选项
type Option func(*options)

// WithLeftThumbValue 设置左滑块初始值（默认 domainMin）
func WithLeftThumbValue(v int64) Option {
	return func(o *options) {
		o.left = &v
	}
}

// WithRightThumbValue 设置右滑块初始值（默认 domainMax）
func WithRightThumbValue(v int64) Option {
	return func(o *options) {
		o.right = &v
	}
}

// WithStyle 设置外观
// 颜色和滑块/滑轨尺寸未填写时使用默认值，边距按给定值使用
func WithStyle(style Style) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithTickCount 设置初始刻度数
func WithTickCount(n int) Option {
	return func(o *options) {
		o.tickCount = n
	}
}

// New 创建范围滑动条
//
// 参数：
//   - host: 宿主，接收重绘请求，可为 nil
//   - domainMin, domainMax: 值域
//   - opts: 左右滑块初始值、外观、刻度数
//
// 返回：
//   - ErrInvalidRange: 右滑块初始值不大于左滑块初始值，或 domainMax <= domainMin
//   - ErrInvalidArgument: 刻度数为负
func New(host Host, domainMin, domainMax int64, opts ...Option) (*RangeSlider, error) {
	o := options{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&o)
	}

	if domainMax <= domainMin {
		return nil, fmt.Errorf("domain [%d, %d] is empty: %w", domainMin, domainMax, ErrInvalidRange)
	}

	left := domainMin
	if o.left != nil {
		left = *o.left
	}
	right := domainMax
	if o.right != nil {
		right = *o.right
	}
	if right <= left {
		return nil, fmt.Errorf("right thumb value %d is less or equal left thumb value %d: %w", right, left, ErrInvalidRange)
	}
	if o.tickCount < 0 {
		return nil, fmt.Errorf("tick count %d: %w", o.tickCount, ErrInvalidArgument)
	}

	return &RangeSlider{
		host:      host,
		style:     o.style.withDefaults(),
		domainMin: domainMin,
		domainMax: domainMax,
		left:      Thumb{Value: left},
		right:     Thumb{Value: right},
		tickCount: o.tickCount,
	}, nil
}

// MinSize 返回控件的最小尺寸
func (s *RangeSlider) MinSize() (w, h int) {
	return MinWidth, MinHeight
}

// Style 返回外观配置
func (s *RangeSlider) Style() Style {
	return s.style
}

// Domain 返回值域
func (s *RangeSlider) Domain() (lo, hi int64) {
	return s.domainMin, s.domainMax
}

// LeftThumbValue 返回左滑块的值
func (s *RangeSlider) LeftThumbValue() int64 {
	return s.left.Value
}

// RightThumbValue 返回右滑块的值
func (s *RangeSlider) RightThumbValue() int64 {
	return s.right.Value
}

// LeftThumb 返回左滑块状态的副本
func (s *RangeSlider) LeftThumb() Thumb {
	return s.left
}

// RightThumb 返回右滑块状态的副本
func (s *RangeSlider) RightThumb() Thumb {
	return s.right
}

// SetLeftThumbValue 设置左滑块的值
//
// v 小于 domainMin、不小于右滑块的值或等于当前值时静默忽略：
// 不报错、不通知、不重绘。
func (s *RangeSlider) SetLeftThumbValue(v int64) {
	if v < s.domainMin || v >= s.right.Value {
		return
	}
	if v == s.left.Value {
		return
	}
	s.left.Value = v
	notify(s.leftListeners, v)
	s.invalidate()
}

// SetRightThumbValue 设置右滑块的值
//
// v 大于 domainMax、不大于左滑块的值或等于当前值时静默忽略。
func (s *RangeSlider) SetRightThumbValue(v int64) {
	if v > s.domainMax || v <= s.left.Value {
		return
	}
	if v == s.right.Value {
		return
	}
	s.right.Value = v
	notify(s.rightListeners, v)
	s.invalidate()
}

// SetTickCount 设置刻度数，0 表示不显示刻度
// 不会自动重绘，由调用方决定何时重绘
func (s *RangeSlider) SetTickCount(n int) error {
	if n < 0 {
		return fmt.Errorf("tick count %d: %w", n, ErrInvalidArgument)
	}
	s.tickCount = n
	return nil
}

// TickCount 返回刻度数
func (s *RangeSlider) TickCount() int {
	return s.tickCount
}

// OnLeftThumbValueChanged 订阅左滑块值变化，返回取消订阅函数
func (s *RangeSlider) OnLeftThumbValueChanged(fn ValueChangedFunc) (unsubscribe func()) {
	l := &listener{fn: fn}
	s.leftListeners = append(s.leftListeners, l)
	return func() { s.leftListeners = removeListener(s.leftListeners, l) }
}

// OnRightThumbValueChanged 订阅右滑块值变化，返回取消订阅函数
func (s *RangeSlider) OnRightThumbValueChanged(fn ValueChangedFunc) (unsubscribe func()) {
	l := &listener{fn: fn}
	s.rightListeners = append(s.rightListeners, l)
	return func() { s.rightListeners = removeListener(s.rightListeners, l) }
}

// CanvasSize 返回缓存的画布尺寸，尚未绘制或缩放过时 ok 为 false
func (s *RangeSlider) CanvasSize() (w, h int, ok bool) {
	return s.canvasWidth, s.canvasHeight, s.hasCanvas
}

// Resize 宿主尺寸变化时调用
// 更新缓存的画布尺寸和命中区域，之后的拖拽换算使用新宽度
func (s *RangeSlider) Resize(w, h int) {
	if s.hasCanvas && s.canvasWidth == w && s.canvasHeight == h {
		return
	}
	s.cacheCanvas(w, h)
	log.Printf("[RangeSlider] Resized to %dx%d", w, h)
	s.invalidate()
}

// Paint 以画布尺寸 w×h 绘制控件
//
// 绘制顺序：滑轨、高亮区域、刻度、左滑块、右滑块。
// 滑块最后绘制，不会被高亮区域或刻度遮挡。
func (s *RangeSlider) Paint(p Painter, w, h int) {
	s.cacheCanvas(w, h)

	p.FillRect(s.TrackRect(w, h), s.style.TrackColor)
	p.FillRect(s.FillRect(w, h), s.style.FillColor)

	if xs := s.TickPositions(w); len(xs) > 0 {
		y1, y2 := s.tickSpan(h)
		for _, x := range xs {
			p.DrawLine(x, y1, x, y2, s.style.BorderColor)
		}
	}

	p.DrawEllipse(s.left.Rect, s.style.ThumbColor, s.style.BorderColor)
	p.DrawEllipse(s.right.Rect, s.style.ThumbColor, s.style.BorderColor)
}

// PointerDown 指针按下
// 命中区域包含该点的滑块都进入按下状态，两个滑块重叠时可能同时按下
func (s *RangeSlider) PointerDown(x, y int) {
	pt := image.Pt(x, y)
	if pt.In(s.left.Rect) {
		s.left.Pressed = true
	}
	if pt.In(s.right.Rect) {
		s.right.Pressed = true
	}
}

// PointerMove 指针移动
// 两个滑块都被按下时左滑块优先
func (s *RangeSlider) PointerMove(x, y int) {
	if !s.hasCanvas {
		return
	}
	switch s.DragState() {
	case DraggingLeft:
		s.SetLeftThumbValue(s.OffsetToValue(x, s.canvasWidth))
	case DraggingRight:
		s.SetRightThumbValue(s.OffsetToValue(x, s.canvasWidth))
	}
}

// PointerUp 指针释放，无条件清除两个滑块的按下状态
func (s *RangeSlider) PointerUp(x, y int) {
	s.left.Pressed = false
	s.right.Pressed = false
}

// DragState 返回当前交互状态
func (s *RangeSlider) DragState() DragState {
	switch {
	case s.left.Pressed:
		return DraggingLeft
	case s.right.Pressed:
		return DraggingRight
	default:
		return Idle
	}
}

func (s *RangeSlider) cacheCanvas(w, h int) {
	s.canvasWidth = w
	s.canvasHeight = h
	s.hasCanvas = true
	s.left.Rect = s.ThumbRect(s.left.Value, w, h)
	s.right.Rect = s.ThumbRect(s.right.Value, w, h)
}

func (s *RangeSlider) invalidate() {
	if s.host != nil {
		s.host.Invalidate()
	}
}

func notify(listeners []*listener, v int64) {
	// 回调中可能取消订阅，遍历副本
	for _, l := range append([]*listener(nil), listeners...) {
		l.fn(v)
	}
}

func removeListener(listeners []*listener, target *listener) []*listener {
	for i, l := range listeners {
		if l == target {
			return append(listeners[:i:i], listeners[i+1:]...)
		}
	}
	return listeners
}
