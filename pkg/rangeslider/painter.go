package rangeslider

import (
	"image"
	"image/color"
)

// Painter 绘制原语
// 坐标均相对于控件左上角，由宿主实现（如基于 ebiten/vector）
type Painter interface {
	FillRect(r image.Rectangle, c color.Color)
	DrawLine(x0, y0, x1, y1 int, c color.Color)
	DrawEllipse(r image.Rectangle, fill, border color.Color)
}

// OpKind 绘制操作类型
type OpKind int

const (
	OpFillRect OpKind = iota
	OpLine
	OpEllipse
)

// Op 一次绘制操作
type Op struct {
	Kind   OpKind
	Rect   image.Rectangle // FillRect/Ellipse 的矩形；Line 时 Min/Max 为两个端点
	Color  color.Color     // 填充色或线条颜色
	Border color.Color     // 仅 Ellipse
}

// RecordingPainter 记录绘制操作而不实际绘制
// 用于无界面环境下的验证工具和测试
type RecordingPainter struct {
	Ops []Op
}

// FillRect 实现 Painter
func (p *RecordingPainter) FillRect(r image.Rectangle, c color.Color) {
	p.Ops = append(p.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

// DrawLine 实现 Painter
func (p *RecordingPainter) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	p.Ops = append(p.Ops, Op{Kind: OpLine, Rect: image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}, Color: c})
}

// DrawEllipse 实现 Painter
func (p *RecordingPainter) DrawEllipse(r image.Rectangle, fill, border color.Color) {
	p.Ops = append(p.Ops, Op{Kind: OpEllipse, Rect: r, Color: fill, Border: border})
}

// Reset 清空记录
func (p *RecordingPainter) Reset() {
	p.Ops = p.Ops[:0]
}
