package systems

import (
	"image"
	"image/color"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 滑块边框线宽
const thumbBorderWidth = float32(1.0)

// RangeSliderRenderSystem 范围滑动条渲染系统
// 每帧通过 vector 绘制所有滑动条（ebiten 每帧清屏，因此不按 Dirty 跳过）
type RangeSliderRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRangeSliderRenderSystem 创建渲染系统
func NewRangeSliderRenderSystem(em *ecs.EntityManager) *RangeSliderRenderSystem {
	return &RangeSliderRenderSystem{entityManager: em}
}

// Draw 绘制所有滑动条
func (s *RangeSliderRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.RangeSliderComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || slider.Slider == nil || pos == nil {
			continue
		}

		w, h := slider.Size()
		p := &vectorPainter{dst: screen, offsetX: float32(pos.X), offsetY: float32(pos.Y)}
		slider.Slider.Paint(p, w, h)
		slider.Dirty = false
	}
}

// vectorPainter 基于 ebiten/vector 实现 rangeslider.Painter
// 控件局部坐标加上实体位置偏移后绘制到屏幕
type vectorPainter struct {
	dst              *ebiten.Image
	offsetX, offsetY float32
}

func (p *vectorPainter) FillRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(
		p.dst,
		p.offsetX+float32(r.Min.X),
		p.offsetY+float32(r.Min.Y),
		float32(r.Dx()),
		float32(r.Dy()),
		c,
		false,
	)
}

func (p *vectorPainter) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	vector.StrokeLine(
		p.dst,
		p.offsetX+float32(x0),
		p.offsetY+float32(y0),
		p.offsetX+float32(x1),
		p.offsetY+float32(y1),
		1,
		c,
		true,
	)
}

func (p *vectorPainter) DrawEllipse(r image.Rectangle, fill, border color.Color) {
	if r.Empty() {
		return
	}
	cx := p.offsetX + float32(r.Min.X) + float32(r.Dx())/2
	cy := p.offsetY + float32(r.Min.Y) + float32(r.Dy())/2
	radius := float32(min(r.Dx(), r.Dy())) / 2

	vector.DrawFilledCircle(p.dst, cx, cy, radius, fill, true)
	vector.StrokeCircle(p.dst, cx, cy, radius-thumbBorderWidth/2, thumbBorderWidth, border, true)
}
