package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 标签字体大小
const labelFontSize = 14.0

// 标签文字颜色
var labelTextColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// LabelRenderSystem 标签渲染系统
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
	face          *text.GoTextFace
}

// NewLabelRenderSystem 创建标签渲染系统，使用内置的 Go Regular 字体
func NewLabelRenderSystem(em *ecs.EntityManager) (*LabelRenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	return &LabelRenderSystem{
		entityManager: em,
		face: &text.GoTextFace{
			Source: source,
			Size:   labelFontSize,
		},
	}, nil
}

// Draw 绘制所有标签
func (s *LabelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if label == nil || pos == nil || label.Text == "" {
			continue
		}

		textW, textH := text.Measure(label.Text, s.face, 0)

		x := pos.X
		if label.Align == components.AlignRight {
			x = pos.X + label.Width - textW
		}
		y := pos.Y + (label.Height-textH)/2

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(labelTextColor)
		text.Draw(screen, label.Text, s.face, op)
	}
}
