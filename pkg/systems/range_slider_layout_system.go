package systems

import (
	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
)

// RangeSliderLayoutSystem 滑动条布局系统
//
// 窗口宽度变化时拉伸标记为 Stretch 的滑动条，并通知控件新的画布尺寸，
// 保证拖拽过程中缩放窗口后，坐标换算使用新的宽度。
type RangeSliderLayoutSystem struct {
	entityManager *ecs.EntityManager
	margin        float64 // 窗口左右边距
	minWidth      float64 // 拉伸后的最小宽度
}

// NewRangeSliderLayoutSystem 创建布局系统
func NewRangeSliderLayoutSystem(em *ecs.EntityManager, margin, minWidth float64) *RangeSliderLayoutSystem {
	return &RangeSliderLayoutSystem{
		entityManager: em,
		margin:        margin,
		minWidth:      minWidth,
	}
}

// Update 按屏幕宽度重新布局
func (s *RangeSliderLayoutSystem) Update(screenWidth int) {
	entities := ecs.GetEntitiesWith2[*components.RangeSliderComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || slider.Slider == nil || pos == nil {
			continue
		}

		if slider.Stretch {
			width := float64(screenWidth) - 2*s.margin - slider.ReservedWidth
			if width < s.minWidth {
				width = s.minWidth
			}
			slider.Width = width
		}

		w, h := slider.Size()
		slider.Slider.Resize(w, h)

		s.placeRightLabel(id, pos, float64(w))
	}
}

// placeRightLabel 将右侧标签移到滑动条右边
func (s *RangeSliderLayoutSystem) placeRightLabel(id ecs.EntityID, pos *components.PositionComponent, width float64) {
	labels, ok := ecs.GetComponent[*components.SliderLabelsComponent](s.entityManager, id)
	if !ok || labels.RightLabel == 0 {
		return
	}
	labelPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, labels.RightLabel)
	if !ok {
		return
	}
	labelPos.X = pos.X + width + labels.Spacing
}
