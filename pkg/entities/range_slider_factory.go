package entities

import (
	"fmt"
	"log"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/rangeslider"
	"github.com/decker502/rangeslider/pkg/utils"
)

// RangeSliderRowOptions 一行滑动条（可带两侧标签）的创建参数
type RangeSliderRowOptions struct {
	X, Y   float64 // 行左上角
	Width  float64 // 滑动条初始宽度（不含标签）
	Height float64 // 行高

	LabelWidth   float64 // 标签宽度
	LabelSpacing float64 // 标签与滑动条的间距

	Style  rangeslider.Style
	Slider config.SliderConfig
}

// NewRangeSliderRow 创建一行滑动条
//
// labels 为 none 时只创建滑动条；为 number 或 size 时在两侧各创建一个标签，
// 并订阅滑块值变化以更新标签文字。
//
// 返回：
//   - 滑动条实体ID
//   - 错误信息（滑动条参数无效）
func NewRangeSliderRow(em *ecs.EntityManager, opts RangeSliderRowOptions) (ecs.EntityID, error) {
	cfg := opts.Slider
	left, right := cfg.ThumbValues()

	comp := &components.RangeSliderComponent{
		Width:   opts.Width,
		Height:  opts.Height,
		Stretch: true,
	}
	slider, err := rangeslider.New(comp, cfg.Min, cfg.Max,
		rangeslider.WithLeftThumbValue(left),
		rangeslider.WithRightThumbValue(right),
		rangeslider.WithStyle(opts.Style),
		rangeslider.WithTickCount(cfg.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create range slider [%d, %d]: %w", cfg.Min, cfg.Max, err)
	}
	comp.Slider = slider

	sliderX := opts.X
	format := labelFormatter(cfg.Labels)
	if format != nil {
		sliderX += opts.LabelWidth + opts.LabelSpacing
		comp.ReservedWidth = 2 * (opts.LabelWidth + opts.LabelSpacing)
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, comp)
	ecs.AddComponent(em, entity, &components.PositionComponent{X: sliderX, Y: opts.Y})

	if format != nil {
		leftLabel := newLabel(em, opts.X, opts.Y, opts.LabelWidth, opts.Height, components.AlignRight, format(left))
		rightX := sliderX + opts.Width + opts.LabelSpacing
		rightLabel := newLabel(em, rightX, opts.Y, opts.LabelWidth, opts.Height, components.AlignLeft, format(right))

		ecs.AddComponent(em, entity, &components.SliderLabelsComponent{
			LeftLabel:  leftLabel.id,
			RightLabel: rightLabel.id,
			Spacing:    opts.LabelSpacing,
		})

		slider.OnLeftThumbValueChanged(func(v int64) { leftLabel.comp.Text = format(v) })
		slider.OnRightThumbValueChanged(func(v int64) { rightLabel.comp.Text = format(v) })
	}

	log.Printf("[RangeSliderFactory] Created range slider entity %d: domain [%d, %d], thumbs (%d, %d), ticks %d, labels %s",
		entity, cfg.Min, cfg.Max, left, right, cfg.Ticks, cfg.Labels)
	return entity, nil
}

type labelEntity struct {
	id   ecs.EntityID
	comp *components.LabelComponent
}

func newLabel(em *ecs.EntityManager, x, y, width, height float64, align components.LabelAlign, text string) labelEntity {
	id := em.CreateEntity()
	comp := &components.LabelComponent{
		Text:   text,
		Width:  width,
		Height: height,
		Align:  align,
	}
	ecs.AddComponent(em, id, comp)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return labelEntity{id: id, comp: comp}
}

// labelFormatter 返回标签文字格式化函数，不显示标签时返回 nil
func labelFormatter(mode config.LabelMode) func(int64) string {
	switch mode {
	case config.LabelNumber:
		return utils.FormatNumber
	case config.LabelSize:
		return utils.FormatSize
	default:
		return nil
	}
}
