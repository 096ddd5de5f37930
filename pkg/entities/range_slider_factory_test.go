package entities

import (
	"errors"
	"testing"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/rangeslider"
)

func int64p(v int64) *int64 { return &v }

func rowOptions(slider config.SliderConfig) RangeSliderRowOptions {
	return RangeSliderRowOptions{
		X: 20, Y: 20,
		Width: 448, Height: 30,
		LabelWidth: 70, LabelSpacing: 6,
		Style:  rangeslider.DefaultStyle(),
		Slider: slider,
	}
}

// TestNewRangeSliderRow_NoLabels 只创建滑动条
func TestNewRangeSliderRow_NoLabels(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewRangeSliderRow(em, rowOptions(config.SliderConfig{Min: 0, Max: 10, Labels: config.LabelNone}))
	if err != nil {
		t.Fatalf("NewRangeSliderRow() error = %v", err)
	}

	comp, ok := ecs.GetComponent[*components.RangeSliderComponent](em, id)
	if !ok {
		t.Fatal("slider component missing")
	}
	if comp.Slider.LeftThumbValue() != 0 || comp.Slider.RightThumbValue() != 10 {
		t.Errorf("values = (%d, %d), want (0, 10)", comp.Slider.LeftThumbValue(), comp.Slider.RightThumbValue())
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 20 {
		t.Errorf("X = %v, want 20", pos.X)
	}
	if comp.ReservedWidth != 0 {
		t.Errorf("ReservedWidth = %v, want 0", comp.ReservedWidth)
	}
	if ecs.HasComponent[*components.SliderLabelsComponent](em, id) {
		t.Error("unexpected labels component")
	}
	if n := len(ecs.GetEntitiesWith1[*components.LabelComponent](em)); n != 0 {
		t.Errorf("labels = %d, want 0", n)
	}
}

// TestNewRangeSliderRow_Labels 标签文字跟随滑块值
func TestNewRangeSliderRow_Labels(t *testing.T) {
	tests := []struct {
		name                string
		slider              config.SliderConfig
		setLeft, setRight   int64
		wantLeftInitial     string
		wantRightInitial    string
		wantLeft, wantRight string
	}{
		{
			name:             "数值标签",
			slider:           config.SliderConfig{Min: 0, Max: 10, Left: int64p(1), Right: int64p(9), Labels: config.LabelNumber},
			setLeft:          4,
			setRight:         7,
			wantLeftInitial:  "1",
			wantRightInitial: "9",
			wantLeft:         "4",
			wantRight:        "7",
		},
		{
			name:             "文件大小标签",
			slider:           config.SliderConfig{Min: 0, Max: 10 * 1024 * 1024 * 1024, Left: int64p(3 * 1024 * 1024 * 1024), Labels: config.LabelSize},
			setLeft:          1024,
			setRight:         5 * 1024 * 1024 * 1024,
			wantLeftInitial:  "3.00 GiB",
			wantRightInitial: "10.00 GiB",
			wantLeft:         "1.00 KiB",
			wantRight:        "5.00 GiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewRangeSliderRow(em, rowOptions(tt.slider))
			if err != nil {
				t.Fatalf("NewRangeSliderRow() error = %v", err)
			}

			labels, ok := ecs.GetComponent[*components.SliderLabelsComponent](em, id)
			if !ok {
				t.Fatal("labels component missing")
			}
			leftLabel, _ := ecs.GetComponent[*components.LabelComponent](em, labels.LeftLabel)
			rightLabel, _ := ecs.GetComponent[*components.LabelComponent](em, labels.RightLabel)
			if leftLabel.Text != tt.wantLeftInitial || rightLabel.Text != tt.wantRightInitial {
				t.Errorf("initial labels = (%q, %q), want (%q, %q)", leftLabel.Text, rightLabel.Text, tt.wantLeftInitial, tt.wantRightInitial)
			}
			if leftLabel.Align != components.AlignRight || rightLabel.Align != components.AlignLeft {
				t.Errorf("alignment = (%v, %v)", leftLabel.Align, rightLabel.Align)
			}

			comp, _ := ecs.GetComponent[*components.RangeSliderComponent](em, id)
			comp.Slider.SetLeftThumbValue(tt.setLeft)
			comp.Slider.SetRightThumbValue(tt.setRight)
			if leftLabel.Text != tt.wantLeft || rightLabel.Text != tt.wantRight {
				t.Errorf("labels = (%q, %q), want (%q, %q)", leftLabel.Text, rightLabel.Text, tt.wantLeft, tt.wantRight)
			}

			// 被拒绝的值不更新标签
			comp.Slider.SetLeftThumbValue(-1)
			if leftLabel.Text != tt.wantLeft {
				t.Errorf("left label = %q after rejected value, want %q", leftLabel.Text, tt.wantLeft)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != 96 {
				t.Errorf("slider X = %v, want 96", pos.X)
			}
			rightPos, _ := ecs.GetComponent[*components.PositionComponent](em, labels.RightLabel)
			if rightPos.X != 96+448+6 {
				t.Errorf("right label X = %v, want %v", rightPos.X, 96+448+6)
			}
			if comp.ReservedWidth != 152 {
				t.Errorf("ReservedWidth = %v, want 152", comp.ReservedWidth)
			}
		})
	}
}

// TestNewRangeSliderRow_Invalid 无效的初始值
func TestNewRangeSliderRow_Invalid(t *testing.T) {
	em := ecs.NewEntityManager()
	_, err := NewRangeSliderRow(em, rowOptions(config.SliderConfig{Min: 0, Max: 10, Left: int64p(5), Right: int64p(3)}))
	if !errors.Is(err, rangeslider.ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}
