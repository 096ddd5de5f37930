package app

import (
	"testing"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
)

type mockPointerInput struct {
	x, y    int
	pressed bool
}

func (m *mockPointerInput) CursorPosition() (int, int) { return m.x, m.y }
func (m *mockPointerInput) IsPointerPressed() bool { return m.pressed }

func newTestApp(t *testing.T, input *mockPointerInput) *App {
	t.Helper()
	demo, err := config.LoadDemoConfig("../../assets/config/demo.yaml")
	if err != nil {
		t.Fatalf("LoadDemoConfig() error = %v", err)
	}
	a, err := NewApp(Config{Verbose: true, Demo: demo, Input: input})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return a
}

func TestNewApp_CreatesEntities(t *testing.T) {
	a := newTestApp(t, &mockPointerInput{})
	em := a.EntityManager()

	if n := len(ecs.GetEntitiesWith1[*components.RangeSliderComponent](em)); n != 5 {
		t.Errorf("sliders = %d, want 5", n)
	}
	// 除第一行外每行两个标签
	if n := len(ecs.GetEntitiesWith1[*components.LabelComponent](em)); n != 8 {
		t.Errorf("labels = %d, want 8", n)
	}

	if !a.IsVerbose() {
		t.Error("IsVerbose() = false, want true")
	}

	if w, h := a.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, want 800x600", w, h)
	}
}

// TestApp_LabelsFitWindow 默认窗口下右侧标签完整显示在窗口内
func TestApp_LabelsFitWindow(t *testing.T) {
	a := newTestApp(t, &mockPointerInput{})
	em := a.EntityManager()
	a.Layout(640, 480)
	a.step()

	for _, id := range ecs.GetEntitiesWith1[*components.SliderLabelsComponent](em) {
		labels, _ := ecs.GetComponent[*components.SliderLabelsComponent](em, id)
		label, _ := ecs.GetComponent[*components.LabelComponent](em, labels.RightLabel)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, labels.RightLabel)
		if right := pos.X + label.Width; right > 640 {
			t.Errorf("slider %d: right label ends at %v, window width 640", id, right)
		}
	}
}

func TestNewApp_MissingConfig(t *testing.T) {
	if _, err := NewApp(Config{Verbose: true}); err == nil {
		t.Error("expected error without demo config")
	}
}

// TestApp_DragUpdatesLabel 拖动滑块后标签随之更新
func TestApp_DragUpdatesLabel(t *testing.T) {
	input := &mockPointerInput{}
	a := newTestApp(t, input)
	em := a.EntityManager()
	a.Layout(640, 480)
	a.step()

	labeled := ecs.GetEntitiesWith2[*components.RangeSliderComponent, *components.SliderLabelsComponent](em)
	if len(labeled) != 4 {
		t.Fatalf("labeled sliders = %d, want 4", len(labeled))
	}
	id := labeled[0]
	slider, _ := ecs.GetComponent[*components.RangeSliderComponent](em, id)
	labels, _ := ecs.GetComponent[*components.SliderLabelsComponent](em, id)
	leftLabel, _ := ecs.GetComponent[*components.LabelComponent](em, labels.LeftLabel)

	if slider.Width != 448 {
		t.Fatalf("Width = %v, want 448", slider.Width)
	}
	if leftLabel.Text != "0" {
		t.Fatalf("left label = %q, want %q", leftLabel.Text, "0")
	}

	// 第二行：滑动条位于 (96, 70)，左滑块中心局部 x = 13
	input.x, input.y, input.pressed = 109, 85, true
	a.step()
	input.x = 320
	a.step()
	input.pressed = false
	a.step()

	if slider.Slider.LeftThumbValue() != 5 {
		t.Errorf("LeftThumbValue() = %d, want 5", slider.Slider.LeftThumbValue())
	}
	if leftLabel.Text != "5" {
		t.Errorf("left label = %q, want %q", leftLabel.Text, "5")
	}
}
