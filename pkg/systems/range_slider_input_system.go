package systems

import (
	"log"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/rangeslider"
	"github.com/decker502/rangeslider/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsPointerPressed() bool
}

// ebitenPointerInput Ebitengine 默认实现（鼠标 + 触摸）
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenPointerInput) IsPointerPressed() bool {
	return utils.IsPointerPressed()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// RangeSliderInputSystem 范围滑动条输入系统
//
// 每帧轮询指针状态，转换为控件需要的事件：
//   - 按下的那一帧：向指针所在的滑动条派发 PointerDown，该滑动条获得捕获
//   - 按住且移动：向捕获的滑动条派发 PointerMove（指针离开控件范围后仍然派发）
//   - 释放的那一帧：向捕获的滑动条派发 PointerUp
//
// 坐标转换为控件局部坐标。
type RangeSliderInputSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput

	wasPressed   bool
	lastX, lastY int
	captured     ecs.EntityID // 0 表示没有捕获
}

// NewRangeSliderInputSystem 创建输入系统
func NewRangeSliderInputSystem(em *ecs.EntityManager) *RangeSliderInputSystem {
	return NewRangeSliderInputSystemWithInput(em, defaultPointerInput)
}

// NewRangeSliderInputSystemWithInput 创建带自定义输入的输入系统（用于测试）
func NewRangeSliderInputSystemWithInput(em *ecs.EntityManager, input PointerInput) *RangeSliderInputSystem {
	return &RangeSliderInputSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 处理本帧输入
func (s *RangeSliderInputSystem) Update() {
	x, y := s.input.CursorPosition()
	pressed := s.input.IsPointerPressed()

	switch {
	case pressed && !s.wasPressed:
		s.captured = s.sliderAt(x, y)
		if s.captured != 0 {
			s.dispatch(s.captured, x, y, func(c *components.RangeSliderComponent, lx, ly int) {
				c.Slider.PointerDown(lx, ly)
				if state := c.Slider.DragState(); state != rangeslider.Idle {
					log.Printf("[RangeSliderInputSystem] Entity %d: %s", s.captured, state)
				}
			})
		}

	case pressed && s.wasPressed:
		if s.captured != 0 && (x != s.lastX || y != s.lastY) {
			s.dispatch(s.captured, x, y, func(c *components.RangeSliderComponent, lx, ly int) {
				c.Slider.PointerMove(lx, ly)
			})
		}

	case !pressed && s.wasPressed:
		if s.captured != 0 {
			s.dispatch(s.captured, x, y, func(c *components.RangeSliderComponent, lx, ly int) {
				c.Slider.PointerUp(lx, ly)
			})
		}
		s.captured = 0
	}

	s.wasPressed = pressed
	s.lastX, s.lastY = x, y
}

// Captured 返回当前捕获指针的滑动条实体，0 表示没有
func (s *RangeSliderInputSystem) Captured() ecs.EntityID {
	return s.captured
}

// sliderAt 返回包含该点的滑动条实体
func (s *RangeSliderInputSystem) sliderAt(x, y int) ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.RangeSliderComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || slider.Slider == nil || pos == nil {
			continue
		}
		w, h := slider.Size()
		fx, fy := float64(x), float64(y)
		if fx >= pos.X && fx < pos.X+float64(w) && fy >= pos.Y && fy < pos.Y+float64(h) {
			return id
		}
	}
	return 0
}

func (s *RangeSliderInputSystem) dispatch(id ecs.EntityID, x, y int, fn func(c *components.RangeSliderComponent, lx, ly int)) {
	slider, _ := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if slider == nil || slider.Slider == nil || pos == nil {
		// 实体已被删除
		s.captured = 0
		return
	}
	fn(slider, x-int(pos.X), y-int(pos.Y))
}
