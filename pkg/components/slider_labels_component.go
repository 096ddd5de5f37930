package components

import "github.com/decker502/rangeslider/pkg/ecs"

// SliderLabelsComponent 关联滑动条两侧的标签实体
// 布局系统据此在滑动条宽度变化后重新摆放右侧标签
type SliderLabelsComponent struct {
	LeftLabel  ecs.EntityID
	RightLabel ecs.EntityID
	Spacing    float64 // 标签与滑动条的间距
}
