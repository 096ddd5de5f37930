// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	X, Y    int
	Pressed bool
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// GetPointerState 获取当前帧的指针状态
// 有活动的触摸时优先使用第一个触摸点，否则使用鼠标左键
func GetPointerState() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{X: x, Y: y, Pressed: true, IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
func GetPointerPosition() (int, int) {
	s := GetPointerState()
	return s.X, s.Y
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	return GetPointerState().Pressed
}
