package components

// PositionComponent 实体左上角在屏幕上的坐标
type PositionComponent struct {
	X float64
	Y float64
}
