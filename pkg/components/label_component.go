package components

// LabelAlign 标签文字的水平对齐方式
type LabelAlign int

const (
	// AlignLeft 左对齐
	AlignLeft LabelAlign = iota
	// AlignRight 右对齐
	AlignRight
)

// LabelComponent 文本标签
type LabelComponent struct {
	Text   string
	Width  float64 // 固定宽度，用于对齐
	Height float64
	Align  LabelAlign
}
