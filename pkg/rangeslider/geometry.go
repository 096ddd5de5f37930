package rangeslider

import (
	"image"
	"math"
)

// 几何计算
//
// 值域 [domainMin, domainMax] 线性映射到滑轨的可用宽度上：
//
//	offset = round((v - domainMin) * usable / (domainMax - domainMin))
//	value  = domainMin + round((x - padding) * (domainMax - domainMin) / usable)
//
// 绘制和拖拽使用同一对公式，滑块的绘制位置与拖拽得到的值不会产生漂移。

// Padding 滑轨左右两侧各保留的水平边距（半个滑块宽度 + 边距）
func (s *RangeSlider) Padding() int {
	return s.style.Padding()
}

// UsableWidth 返回画布宽度 w 下滑轨的可用像素宽度
func (s *RangeSlider) UsableWidth(w int) int {
	usable := w - 2*s.Padding()
	if usable < 0 {
		return 0
	}
	return usable
}

// ValueToOffset 将值映射为相对滑轨起点的像素偏移
func (s *RangeSlider) ValueToOffset(v int64, w int) int {
	usable := s.UsableWidth(w)
	if usable == 0 {
		return 0
	}
	span := float64(s.domainMax - s.domainMin)
	return int(math.Round(float64(v-s.domainMin) * float64(usable) / span))
}

// OffsetToValue 将画布上的 x 坐标换算为值
//
// 结果不做截断，超出值域的结果交给 setter 的静默拒绝规则处理。
func (s *RangeSlider) OffsetToValue(x, w int) int64 {
	usable := s.UsableWidth(w)
	if usable == 0 {
		return s.domainMin
	}
	span := float64(s.domainMax - s.domainMin)
	return s.domainMin + int64(math.Round(float64(x-s.Padding())*span/float64(usable)))
}

// ThumbX 返回值 v 对应滑块中心的 x 坐标
func (s *RangeSlider) ThumbX(v int64, w int) int {
	return s.Padding() + s.ValueToOffset(v, w)
}

// trackY 滑轨顶边的 y 坐标
func (s *RangeSlider) trackY(h int) int {
	return h/2 - s.style.TrackHeight/2
}

// TrackRect 返回完整滑轨的矩形
func (s *RangeSlider) TrackRect(w, h int) image.Rectangle {
	x := s.Padding()
	y := s.trackY(h)
	return image.Rect(x, y, x+s.UsableWidth(w), y+s.style.TrackHeight)
}

// FillRect 返回两个滑块之间的高亮矩形
func (s *RangeSlider) FillRect(w, h int) image.Rectangle {
	x1 := s.ThumbX(s.left.Value, w)
	x2 := s.ThumbX(s.right.Value, w)
	y := s.trackY(h)
	return image.Rect(x1, y, x2, y+s.style.TrackHeight)
}

// ThumbRect 返回值 v 对应滑块的矩形，即命中测试区域
func (s *RangeSlider) ThumbRect(v int64, w, h int) image.Rectangle {
	x := s.ThumbX(v, w) - s.style.ThumbWidth/2
	y := s.trackY(h) + s.style.TrackHeight/2 - s.style.ThumbHeight/2
	return image.Rect(x, y, x+s.style.ThumbWidth, y+s.style.ThumbHeight)
}

// TickPositions 返回刻度线的 x 坐标，共 tickCount+1 个
// 刻度数为 0 时返回 nil
func (s *RangeSlider) TickPositions(w int) []int {
	if s.tickCount == 0 {
		return nil
	}
	step := float64(s.UsableWidth(w)) / float64(s.tickCount)
	xs := make([]int, 0, s.tickCount+1)
	for i := 0; i <= s.tickCount; i++ {
		xs = append(xs, s.Padding()+int(math.Round(float64(i)*step)))
	}
	return xs
}

// tickSpan 返回刻度线的上下端 y 坐标（y1 靠近滑轨）
func (s *RangeSlider) tickSpan(h int) (y1, y2 int) {
	y1 = s.trackY(h) - s.style.TickPadding
	y2 = y1 - s.style.ThumbHeight/2
	return y1, y2
}
