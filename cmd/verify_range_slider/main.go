// Package main 提供范围滑动条的无界面验证工具
//
// 用法:
//
//	go run cmd/verify_range_slider/main.go -width 500 -drag -10
//
// 功能:
//   - 按参数创建滑动条并以指定画布宽度绘制（记录绘制操作，不打开窗口）
//   - 打印滑轨、高亮区域、刻度和滑块的几何信息
//   - 在左滑块（或右滑块）上模拟按下、水平拖动、释放，打印拖动前后的值
//   - 可选在拖动中途缩放画布，验证换算使用新宽度
//   - 拖动结束后重新绘制，打印新的几何信息
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/rangeslider/pkg/rangeslider"
	"github.com/decker502/rangeslider/pkg/utils"
)

const gib = int64(1024 * 1024 * 1024)

var (
	// 命令行参数
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	domainMax   = flag.Int64("max", 10*gib, "值域上限")
	leftValue   = flag.Int64("left", 3*gib, "左滑块初始值")
	rightValue  = flag.Int64("right", 5*gib, "右滑块初始值")
	ticks       = flag.Int("ticks", 0, "刻度数")
	width       = flag.Int("width", 500, "画布宽度")
	height      = flag.Int("height", 30, "画布高度")
	drag        = flag.Int("drag", -10, "水平拖动距离（像素）")
	thumb       = flag.String("thumb", "left", "拖动的滑块：left 或 right")
	resizeWidth = flag.Int("resize", 0, "拖动中途缩放到的画布宽度（0 表示不缩放）")
)

// stdoutHost 打印重绘请求
type stdoutHost struct{}

func (stdoutHost) Invalidate() {
	log.Printf("[verify] repaint requested")
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "verify_range_slider: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	slider, err := rangeslider.New(stdoutHost{}, 0, *domainMax,
		rangeslider.WithLeftThumbValue(*leftValue),
		rangeslider.WithRightThumbValue(*rightValue),
		rangeslider.WithTickCount(*ticks),
	)
	if err != nil {
		return err
	}

	slider.OnLeftThumbValueChanged(func(v int64) {
		fmt.Printf("left  -> %d (%s)\n", v, utils.FormatSize(v))
	})
	slider.OnRightThumbValueChanged(func(v int64) {
		fmt.Printf("right -> %d (%s)\n", v, utils.FormatSize(v))
	})

	lo, hi := slider.Domain()
	fmt.Printf("domain: [%s, %s], canvas %dx%d\n", utils.FormatSize(lo), utils.FormatSize(hi), *width, *height)

	painter := &rangeslider.RecordingPainter{}
	slider.Paint(painter, *width, *height)
	printOps(painter.Ops)

	var t rangeslider.Thumb
	switch *thumb {
	case "left":
		t = slider.LeftThumb()
	case "right":
		t = slider.RightThumb()
	default:
		return fmt.Errorf("unknown thumb %q (want left or right)", *thumb)
	}

	cx := (t.Rect.Min.X + t.Rect.Max.X) / 2
	cy := (t.Rect.Min.Y + t.Rect.Max.Y) / 2
	fmt.Printf("before: left=%d right=%d, %s thumb at x=%d\n",
		slider.LeftThumbValue(), slider.RightThumbValue(), *thumb, cx)

	slider.PointerDown(cx, cy)
	fmt.Printf("state: %s\n", slider.DragState())

	if *resizeWidth > 0 {
		slider.Resize(*resizeWidth, *height)
		fmt.Printf("resized canvas to %d\n", *resizeWidth)
	}

	slider.PointerMove(cx+*drag, cy)
	slider.PointerUp(cx+*drag, cy)

	fmt.Printf("after:  left=%d (%s) right=%d (%s)\n",
		slider.LeftThumbValue(), utils.FormatSize(slider.LeftThumbValue()),
		slider.RightThumbValue(), utils.FormatSize(slider.RightThumbValue()))

	// 以拖动结束时的画布尺寸重新绘制
	w, h, _ := slider.CanvasSize()
	painter.Reset()
	slider.Paint(painter, w, h)
	printOps(painter.Ops)
	return nil
}

func printOps(ops []rangeslider.Op) {
	for i, op := range ops {
		switch op.Kind {
		case rangeslider.OpFillRect:
			fmt.Printf("%2d rect    %v\n", i, op.Rect)
		case rangeslider.OpLine:
			fmt.Printf("%2d tick    (%d,%d)-(%d,%d)\n", i, op.Rect.Min.X, op.Rect.Min.Y, op.Rect.Max.X, op.Rect.Max.Y)
		case rangeslider.OpEllipse:
			fmt.Printf("%2d thumb   %v\n", i, op.Rect)
		}
	}
}
