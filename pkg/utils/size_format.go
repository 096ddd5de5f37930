package utils

import (
	"log"

	"github.com/dustin/go-humanize"
)

// 二进制单位，每级相差 1024
var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatSize 将字节数格式化为人类可读的二进制单位，保留两位小数（如 "3.33 GiB"）
// 不足 1 KiB 时显示整数字节（如 "512 B"），负数按 0 处理
func FormatSize(size int64) string {
	if size < 0 {
		log.Printf("[FormatSize] size %d is negative, resetting to 0", size)
		size = 0
	}
	if size < 1024 {
		return humanize.IBytes(uint64(size))
	}

	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return humanize.FormatFloat("#,###.##", value) + " " + sizeUnits[unit]
}

// FormatNumber 格式化整数，千位以逗号分隔（如 "1,234,567"）
func FormatNumber(v int64) string {
	return humanize.Comma(v)
}
