package utils

import "testing"

func TestFormatSize(t *testing.T) {
	const gib = int64(1024 * 1024 * 1024)

	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "零", size: 0, want: "0 B"},
		{name: "负数按零处理", size: -5, want: "0 B"},
		{name: "字节", size: 512, want: "512 B"},
		{name: "最大字节数", size: 1023, want: "1023 B"},
		{name: "KiB", size: 1024, want: "1.00 KiB"},
		{name: "3 GiB", size: 3 * gib, want: "3.00 GiB"},
		{name: "10 GiB 的三分之一", size: 10 * gib / 3, want: "3.33 GiB"},
		{name: "10 GiB 的四分之三", size: 10 * gib * 3 / 4, want: "7.50 GiB"},
		{name: "10 GiB", size: 10 * gib, want: "10.00 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{1000, "1,000"},
		{10737418240, "10,737,418,240"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
