package util

import (
	"math"
	"strconv"
	"strings"
)

// Average 算术平均值，空序列返回 0
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Finite(sum / float64(len(values)))
}

// SafeDiv 除数为 0 时返回 0
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return Finite(num / den)
}

// Truncate 按小数位截断（不是四舍五入），例如 Truncate(59.996, 1) == 59.9。
// 基于最短十进制表示做截断，避免 0.29*100 这类二进制误差；负数不做钳制。
func Truncate(v float64, digits int) float64 {
	v = Finite(v)
	if digits < 0 {
		digits = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return v
	}
	if digits == 0 {
		s = s[:dot]
	} else if len(s)-dot-1 > digits {
		s = s[:dot+1+digits]
	}
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.Trunc(v)
	}
	if out == 0 {
		// 避免 -0.0
		return 0
	}
	return out
}
