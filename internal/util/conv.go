package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber 宽松解析数值字符串（允许首尾空格和 % 后缀），非法值、NaN、Inf 一律返回 0
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Finite(v)
}

// Finite 将 NaN 和 ±Inf 归零
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// QueryInt 解析查询参数中的整数，非法或小于等于 0 时使用默认值
func QueryInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
