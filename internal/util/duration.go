package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock 解析 "H:M:S" 格式的时长为秒数。
// 必须恰好三段且均为非负整数，否则返回 0。
func ParseClock(s string) int64 {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0
	}
	var units [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		units[i] = n
	}
	return ClockSeconds(units[0], units[1], units[2])
}

// ClockSeconds 时、分、秒换算为秒，负数分量视为 0
func ClockSeconds(hours, minutes, seconds int64) int64 {
	total := max(hours, 0)*3600 + max(minutes, 0)*60 + max(seconds, 0)
	return total
}

// FormatClock 秒数格式化为 HH:MM:SS，小时不设上限
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
