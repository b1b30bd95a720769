package model

import (
	"bytes"
	"course_insights_backend/internal/util"
	"encoding/json"
)

// Duration 时长（秒）。内部一律按整数秒计算，仅在 JSON 输出时格式化为 HH:MM:SS。
type Duration int64

// ClockDuration 结构化的时分秒
type ClockDuration struct {
	Hours   Number `json:"hours"`
	Minutes Number `json:"minutes"`
	Seconds Number `json:"seconds"`
}

func (d Duration) Seconds() int64 { return int64(d) }

func (d Duration) String() string { return util.FormatClock(int64(d)) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 接受 "H:M:S" 字符串、{hours,minutes,seconds} 对象或秒数，格式错误时为 0
func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*d = 0
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*d = Duration(util.ParseClock(s))
		}
	case '{':
		var c ClockDuration
		if err := json.Unmarshal(b, &c); err == nil {
			*d = Duration(util.ClockSeconds(int64(c.Hours.Float()), int64(c.Minutes.Float()), int64(c.Seconds.Float())))
		}
	default:
		var n Number
		_ = n.UnmarshalJSON(b)
		if n > 0 {
			*d = Duration(int64(n.Float()))
		}
	}
	return nil
}

// ParseDuration 解析 "H:M:S" 字符串
func ParseDuration(s string) Duration {
	return Duration(util.ParseClock(s))
}
