package model

import (
	"bytes"
	"course_insights_backend/internal/util"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID 实体标识，兼容 JSON 字符串与数字；null、布尔、对象等视为缺失
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*id = ""
		return nil
	}
	*id = numericID(n)
	return nil
}

// numericID 数字 id 统一为不带指数、不带多余小数位的形式，1、1.0、1e0 与 "1" 指向同一实体
func numericID(n json.Number) ID {
	if i, err := n.Int64(); err == nil {
		return ID(strconv.FormatInt(i, 10))
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ID(n.String())
	}
	return ID(strconv.FormatFloat(f, 'f', -1, 64))
}

func (id ID) Empty() bool { return id == "" }

func (id ID) String() string { return string(id) }

// Number 百分比、尝试次数等数值字段。非数值内容退化为 0，不会导致整表解析失败。
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Number(util.ParseNumber(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(util.Finite(f))
	return nil
}

func (n Number) Float() float64 { return util.Finite(float64(n)) }
