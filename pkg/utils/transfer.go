package utils

import (
	"encoding/json"
	"strconv"
)

// Transfer 将jwt payload里的身份字段转成int64
// claims经过json反序列化后数字是float64 直接断言int64会panic
func Transfer(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case json.Number:
		n, _ := t.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	default:
		return 0
	}
}

func FormatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}
