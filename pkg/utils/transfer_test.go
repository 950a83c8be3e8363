package utils

import (
	"encoding/json"
	"testing"
)

func TestTransfer(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"Int64", int64(42), 42},
		{"Int", 42, 42},
		// jwt claims走json反序列化 数字会变成float64
		{"Float64", float64(1234567), 1234567},
		{"JsonNumber", json.Number("99"), 99},
		{"String", "77", 77},
		{"BadString", "abc", 0},
		{"Nil", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Transfer(c.in); got != c.want {
				t.Errorf("Transfer(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestFormatInt64(t *testing.T) {
	if got := FormatInt64(123456789); got != "123456789" {
		t.Errorf("FormatInt64 = %q", got)
	}
}
