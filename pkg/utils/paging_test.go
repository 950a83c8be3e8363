package utils

import "testing"

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name             string
		pageNum, pageSize int64
		wantNum, wantSize int64
	}{
		{"Valid", 2, 20, 2, 20},
		{"ZeroPage", 0, 20, 1, 20},
		{"NegativePage", -3, 20, 1, 20},
		{"ZeroSize", 1, 0, 1, 10},
		{"OversizedPage", 1, 500, 1, 10},
		{"MaxSize", 1, 100, 1, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			num, size := NormalizePage(c.pageNum, c.pageSize)
			if num != c.wantNum || size != c.wantSize {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					c.pageNum, c.pageSize, num, size, c.wantNum, c.wantSize)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.pageSize); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}
