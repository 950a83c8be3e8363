package utils

import (
	"VidTube.com/pkg/constants"
)

// NormalizePage 分页参数归一 page<1回到第一页 size越界回到默认值
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize < 1 || pageSize > constants.MaxLimit {
		pageSize = constants.DefaultLimit
	}
	return pageNum, pageSize
}

// TotalPages 由总数和页大小算总页数
func TotalPages(total, pageSize int64) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
