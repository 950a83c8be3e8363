package redis

import (
	"context"
	"fmt"
)

// 各目标的点赞数缓存 toggle成功后同步加减
// 缓存缺失时由调用方用DB count回填

func likeCountKey(targetType string, targetId int64) string {
	return fmt.Sprintf("like:count:%s:%d", targetType, targetId)
}

func IncrLikeCount(ctx context.Context, targetType string, targetId, delta int64) {
	if rdbLike == nil {
		return
	}
	rdbLike.IncrBy(ctx, likeCountKey(targetType, targetId), delta)
}

// GetLikeCount 返回缓存值 第二个返回值表示缓存是否命中
func GetLikeCount(ctx context.Context, targetType string, targetId int64) (int64, bool) {
	if rdbLike == nil {
		return 0, false
	}
	n, err := rdbLike.Get(ctx, likeCountKey(targetType, targetId)).Int64()
	if err != nil {
		// goredis.Nil也走这里 当作未命中
		return 0, false
	}
	return n, true
}

func SetLikeCount(ctx context.Context, targetType string, targetId, count int64) {
	if rdbLike == nil {
		return
	}
	rdbLike.Set(ctx, likeCountKey(targetType, targetId), count, 0)
}
