package redis

import (
	"context"
	"fmt"
)

// 播放量先进redis的pending计数 消费者落库后再扣掉
// 展示值 = MySQL里的visit_count + pending

func pendingVisitKey(videoId int64) string {
	return fmt.Sprintf("video:visit:pending:%d", videoId)
}

func IncrPendingVisit(ctx context.Context, videoId int64) (int64, error) {
	if rdbVideo == nil {
		return 0, nil
	}
	return rdbVideo.Incr(ctx, pendingVisitKey(videoId)).Result()
}

func GetPendingVisit(ctx context.Context, videoId int64) int64 {
	if rdbVideo == nil {
		return 0
	}
	n, err := rdbVideo.Get(ctx, pendingVisitKey(videoId)).Int64()
	if err != nil {
		return 0
	}
	return n
}

func DecrPendingVisit(ctx context.Context, videoId, n int64) {
	if rdbVideo == nil {
		return
	}
	rdbVideo.DecrBy(ctx, pendingVisitKey(videoId), n)
}
