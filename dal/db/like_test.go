package db

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
)

// TestLikeToggle 验证toggle的两半 条件删除与唯一索引兜底的插入
func TestLikeToggle(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	userId := time.Now().UnixNano() % 1e12
	targetId := userId + 1

	// 没点过赞时条件删除不命中
	matched, err := DeleteLike(ctx, userId, constants.LikeTargetVideo, targetId)
	if err != nil {
		t.Fatalf("DeleteLike failed: %v", err)
	}
	if matched {
		t.Fatal("DeleteLike matched a like that was never created")
	}

	like := &model.Like{
		LikeId:     userId + 2,
		UserId:     userId,
		TargetType: constants.LikeTargetVideo,
		TargetId:   targetId,
		CreatedAt:  time.Now().Format(constants.DataFormate),
	}
	if err := CreateLike(ctx, like); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}
	defer DeleteLike(ctx, userId, constants.LikeTargetVideo, targetId)

	liked, err := IsLiked(ctx, userId, constants.LikeTargetVideo, targetId)
	if err != nil {
		t.Fatalf("IsLiked failed: %v", err)
	}
	if !liked {
		t.Error("IsLiked = false after CreateLike")
	}

	// 同一(user, target)重复插入必须被唯一索引挡下
	dup := &model.Like{
		LikeId:     userId + 3,
		UserId:     userId,
		TargetType: constants.LikeTargetVideo,
		TargetId:   targetId,
		CreatedAt:  time.Now().Format(constants.DataFormate),
	}
	if err := CreateLike(ctx, dup); err == nil {
		t.Error("CreateLike accepted a duplicate (user, target) pair")
	}

	// 第二次toggle 条件删除命中
	matched, err = DeleteLike(ctx, userId, constants.LikeTargetVideo, targetId)
	if err != nil {
		t.Fatalf("DeleteLike failed: %v", err)
	}
	if !matched {
		t.Error("DeleteLike did not match an existing like")
	}
}
