package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"gorm.io/gorm"
)

// TestTweetOwnership owner写在where里 非所有者的改删等同于记录不存在
func TestTweetOwnership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	base := time.Now().UnixNano() % 1e12
	ownerId := base
	strangerId := base + 1
	tweetId := base + 2

	tweet := &model.Tweet{
		TweetId:   tweetId,
		UserId:    ownerId,
		Content:   "hello",
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := CreateTweet(ctx, tweet); err != nil {
		t.Fatalf("CreateTweet failed: %v", err)
	}
	defer DeleteTweet(ctx, tweetId, ownerId)

	t.Run("StrangerUpdateIsNotFound", func(t *testing.T) {
		err := UpdateTweet(ctx, tweetId, strangerId, "hijacked")
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("UpdateTweet(stranger) = %v, want gorm.ErrRecordNotFound", err)
		}
	})

	t.Run("StrangerDeleteIsNotFound", func(t *testing.T) {
		err := DeleteTweet(ctx, tweetId, strangerId)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("DeleteTweet(stranger) = %v, want gorm.ErrRecordNotFound", err)
		}
	})

	t.Run("OwnerUpdateSucceeds", func(t *testing.T) {
		if err := UpdateTweet(ctx, tweetId, ownerId, "edited"); err != nil {
			t.Fatalf("UpdateTweet(owner) failed: %v", err)
		}
		got, err := GetTweetInfo(ctx, tweetId)
		if err != nil {
			t.Fatalf("GetTweetInfo failed: %v", err)
		}
		if got.Content != "edited" {
			t.Errorf("content = %q, want %q", got.Content, "edited")
		}
	})
}
