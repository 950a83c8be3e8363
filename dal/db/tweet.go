package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"gorm.io/gorm"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func IsTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// GetTweetListByUser 用户的推文列表 最新在前
func GetTweetListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Tweet, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	list := make([]*model.Tweet, 0)
	err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func UpdateTweet(ctx context.Context, tweetId, userId int64, content string) error {
	result := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? And user_id = ?", tweetId, userId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId, userId int64) error {
	result := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? And user_id = ?", tweetId, userId).
		Delete(&model.Tweet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
