package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DeleteSubscription 条件删除 返回是否命中了已有订阅
func DeleteSubscription(ctx context.Context, userId, channelId int64) (bool, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? And channel_id = ?", userId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateSubscription 唯一索引(uk_user_channel)兜底并发下的双插入
func CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return DB.WithContext(ctx).Create(sub).Error
}

// GetSubscriberList 频道的订阅者列表 投影订阅者字段
func GetSubscriberList(ctx context.Context, channelId, pageNum, pageSize int64) ([]*model.UserLite, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriptions.channel_id = ?", channelId)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "SubscriberList count failed")
	}

	list := make([]*model.UserLite, 0)
	err := base.Session(&gorm.Session{}).
		Select("users.user_id, users.user_name, users.avatar_url").
		Joins("Join users on users.user_id = subscriptions.user_id").
		Order("subscriptions.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "SubscriberList failed")
	}
	return list, count, nil
}

// GetSubscribedChannelList 用户订阅的频道列表 投影频道主字段
func GetSubscribedChannelList(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.UserLite, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriptions.user_id = ?", userId)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "SubscribedChannelList count failed")
	}

	list := make([]*model.UserLite, 0)
	err := base.Session(&gorm.Session{}).
		Select("users.user_id, users.user_name, users.avatar_url").
		Joins("Join users on users.user_id = subscriptions.channel_id").
		Order("subscriptions.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "SubscribedChannelList failed")
	}
	return list, count, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	err = DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error
	return count, err
}
