package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DeleteLike 条件删除 返回是否命中了已有的点赞行
// toggle的第一步 命中即"取消点赞" 未命中由调用方插入
func DeleteLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? And target_type = ? And target_id = ?", userId, targetType, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateLike 唯一索引(uk_user_target)兜底并发下的双插入
func CreateLike(ctx context.Context, like *model.Like) error {
	return DB.WithContext(ctx).Create(like).Error
}

func IsLiked(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_type = ? And target_id = ?", userId, targetType, targetId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetLikeCount(ctx context.Context, targetType string, targetId int64) (count int64, err error) {
	err = DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ?", targetType, targetId).
		Count(&count).Error
	return count, err
}

// GetLikedVideoList 用户点赞过的视频 只投影列表需要的字段
func GetLikedVideoList(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.VideoLite, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Like{}).
		Where("likes.user_id = ? And likes.target_type = ?", userId, constants.LikeTargetVideo)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "LikedVideoList count failed")
	}

	list := make([]*model.VideoLite, 0)
	err := base.Session(&gorm.Session{}).
		Select("videos.video_id, videos.title, videos.cover_url").
		Joins("Join videos on videos.video_id = likes.target_id").
		Order("likes.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "LikedVideoList failed")
	}
	return list, count, nil
}

// GetChannelLikeCount 某频道全部视频收到的点赞总数
func GetChannelLikeCount(ctx context.Context, channelId int64) (count int64, err error) {
	err = DB.WithContext(ctx).Model(&model.Like{}).
		Joins("Join videos on videos.video_id = likes.target_id").
		Where("likes.target_type = ? And videos.user_id = ?", constants.LikeTargetVideo, channelId).
		Count(&count).Error
	return count, err
}
