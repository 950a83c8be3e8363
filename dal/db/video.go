package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 列表排序字段白名单 防止外部输入直接拼进order by
var videoSortFields = map[string]string{
	"created_at":  "videos.created_at",
	"visit_count": "videos.visit_count",
	"like_count":  "videos.like_count",
	"title":       "videos.title",
}

func VideoSortField(sortBy string) (string, bool) {
	field, ok := videoSortFields[sortBy]
	return field, ok
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "Failed to insert video")
	}
	return nil
}

// Videolist 按条件过滤的分页视频列表 count独立于分页计算
func Videolist(ctx context.Context, userId int64, keyword, orderBy string, pageNum, pageSize int64) ([]*model.VideoInfo, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Video{}).Where("videos.is_published = ?", 1)
	if userId != 0 {
		base = base.Where("videos.user_id = ?", userId)
	}
	if keyword != "" {
		base = base.Where("LOWER(videos.title) LIKE ?", "%"+keyword+"%")
	}

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "VideoList count failed")
	}

	list := make([]*model.VideoInfo, 0)
	err := base.Session(&gorm.Session{}).
		Select("videos.video_id, videos.title, videos.description, videos.video_url, videos.cover_url, " +
			"videos.visit_count, videos.like_count, videos.is_published, videos.created_at, " +
			"users.user_id, users.user_name, users.avatar_url").
		Joins("Left Join users on users.user_id = videos.user_id").
		Order(orderBy).
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "VideoList failed")
	}
	return list, count, nil
}

// GetVideoDetail 单条视频详情 连带作者投影
func GetVideoDetail(ctx context.Context, videoId int64) (*model.VideoInfo, error) {
	info := &model.VideoInfo{}
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Select("videos.video_id, videos.title, videos.description, videos.video_url, videos.cover_url, "+
			"videos.visit_count, videos.like_count, videos.is_published, videos.created_at, "+
			"users.user_id, users.user_name, users.avatar_url").
		Joins("Left Join users on users.user_id = videos.user_id").
		Where("videos.video_id = ?", videoId).
		Scan(info)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return info, nil
}

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// UpdateVideo owner写在where里 0行即"不存在或不是所有者"
func UpdateVideo(ctx context.Context, videoId, userId int64, title, description string) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? And user_id = ?", videoId, userId).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"updated_at":  time.Now().Format(constants.DataFormate),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func UpdateVideoCover(ctx context.Context, videoId, userId int64, coverUrl string) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? And user_id = ?", videoId, userId).
		Update("cover_url", coverUrl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId, userId int64) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? And user_id = ?", videoId, userId).
		Delete(&model.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TogglePublish 单条update内翻转发布位 不做读后写
func TogglePublish(ctx context.Context, videoId, userId int64) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? And user_id = ?", videoId, userId).
		Update("is_published", gorm.Expr("1 - is_published"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func AddVideoVisitCount(ctx context.Context, videoId, delta int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + ?", delta)).Error
}

func AddVideoLikeCount(ctx context.Context, videoId, delta int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

type ChannelVideoStats struct {
	TotalVideos int64
	TotalViews  int64
}

// GetChannelVideoStats 频道的视频总数与播放量总和
func GetChannelVideoStats(ctx context.Context, channelId int64) (*ChannelVideoStats, error) {
	stats := &ChannelVideoStats{}
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) as total_videos, IFNULL(SUM(visit_count), 0) as total_views").
		Where("user_id = ?", channelId).
		Scan(stats).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to get channel video stats")
	}
	return stats, nil
}

// GetChannelVideoList 频道视频列表 默认最新在前
func GetChannelVideoList(ctx context.Context, channelId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", channelId).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	list := make([]*model.Video, 0)
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", channelId).
		Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}
