package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentDetail 单条评论 连带评论者投影
func GetCommentDetail(ctx context.Context, commentId int64) (*model.CommentInfo, error) {
	info := &model.CommentInfo{}
	result := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.comment_id, comments.video_id, comments.content, comments.created_at, "+
			"users.user_id, users.user_name, users.avatar_url").
		Joins("Left Join users on users.user_id = comments.user_id").
		Where("comments.comment_id = ?", commentId).
		Scan(info)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return info, nil
}

// GetVideoCommentList 视频的评论列表 最新在前 count独立于分页
func GetVideoCommentList(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.CommentInfo, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "CommentList count failed")
	}
	list := make([]*model.CommentInfo, 0)
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.comment_id, comments.video_id, comments.content, comments.created_at, "+
			"users.user_id, users.user_name, users.avatar_url").
		Joins("Left Join users on users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "CommentList failed")
	}
	return list, count, nil
}

func IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func UpdateComment(ctx context.Context, commentId, userId int64, content string) error {
	result := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? And user_id = ?", commentId, userId).
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

func DeleteComment(ctx context.Context, commentId, userId int64) error {
	result := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? And user_id = ?", commentId, userId).
		Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
