package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CreateComment 先确认视频存在 再落评论 最后取连带评论者的投影返回
// 两步之间没有跨文档事务 取详情失败时评论已存在 只能把错误报给调用方
func (s *CommentService) CreateComment(userId, videoId int64, content string) (*model.CommentInfo, error) {
	exist, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to check video")
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("video not found")
	}

	comment := &model.Comment{
		CommentId: int64(uuid.New().ID()),
		UserId:    userId,
		VideoId:   videoId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	info, err := db.GetCommentDetail(s.ctx, comment.CommentId)
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to get created comment")
	}
	return info, nil
}

func (s *CommentService) ListComment(videoId, pageNum, pageSize int64) ([]*model.CommentInfo, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetVideoCommentList(s.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.CommentList failed")
	}
	return list, count, nil
}

func (s *CommentService) UpdateComment(commentId, userId int64, content string) error {
	err := db.UpdateComment(s.ctx, commentId, userId, content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 不区分"不存在"和"不是所有者" 避免向非所有者暴露资源存在性
		return errno.RecordNotFoundErr.WithMessage("comment not found or not owned")
	}
	return err
}

func (s *CommentService) DeleteComment(commentId, userId int64) error {
	err := db.DeleteComment(s.ctx, commentId, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("comment not found or not owned")
	}
	return err
}
