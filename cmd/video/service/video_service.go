package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"VidTube.com/cmd/model"
	videoredis "VidTube.com/cmd/video/infras/redis"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewVideoService(ctx context.Context, producer *mq.Producer) *VideoService {
	return &VideoService{ctx: ctx, producer: producer}
}

// PublishVideo 上传视频与封面到对象存储后落库 新视频默认已发布
// videoPath是handler落盘的临时文件 coverPath为空时用ffmpeg截首帧
// 临时产物在本函数内清理 上传失败不留垃圾行
func (s *VideoService) PublishVideo(userId int64, title, description, videoPath, coverPath string) (*model.Video, error) {
	videoId := int64(uuid.New().ID())
	vid := fmt.Sprintf("%d", videoId)

	videoUrl, err := oss.UploadVideo(s.ctx, videoPath, vid)
	if err != nil {
		return nil, errno.UploadErr.WithMessage(err.Error())
	}

	if coverPath == "" {
		thumbDir := filepath.Join(os.TempDir(), "vidtube", vid)
		defer os.RemoveAll(thumbDir)
		coverPath, err = utils.GetVideoThumbnail(videoPath, thumbDir)
		if err != nil {
			// 截帧失败不算致命 封面留空 可以后续update补
			hlog.CtxWarnf(s.ctx, "Failed to generate thumbnail: %v", err)
			coverPath = ""
		}
	}

	var coverUrl string
	if coverPath != "" {
		coverUrl, err = oss.UploadVideoCover(s.ctx, coverPath, vid)
		if err != nil {
			hlog.CtxWarnf(s.ctx, "Failed to upload cover: %v", err)
			coverUrl = ""
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      userId,
		Title:       title,
		Description: description,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		IsPublished: 1,
		CreatedAt:   time.Now().Format(constants.DataFormate),
		UpdatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}
	return video, nil
}

// VideoList 公开视频的分页列表 排序字段走白名单
func (s *VideoService) VideoList(userId int64, keyword, sortBy, sortOrder string, pageNum, pageSize int64) ([]*model.VideoInfo, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)

	if sortBy == "" {
		sortBy = "created_at"
	}
	field, ok := db.VideoSortField(sortBy)
	if !ok {
		return nil, 0, errno.ParamErr.WithMessage("unsupported sort field")
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	list, count, err := db.Videolist(s.ctx, userId, keyword, field+" "+sortOrder, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.VideoList failed")
	}
	return list, count, nil
}

// VideoInfo 取详情并记一次播放
// 播放先进redis的pending计数 事件发往MQ 消费者落库后再扣pending
// 展示值 = 库内visit_count + pending 崩溃时最多丢pending里的增量
func (s *VideoService) VideoInfo(videoId int64) (*model.VideoInfo, error) {
	info, err := db.GetVideoDetail(s.ctx, videoId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.RecordNotFoundErr.WithMessage("video not found")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoDetail failed")
	}

	if _, err := videoredis.IncrPendingVisit(s.ctx, videoId); err != nil {
		hlog.CtxWarnf(s.ctx, "Failed to record visit: %v", err)
	}
	if s.producer != nil {
		s.producer.PublishViewEvent(s.ctx, &mq.ViewEvent{
			VideoID:   videoId,
			Timestamp: time.Now().Unix(),
			EventID:   uuid.New().String(),
		})
	}

	info.VisitCount += videoredis.GetPendingVisit(s.ctx, videoId)
	return info, nil
}

func (s *VideoService) UpdateVideo(videoId, userId int64, title, description string) error {
	err := db.UpdateVideo(s.ctx, videoId, userId, title, description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("video not found or not owned")
	}
	return err
}

// UpdateVideoCover 替换封面 新封面走对象存储
func (s *VideoService) UpdateVideoCover(videoId, userId int64, coverPath string) (string, error) {
	coverUrl, err := oss.UploadVideoCover(s.ctx, coverPath, fmt.Sprintf("%d", videoId))
	if err != nil {
		return "", errno.UploadErr.WithMessage(err.Error())
	}
	err = db.UpdateVideoCover(s.ctx, videoId, userId, coverUrl)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errno.RecordNotFoundErr.WithMessage("video not found or not owned")
	}
	if err != nil {
		return "", err
	}
	return coverUrl, nil
}

// DeleteVideo 先删行再删对象 对象删除失败只记录
func (s *VideoService) DeleteVideo(videoId, userId int64) error {
	err := db.DeleteVideo(s.ctx, videoId, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("video not found or not owned")
	}
	if err != nil {
		return err
	}
	if err := oss.RemoveVideo(s.ctx, fmt.Sprintf("%d", videoId)); err != nil {
		hlog.CtxWarnf(s.ctx, "Failed to remove video objects: %v", err)
	}
	return nil
}

// TogglePublish 翻转发布位 单条update内完成
func (s *VideoService) TogglePublish(videoId, userId int64) (bool, error) {
	err := db.TogglePublish(s.ctx, videoId, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, errno.RecordNotFoundErr.WithMessage("video not found or not owned")
	}
	if err != nil {
		return false, err
	}
	video, err := db.GetVideoInfo(s.ctx, videoId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetVideoInfo failed")
	}
	return video.IsPublished == 1, nil
}
