package service

import (
	"context"
	"time"

	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewLikeService(ctx context.Context, producer *mq.Producer) *LikeService {
	return &LikeService{ctx: ctx, producer: producer}
}

// ValidLikeTarget 点赞目标是tagged union 类型必须是三种之一
func ValidLikeTarget(targetType string) bool {
	switch targetType {
	case constants.LikeTargetVideo, constants.LikeTargetComment, constants.LikeTargetTweet:
		return true
	}
	return false
}

// LikeAction toggle点赞 返回翻转后的状态和当前点赞数
// 先条件删除 命中即取消 未命中则插入 唯一索引兜底并发双插入
// 不做handler层的先查后改
func (s *LikeService) LikeAction(userId int64, targetType string, targetId int64) (liked bool, likeCount int64, err error) {
	if !ValidLikeTarget(targetType) {
		return false, 0, errno.ParamErr.WithMessage("invalid like target type")
	}
	exist, err := s.targetExists(targetType, targetId)
	if err != nil {
		return false, 0, errors.WithMessage(err, "Failed to check like target")
	}
	if !exist {
		return false, 0, errno.RecordNotFoundErr.WithMessage(targetType + " not found")
	}

	matched, err := db.DeleteLike(s.ctx, userId, targetType, targetId)
	if err != nil {
		return false, 0, errors.WithMessage(err, "dao.DeleteLike failed")
	}

	if matched {
		liked = false
	} else {
		like := &model.Like{
			LikeId:     int64(uuid.New().ID()),
			UserId:     userId,
			TargetType: targetType,
			TargetId:   targetId,
			CreatedAt:  time.Now().Format(constants.DataFormate),
		}
		err = db.CreateLike(s.ctx, like)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发toggle输掉的一方 行已经在了 状态就是"已点赞"
			hlog.CtxWarnf(s.ctx, "concurrent like insert lost the race, user=%d target=%s/%d", userId, targetType, targetId)
			err = nil
		}
		if err != nil {
			return false, 0, errors.WithMessage(err, "dao.CreateLike failed")
		}
		liked = true
	}

	likeCount = s.refreshLikeCount(targetType, targetId, liked)
	s.publishLikeEvent(userId, targetType, targetId, liked)
	return liked, likeCount, nil
}

func (s *LikeService) targetExists(targetType string, targetId int64) (bool, error) {
	switch targetType {
	case constants.LikeTargetVideo:
		return db.IsVideoExist(s.ctx, targetId)
	case constants.LikeTargetComment:
		return db.IsCommentExist(s.ctx, targetId)
	default:
		return db.IsTweetExist(s.ctx, targetId)
	}
}

func (s *LikeService) refreshLikeCount(targetType string, targetId int64, liked bool) int64 {
	if _, hit := redis.GetLikeCount(s.ctx, targetType, targetId); !hit {
		// 缓存缺失用DB回填 回填后不再加减 count已含本次变更
		count, err := db.GetLikeCount(s.ctx, targetType, targetId)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "Failed to count likes: %v", err)
			return 0
		}
		redis.SetLikeCount(s.ctx, targetType, targetId, count)
		return count
	}
	var delta int64 = 1
	if !liked {
		delta = -1
	}
	redis.IncrLikeCount(s.ctx, targetType, targetId, delta)
	count, _ := redis.GetLikeCount(s.ctx, targetType, targetId)
	return count
}

func (s *LikeService) publishLikeEvent(userId int64, targetType string, targetId int64, liked bool) {
	if s.producer == nil {
		return
	}
	actionType := "like"
	if !liked {
		actionType = "unlike"
	}
	s.producer.PublishLikeEvent(s.ctx, &mq.LikeEvent{
		UserID:     userId,
		TargetType: targetType,
		TargetID:   targetId,
		ActionType: actionType,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	})
}

func (s *LikeService) GetLikedVideos(userId, pageNum, pageSize int64) ([]*model.VideoLite, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetLikedVideoList(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.LikedVideoList failed")
	}
	return list, count, nil
}
