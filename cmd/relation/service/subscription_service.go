package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// SubscribeAction toggle订阅 行的存在即订阅状态
// 与点赞同构 条件删除→插入 唯一索引(uk_user_channel)兜底
func (s *SubscriptionService) SubscribeAction(userId, channelId int64) (subscribed bool, err error) {
	if userId == channelId {
		return false, errno.ParamErr.WithMessage("cannot subscribe to yourself")
	}
	exist, err := db.IsUserExist(s.ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "Failed to check channel")
	}
	if !exist {
		return false, errno.RecordNotFoundErr.WithMessage("channel not found")
	}

	matched, err := db.DeleteSubscription(s.ctx, userId, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.DeleteSubscription failed")
	}
	if matched {
		return false, nil
	}

	err = db.CreateSubscription(s.ctx, &model.Subscription{
		SubscriptionId: int64(uuid.New().ID()),
		UserId:         userId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		hlog.CtxWarnf(s.ctx, "concurrent subscribe insert lost the race, user=%d channel=%d", userId, channelId)
		err = nil
	}
	if err != nil {
		return false, errors.WithMessage(err, "dao.CreateSubscription failed")
	}
	return true, nil
}

func (s *SubscriptionService) SubscriberList(channelId, pageNum, pageSize int64) ([]*model.UserLite, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetSubscriberList(s.ctx, channelId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.SubscriberList failed")
	}
	return list, count, nil
}

func (s *SubscriptionService) SubscribedChannelList(userId, pageNum, pageSize int64) ([]*model.UserLite, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetSubscribedChannelList(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.SubscribedChannelList failed")
	}
	return list, count, nil
}
