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

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	tweet := &model.Tweet{
		TweetId:   int64(uuid.New().ID()),
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateTweet failed")
	}
	return tweet, nil
}

func (s *TweetService) ListTweet(userId, pageNum, pageSize int64) ([]*model.Tweet, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetTweetListByUser(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.TweetList failed")
	}
	return list, count, nil
}

func (s *TweetService) UpdateTweet(tweetId, userId int64, content string) error {
	err := db.UpdateTweet(s.ctx, tweetId, userId, content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("tweet not found or not owned")
	}
	return err
}

func (s *TweetService) DeleteTweet(tweetId, userId int64) error {
	err := db.DeleteTweet(s.ctx, tweetId, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("tweet not found or not owned")
	}
	return err
}
