package service

import (
	"context"
	"sync"

	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats 频道聚合数据 三路count互不依赖 并行取
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

func (s *DashboardService) GetChannelStats(channelId int64) (*ChannelStats, error) {
	var (
		wg         sync.WaitGroup
		videoStats *db.ChannelVideoStats
		subCount   int64
		likeCount  int64
		errVideo   error
		errSub     error
		errLike    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		videoStats, errVideo = db.GetChannelVideoStats(s.ctx, channelId)
	}()
	go func() {
		defer wg.Done()
		subCount, errSub = db.GetSubscriberCount(s.ctx, channelId)
	}()
	go func() {
		defer wg.Done()
		likeCount, errLike = db.GetChannelLikeCount(s.ctx, channelId)
	}()
	wg.Wait()

	for _, err := range []error{errVideo, errSub, errLike} {
		if err != nil {
			return nil, errors.WithMessage(err, "dao.ChannelStats failed")
		}
	}
	return &ChannelStats{
		TotalVideos:      videoStats.TotalVideos,
		TotalViews:       videoStats.TotalViews,
		TotalSubscribers: subCount,
		TotalLikes:       likeCount,
	}, nil
}

// GetChannelVideos 频道全部视频 含未发布的 只有所有者会走到这里
func (s *DashboardService) GetChannelVideos(channelId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetChannelVideoList(s.ctx, channelId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.ChannelVideoList failed")
	}
	return list, count, nil
}
