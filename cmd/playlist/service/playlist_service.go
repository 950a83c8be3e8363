package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	playlist := &model.Playlist{
		PlaylistId:  int64(uuid.New().ID()),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().Format(constants.DataFormate),
		UpdatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePlaylist failed")
	}
	return playlist, nil
}

// GetPlaylist 播放列表详情连同按position展开的视频
func (s *PlaylistService) GetPlaylist(playlistId int64) (*model.Playlist, []*model.VideoLite, error) {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, errno.RecordNotFoundErr.WithMessage("playlist not found")
	}
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dao.GetPlaylistInfo failed")
	}
	videos, err := db.GetPlaylistVideoList(s.ctx, playlistId)
	if err != nil {
		return nil, nil, err
	}
	return playlist, videos, nil
}

func (s *PlaylistService) ListPlaylist(userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	list, count, err := db.GetPlaylistListByUser(s.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.PlaylistList failed")
	}
	return list, count, nil
}

func (s *PlaylistService) UpdatePlaylist(playlistId, userId int64, name, description string) error {
	err := db.UpdatePlaylist(s.ctx, playlistId, userId, name, description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("playlist not found or not owned")
	}
	return err
}

func (s *PlaylistService) DeletePlaylist(playlistId, userId int64) error {
	err := db.DeletePlaylist(s.ctx, playlistId, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("playlist not found or not owned")
	}
	return err
}

// checkPlaylistOwner 成员变更前先确认列表归属
func (s *PlaylistService) checkPlaylistOwner(playlistId, userId int64) error {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("playlist not found")
	}
	if err != nil {
		return errors.WithMessage(err, "dao.GetPlaylistInfo failed")
	}
	if playlist.UserId != userId {
		// 与0行update同语义 不向非所有者区分"存在但不是你的"
		return errno.RecordNotFoundErr.WithMessage("playlist not found")
	}
	return nil
}

// AddVideo 追加视频到列表末尾 position在锁内取MAX+1
// per-playlist分布式锁串行化并发追加 唯一索引兜底锁失效
func (s *PlaylistService) AddVideo(playlistId, userId, videoId int64) error {
	if err := s.checkPlaylistOwner(playlistId, userId); err != nil {
		return err
	}
	exist, err := db.IsVideoExist(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "Failed to check video")
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("video not found")
	}

	mutex := lock.NewPlaylistMutex(playlistId)
	if err := mutex.LockContext(s.ctx); err != nil {
		return errors.WithMessage(err, "Failed to acquire playlist lock")
	}
	defer func() {
		if _, err := mutex.UnlockContext(s.ctx); err != nil {
			hlog.CtxWarnf(s.ctx, "Failed to release playlist lock: %v", err)
		}
	}()

	exist, err = db.IsPlaylistVideoExist(s.ctx, playlistId, videoId)
	if err != nil {
		return errors.WithMessage(err, "Failed to check playlist member")
	}
	if exist {
		return errno.RecordAlreadyExistErr.WithMessage("video already in playlist")
	}

	err = db.AddPlaylistVideo(s.ctx, &model.PlaylistVideo{
		PlaylistVideoId: int64(uuid.New().ID()),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		CreatedAt:       time.Now().Format(constants.DataFormate),
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errno.RecordAlreadyExistErr.WithMessage("video already in playlist")
	}
	if err != nil {
		return errors.WithMessage(err, "dao.AddPlaylistVideo failed")
	}
	return nil
}

// RemoveVideo 摘除成员并在锁内回收其后的position
func (s *PlaylistService) RemoveVideo(playlistId, userId, videoId int64) error {
	if err := s.checkPlaylistOwner(playlistId, userId); err != nil {
		return err
	}

	mutex := lock.NewPlaylistMutex(playlistId)
	if err := mutex.LockContext(s.ctx); err != nil {
		return errors.WithMessage(err, "Failed to acquire playlist lock")
	}
	defer func() {
		if _, err := mutex.UnlockContext(s.ctx); err != nil {
			hlog.CtxWarnf(s.ctx, "Failed to release playlist lock: %v", err)
		}
	}()

	err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.RecordNotFoundErr.WithMessage("video not in playlist")
	}
	if err != nil {
		return errors.WithMessage(err, "dao.RemovePlaylistVideo failed")
	}
	return nil
}
