package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.WithMessage(err, "Failed to create playlist")
	}
	return nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetPlaylistListByUser 用户的播放列表 最新在前
func GetPlaylistListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Playlist, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	list := make([]*model.Playlist, 0)
	err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

// GetPlaylistVideoList 播放列表内的视频 按position展开
func GetPlaylistVideoList(ctx context.Context, playlistId int64) ([]*model.VideoLite, error) {
	list := make([]*model.VideoLite, 0)
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Select("videos.video_id, videos.title, videos.cover_url").
		Joins("Join videos on videos.video_id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistId).
		Order("playlist_videos.position asc").
		Scan(&list).Error
	if err != nil {
		return nil, errors.WithMessage(err, "PlaylistVideoList failed")
	}
	return list, nil
}

func UpdatePlaylist(ctx context.Context, playlistId, userId int64, name, description string) error {
	result := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? And user_id = ?", playlistId, userId).
		Updates(map[string]interface{}{
			"name":        name,
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

// DeletePlaylist 连同列表内的成员行一起删除
func DeletePlaylist(ctx context.Context, playlistId, userId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("playlist_id = ? And user_id = ?", playlistId, userId).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error
	})
}

func IsPlaylistVideoExist(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count != 0, nil
}

// AddPlaylistVideo 追加到末尾 position取当前最大值+1
// 调用方持有per-playlist锁 唯一索引(uk_playlist_video)兜底重复插入
func AddPlaylistVideo(ctx context.Context, pv *model.PlaylistVideo) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Select("MAX(position)").
			Where("playlist_id = ?", pv.PlaylistId).
			Scan(&maxPos).Error; err != nil {
			return err
		}
		if maxPos == nil {
			pv.Position = 1
		} else {
			pv.Position = *maxPos + 1
		}
		return tx.Create(pv).Error
	})
}

// RemovePlaylistVideo 删除成员并回收其后的position 0行即不在列表中
func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pv := &model.PlaylistVideo{}
		err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? And video_id = ?", playlistId, videoId).
			First(pv).Error
		if err != nil {
			return err
		}
		if err := tx.Where("playlist_video_id = ?", pv.PlaylistVideoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? And position > ?", playlistId, pv.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}
