package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"gorm.io/gorm"
)

// TestPlaylistMembership 追加分配position 重复插入被唯一索引拒绝
// 摘除后后续position左移 不留空洞
func TestPlaylistMembership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	base := time.Now().UnixNano() % 1e12
	playlistId := base
	videoIds := []int64{base + 1, base + 2, base + 3}

	now := time.Now().Format(constants.DataFormate)
	for i, videoId := range videoIds {
		pv := &model.PlaylistVideo{
			PlaylistVideoId: base + 10 + int64(i),
			PlaylistId:      playlistId,
			VideoId:         videoId,
			CreatedAt:       now,
		}
		if err := AddPlaylistVideo(ctx, pv); err != nil {
			t.Fatalf("AddPlaylistVideo(%d) failed: %v", videoId, err)
		}
		if pv.Position != int64(i)+1 {
			t.Errorf("video %d got position %d, want %d", videoId, pv.Position, i+1)
		}
	}
	defer DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{})

	t.Run("DuplicateRejected", func(t *testing.T) {
		dup := &model.PlaylistVideo{
			PlaylistVideoId: base + 20,
			PlaylistId:      playlistId,
			VideoId:         videoIds[0],
			CreatedAt:       now,
		}
		if err := AddPlaylistVideo(ctx, dup); err == nil {
			t.Error("AddPlaylistVideo accepted a duplicate (playlist, video) pair")
		}
	})

	t.Run("RemoveCompactsPositions", func(t *testing.T) {
		if err := RemovePlaylistVideo(ctx, playlistId, videoIds[1]); err != nil {
			t.Fatalf("RemovePlaylistVideo failed: %v", err)
		}

		rows := make([]*model.PlaylistVideo, 0)
		err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistId).
			Order("position asc").
			Find(&rows).Error
		if err != nil {
			t.Fatalf("query members failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d members, want 2", len(rows))
		}
		for i, row := range rows {
			if row.Position != int64(i)+1 {
				t.Errorf("member %d has position %d, want %d", row.VideoId, row.Position, i+1)
			}
		}
	})

	t.Run("RemoveAbsentIsNotFound", func(t *testing.T) {
		err := RemovePlaylistVideo(ctx, playlistId, base+999)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("RemovePlaylistVideo(absent) = %v, want gorm.ErrRecordNotFound", err)
		}
	})
}
