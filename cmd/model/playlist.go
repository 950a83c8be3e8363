package model

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Name        string `json:"name" gorm:"size:128"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	DeletedAt   string `json:"-"`
}

// PlaylistVideo 播放列表成员 (playlist, video) 唯一 position维持顺序
type PlaylistVideo struct {
	PlaylistVideoId int64  `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64  `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video"`
	VideoId         int64  `json:"video_id" gorm:"uniqueIndex:uk_playlist_video"`
	Position        int64  `json:"position"`
	CreatedAt       string `json:"created_at"`
}
