package playlist

type CreatePlaylistParam struct {
	Name        string `form:"name" query:"name" json:"name"`
	Description string `form:"description" query:"description" json:"description"`
}

type ListPlaylistParam struct {
	UserId   int64 `form:"user_id" query:"user_id" json:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}

type PlaylistInfoParam struct {
	PlaylistId int64 `form:"playlist_id" query:"playlist_id" json:"playlist_id"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `form:"playlist_id" query:"playlist_id" json:"playlist_id"`
	Name        string `form:"name" query:"name" json:"name"`
	Description string `form:"description" query:"description" json:"description"`
}

type DeletePlaylistParam struct {
	PlaylistId int64 `form:"playlist_id" query:"playlist_id" json:"playlist_id"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `form:"playlist_id" query:"playlist_id" json:"playlist_id"`
	VideoId    int64 `form:"video_id" query:"video_id" json:"video_id"`
}
