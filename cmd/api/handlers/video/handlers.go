package video

type VideoListParam struct {
	UserId    int64  `form:"user_id" query:"user_id" json:"user_id"`
	Keyword   string `form:"keyword" query:"keyword" json:"keyword"`
	SortBy    string `form:"sort_by" query:"sort_by" json:"sort_by"`
	SortOrder string `form:"sort_order" query:"sort_order" json:"sort_order"`
	PageNum   int64  `form:"page_num" query:"page_num" json:"page_num"`
	PageSize  int64  `form:"page_size" query:"page_size" json:"page_size"`
}

type VideoInfoParam struct {
	VideoId int64 `form:"video_id" query:"video_id" json:"video_id"`
}

type PublishVideoParam struct {
	Title       string `form:"title" query:"title"`
	Description string `form:"description" query:"description"`
}

type UpdateVideoParam struct {
	VideoId     int64  `form:"video_id" query:"video_id"`
	Title       string `form:"title" query:"title"`
	Description string `form:"description" query:"description"`
}

type DeleteVideoParam struct {
	VideoId int64 `form:"video_id" query:"video_id" json:"video_id"`
}

type TogglePublishParam struct {
	VideoId int64 `form:"video_id" query:"video_id" json:"video_id"`
}
