package dashboard

type ChannelStatsParam struct {
	ChannelId int64 `form:"channel_id" query:"channel_id" json:"channel_id"`
}

type ChannelVideosParam struct {
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}
