package subscription

type SubscribeActionParam struct {
	ChannelId int64 `form:"channel_id" query:"channel_id" json:"channel_id"`
}

type SubscriberListParam struct {
	ChannelId int64 `form:"channel_id" query:"channel_id" json:"channel_id"`
	PageNum   int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize  int64 `form:"page_size" query:"page_size" json:"page_size"`
}

type SubscribedChannelParam struct {
	UserId   int64 `form:"user_id" query:"user_id" json:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}
