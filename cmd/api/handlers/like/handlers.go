package like

type LikeActionParam struct {
	TargetType string `form:"target_type" query:"target_type" json:"target_type"`
	TargetId   int64  `form:"target_id" query:"target_id" json:"target_id"`
}

type LikedVideosParam struct {
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}
