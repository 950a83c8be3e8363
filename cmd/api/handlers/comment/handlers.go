package comment

type CreateCommentParam struct {
	VideoId int64  `form:"video_id" query:"video_id" json:"video_id"`
	Content string `form:"content" query:"content" json:"content"`
}

type ListCommentParam struct {
	VideoId  int64 `form:"video_id" query:"video_id" json:"video_id"`
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}

type UpdateCommentParam struct {
	CommentId int64  `form:"comment_id" query:"comment_id" json:"comment_id"`
	Content   string `form:"content" query:"content" json:"content"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id" query:"comment_id" json:"comment_id"`
}
