package tweet

type CreateTweetParam struct {
	Content string `form:"content" query:"content" json:"content"`
}

type ListTweetParam struct {
	UserId   int64 `form:"user_id" query:"user_id" json:"user_id"`
	PageNum  int64 `form:"page_num" query:"page_num" json:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size" json:"page_size"`
}

type UpdateTweetParam struct {
	TweetId int64  `form:"tweet_id" query:"tweet_id" json:"tweet_id"`
	Content string `form:"content" query:"content" json:"content"`
}

type DeleteTweetParam struct {
	TweetId int64 `form:"tweet_id" query:"tweet_id" json:"tweet_id"`
}
