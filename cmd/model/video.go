package model

type Video struct {
	VideoId     int64  `json:"video_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Title       string `json:"title" gorm:"size:255"`
	Description string `json:"description"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	VisitCount  int64  `json:"visit_count"`
	LikeCount   int64  `json:"like_count"`
	IsPublished int64  `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	DeletedAt   string `json:"-"`
}

// VideoInfo 视频详情/列表的投影 连带作者字段
type VideoInfo struct {
	VideoId     int64  `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	VisitCount  int64  `json:"visit_count"`
	LikeCount   int64  `json:"like_count"`
	IsPublished int64  `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UserId      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	AvatarUrl   string `json:"avatar_url"`
}

// VideoLite 收藏/点赞列表只需要的字段
type VideoLite struct {
	VideoId  int64  `json:"video_id"`
	Title    string `json:"title"`
	CoverUrl string `json:"cover_url"`
}
