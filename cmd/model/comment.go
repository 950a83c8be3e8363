package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	UserId    int64  `json:"user_id" gorm:"index"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"-"`
}

// CommentInfo 评论列表的投影 连带评论者字段
type CommentInfo struct {
	CommentId int64  `json:"comment_id"`
	VideoId   int64  `json:"video_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
}
