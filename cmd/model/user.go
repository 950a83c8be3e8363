package model

type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey"`
	UserName  string `json:"user_name" gorm:"size:64;uniqueIndex:uk_user_name"`
	Password  string `json:"-" gorm:"size:128"`
	Email     string `json:"email" gorm:"size:128"`
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"-"`
}

// UserLite 列表场景只投影的用户字段
type UserLite struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
}
