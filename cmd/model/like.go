package model

// Like 点赞关系 (user, target_type, target_id) 唯一
// 行的存在即点赞状态 没有布尔标志位
type Like struct {
	LikeId     int64  `json:"like_id" gorm:"primaryKey"`
	UserId     int64  `json:"user_id" gorm:"uniqueIndex:uk_user_target"`
	TargetType string `json:"target_type" gorm:"size:16;uniqueIndex:uk_user_target"`
	TargetId   int64  `json:"target_id" gorm:"uniqueIndex:uk_user_target"`
	CreatedAt  string `json:"created_at"`
}
