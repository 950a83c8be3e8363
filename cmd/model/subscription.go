package model

// Subscription 订阅关系 (subscriber, channel) 唯一
// 行的存在即订阅状态
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	UserId         int64  `json:"user_id" gorm:"uniqueIndex:uk_user_channel"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:uk_user_channel"`
	CreatedAt      string `json:"created_at"`
}
