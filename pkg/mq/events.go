package mq

// LikeEvent 点赞事件 消费侧据此维护videos.like_count
type LikeEvent struct {
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"` // "video" / "comment" / "tweet"
	TargetID   int64  `json:"target_id"`
	ActionType string `json:"action_type"` // "like" or "unlike"
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}

// ViewEvent 播放事件 消费侧据此累加videos.visit_count
type ViewEvent struct {
	VideoID   int64  `json:"video_id"`
	Timestamp int64  `json:"timestamp"`
	EventID   string `json:"event_id"`
}

const (
	InteractionEventExchange = "interaction_events"

	LikeEventQueue = "like_event_queue"
	ViewEventQueue = "view_event_queue"

	likeRoutingKey = "like"
	viewRoutingKey = "view"
)
