package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum  int64 = 1
	DefaultLimit    int64 = 10
	MaxLimit        int64 = 100

	// Like的目标类型
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"

	VideoBucket   = "video"
	PictureBucket = "picture"
)
