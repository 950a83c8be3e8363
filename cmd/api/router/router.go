package router

import (
	"VidTube.com/cmd/api/handlers/comment"
	"VidTube.com/cmd/api/handlers/dashboard"
	"VidTube.com/cmd/api/handlers/like"
	"VidTube.com/cmd/api/handlers/playlist"
	"VidTube.com/cmd/api/handlers/subscription"
	"VidTube.com/cmd/api/handlers/tweet"
	"VidTube.com/cmd/api/handlers/user"
	"VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func Register(r *server.Hertz) {
	v1 := r.Group("/v1")

	userGroup := v1.Group("/user")
	userGroup.POST("/register", user.Register)
	userGroup.POST("/login", user.Login)
	userAuth := userGroup.Group("", authfunc.Auth()...)
	userAuth.GET("/info", user.Info)
	userAuth.POST("/avatar", user.UpdateAvatar)

	commentGroup := v1.Group("/comment")
	commentGroup.GET("/list", comment.ListComment)
	commentAuth := commentGroup.Group("", authfunc.Auth()...)
	commentAuth.POST("/create", comment.CreateComment)
	commentAuth.POST("/update", comment.UpdateComment)
	commentAuth.POST("/delete", comment.DeleteComment)

	likeGroup := v1.Group("/like", authfunc.Auth()...)
	likeGroup.POST("/action", like.LikeAction)
	likeGroup.GET("/videos", like.LikedVideos)

	playlistGroup := v1.Group("/playlist")
	playlistGroup.GET("/list", playlist.ListPlaylist)
	playlistGroup.GET("/info", playlist.PlaylistInfo)
	playlistAuth := playlistGroup.Group("", authfunc.Auth()...)
	playlistAuth.POST("/create", playlist.CreatePlaylist)
	playlistAuth.POST("/update", playlist.UpdatePlaylist)
	playlistAuth.POST("/delete", playlist.DeletePlaylist)
	playlistAuth.POST("/video/add", playlist.AddPlaylistVideo)
	playlistAuth.POST("/video/remove", playlist.RemovePlaylistVideo)

	subscriptionGroup := v1.Group("/subscription")
	subscriptionGroup.GET("/subscribers", subscription.SubscriberList)
	subscriptionGroup.GET("/channels", subscription.SubscribedChannels)
	subscriptionAuth := subscriptionGroup.Group("", authfunc.Auth()...)
	subscriptionAuth.POST("/action", subscription.SubscribeAction)

	tweetGroup := v1.Group("/tweet")
	tweetGroup.GET("/list", tweet.ListTweet)
	tweetAuth := tweetGroup.Group("", authfunc.Auth()...)
	tweetAuth.POST("/create", tweet.CreateTweet)
	tweetAuth.POST("/update", tweet.UpdateTweet)
	tweetAuth.POST("/delete", tweet.DeleteTweet)

	videoGroup := v1.Group("/video")
	videoGroup.GET("/list", video.VideoList)
	videoGroup.GET("/info", video.VideoInfo)
	videoAuth := videoGroup.Group("", authfunc.Auth()...)
	videoAuth.POST("/publish", FlowLimit(publishResource), video.PublishVideo)
	videoAuth.POST("/update", video.UpdateVideo)
	videoAuth.POST("/delete", video.DeleteVideo)
	videoAuth.POST("/toggle_publish", video.TogglePublish)

	dashboardGroup := v1.Group("/dashboard", authfunc.Auth()...)
	dashboardGroup.GET("/stats", dashboard.ChannelStats)
	dashboardGroup.GET("/videos", dashboard.ChannelVideos)
}
