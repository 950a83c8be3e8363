package tweet

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/tweet/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param UpdateTweetParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.Content == "" {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("content is required"), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId = utils.Transfer(v)

	if err := service.NewTweetService(ctx).UpdateTweet(param.TweetId, userId, param.Content); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}
