package subscription

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/relation/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func SubscribeAction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param SubscribeActionParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId = utils.Transfer(v)

	subscribed, err := service.NewSubscriptionService(ctx).SubscribeAction(userId, param.ChannelId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"subscribed": subscribed,
	})
}
