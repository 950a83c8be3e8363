package dashboard

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/dashboard/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ChannelStats channel_id缺省时取当前登录用户自己的频道
func ChannelStats(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ChannelStatsParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.ChannelId == 0 {
		v, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		param.ChannelId = utils.Transfer(v)
	}

	stats, err := service.NewDashboardService(ctx).GetChannelStats(param.ChannelId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, stats)
}
