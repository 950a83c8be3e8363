package subscription

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var err error
	var param SubscribedChannelParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	list, total, err := service.NewSubscriptionService(ctx).SubscribedChannelList(param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"channels": list,
		"pagination": handlers.Pagination{
			CurrentPage: pageNum,
			TotalPages:  utils.TotalPages(total, pageSize),
			Total:       total,
		},
	})
}
