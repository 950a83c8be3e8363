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

// ChannelVideos 当前登录用户自己频道的全部视频 含未发布的
func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param ChannelVideosParam
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

	list, total, err := service.NewDashboardService(ctx).GetChannelVideos(userId, param.PageNum, param.PageSize)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"videos": list,
		"pagination": handlers.Pagination{
			CurrentPage: pageNum,
			TotalPages:  utils.TotalPages(total, pageSize),
			Total:       total,
		},
	})
}
