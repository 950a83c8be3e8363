package comment

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ListComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ListCommentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	list, total, err := service.NewCommentService(ctx).ListComment(param.VideoId, param.PageNum, param.PageSize)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"comments": list,
		"pagination": handlers.Pagination{
			CurrentPage: pageNum,
			TotalPages:  utils.TotalPages(total, pageSize),
			Total:       total,
		},
	})
}
