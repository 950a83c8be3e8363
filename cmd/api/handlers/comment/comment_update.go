package comment

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/interaction/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param UpdateCommentParam
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

	if err := service.NewCommentService(ctx).UpdateComment(param.CommentId, userId, param.Content); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}
