package user

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/user/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// Info 当前登录用户的资料
func Info(ctx context.Context, c *app.RequestContext) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)

	u, err := service.NewUserService(ctx).GetUserInfo(userId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, u)
}
