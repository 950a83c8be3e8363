package user

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/user/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Login(ctx context.Context, c *app.RequestContext) {
	var err error
	var param LoginParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserName == "" || param.Password == "" {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("user_name and password are required"), nil)
		return
	}

	u, err := service.NewUserService(ctx).Login(param.UserName, param.Password)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	accessToken, refreshToken, err := jwt.GenerateTokenPair(u.UserId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"user":          u,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
