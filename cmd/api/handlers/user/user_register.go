package user

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var err error
	var param RegisterParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserName == "" || param.Password == "" {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("user_name and password are required"), nil)
		return
	}

	var avatar []byte
	var avatarType string
	if fh, err := c.FormFile("avatar"); err == nil {
		avatar, avatarType, err = readFileHeader(fh)
		if err != nil {
			hlog.CtxWarnf(ctx, "Failed to read avatar file: %v", err)
			avatar = nil
		}
	}

	u, err := service.NewUserService(ctx).Register(param.UserName, param.Password, param.Email, avatar, avatarType)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, u)
}
