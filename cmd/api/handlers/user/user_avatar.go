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

// UpdateAvatar 换头像 同名对象覆盖写
func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)

	fh, err := c.FormFile("avatar")
	if err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("avatar file is required"), nil)
		return
	}
	avatar, avatarType, err := readFileHeader(fh)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	avatarUrl, err := service.NewUserService(ctx).UpdateAvatar(userId, avatar, avatarType)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"avatar_url": avatarUrl,
	})
}
