package playlist

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/playlist/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func PlaylistInfo(ctx context.Context, c *app.RequestContext) {
	var err error
	var param PlaylistInfoParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	playlist, videos, err := service.NewPlaylistService(ctx).GetPlaylist(param.PlaylistId)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"playlist": playlist,
		"videos":   videos,
	})
}
