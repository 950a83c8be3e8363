package video

import (
	"context"
	"os"
	"path/filepath"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/video/service"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// UpdateVideo 元数据更新 带cover文件时顺带换封面
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param UpdateVideoParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.Title == "" {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("title is required"), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId = utils.Transfer(v)

	svc := service.NewVideoService(ctx, mq.GetProducer())
	if err := svc.UpdateVideo(param.VideoId, userId, param.Title, param.Description); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if coverFile, err := c.FormFile("cover"); err == nil {
		tmpDir := filepath.Join(os.TempDir(), "vidtube", "upload", uuid.New().String())
		if err := os.MkdirAll(tmpDir, os.ModePerm); err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer os.RemoveAll(tmpDir)
		coverPath := filepath.Join(tmpDir, "cover.jpg")
		if err := c.SaveUploadedFile(coverFile, coverPath); err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		if _, err := svc.UpdateVideoCover(param.VideoId, userId, coverPath); err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}
	handlers.SendResponse(c, errno.Success, nil)
}
