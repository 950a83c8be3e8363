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

// PublishVideo multipart上传 视频必填 封面可选
// 先落到本地临时文件再交给service 无论成败临时文件都删掉
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param PublishVideoParam
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

	videoFile, err := c.FormFile("video")
	if err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}

	tmpDir := filepath.Join(os.TempDir(), "vidtube", "upload", uuid.New().String())
	if err := os.MkdirAll(tmpDir, os.ModePerm); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.RemoveAll(tmpDir)

	videoPath := filepath.Join(tmpDir, "video.mp4")
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	coverPath := ""
	if coverFile, err := c.FormFile("cover"); err == nil {
		coverPath = filepath.Join(tmpDir, "cover.jpg")
		if err := c.SaveUploadedFile(coverFile, coverPath); err != nil {
			hlog.CtxWarnf(ctx, "Failed to save cover file: %v", err)
			coverPath = ""
		}
	}

	video, err := service.NewVideoService(ctx, mq.GetProducer()).
		PublishVideo(userId, param.Title, param.Description, videoPath, coverPath)
	if err != nil {
		handlers.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	handlers.SendResponse(c, errno.Success, video)
}
