package router

import (
	"context"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/pkg/errno"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const publishResource = "video_publish"

// InitFlowRule 上传是整个服务最贵的请求 转码和对象存储都扛不住突发
func InitFlowRule() {
	if err := sentinel.InitDefault(); err != nil {
		hlog.Warnf("sentinel init failed, flow control disabled: %v", err)
		return
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               publishResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              10,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		hlog.Warnf("Failed to load flow rules: %v", err)
	}
}

// FlowLimit 超过阈值直接拒绝 不排队
func FlowLimit(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blockErr := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blockErr != nil {
			handlers.SendResponse(c, errno.ServiceErr.WithMessage("too many requests, try again later"), nil)
			c.Abort()
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
