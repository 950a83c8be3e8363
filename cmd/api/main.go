package main

import (
	"context"
	"fmt"

	"VidTube.com/cmd/api/router"
	interactionredis "VidTube.com/cmd/interaction/infras/redis"
	videoredis "VidTube.com/cmd/video/infras/redis"
	"VidTube.com/config"
	"VidTube.com/config/pprof"
	"VidTube.com/dal"
	jwt "VidTube.com/pkg"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/tracer"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

// Init 进程内所有客户端的生命周期都在这里拉起
func Init() {
	config.Init()
	pprof.Load()
	tracer.InitJaeger("vidtube-api")
	dal.Init()
	if err := oss.InitMinio(); err != nil {
		hlog.Warnf("minio unavailable, uploads will fail: %v", err)
	}
	videoredis.Load()
	interactionredis.Load()
	lock.Init(config.ConfigInfo.Redis.Addr, config.ConfigInfo.Redis.Password)

	rabbitmqURL := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr)
	if err := mq.InitProducer(rabbitmqURL); err == nil {
		if err := mq.StartConsumer(context.Background(), rabbitmqURL); err != nil {
			hlog.Warnf("count sync consumer unavailable: %v", err)
		}
	}

	router.InitFlowRule()
}

func main() {
	Init()

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)

	r.Spin()
}
