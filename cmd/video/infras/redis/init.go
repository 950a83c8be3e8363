package redis

import (
	"context"

	"VidTube.com/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdbVideo *goredis.Client

func Load() {
	rdbVideo = goredis.NewClient(&goredis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       1,
	})
	if err := rdbVideo.Ping(context.Background()).Err(); err != nil {
		logrus.Errorf("video redis connect failed: %v", err)
		return
	}
	logrus.Info("video redis loaded")
}
