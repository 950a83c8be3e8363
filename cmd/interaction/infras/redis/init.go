package redis

import (
	"context"

	"VidTube.com/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdbLike *goredis.Client

func Load() {
	rdbLike = goredis.NewClient(&goredis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       2,
	})
	if err := rdbLike.Ping(context.Background()).Err(); err != nil {
		logrus.Errorf("interaction redis connect failed: %v", err)
		return
	}
	logrus.Info("interaction redis loaded")
}
