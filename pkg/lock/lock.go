package lock

import (
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

var rs *redsync.Redsync

// Init 基于redis的分布式互斥锁 播放列表成员变更用它串行化
func Init(addr, password string) {
	client := goredislib.NewClient(&goredislib.Options{
		Addr:     addr,
		Password: password,
	})
	pool := goredis.NewPool(client)
	rs = redsync.New(pool)
}

// NewPlaylistMutex per-playlist互斥域
func NewPlaylistMutex(playlistId int64) *redsync.Mutex {
	return rs.NewMutex(
		fmt.Sprintf("lock:playlist:%d", playlistId),
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(8),
	)
}
