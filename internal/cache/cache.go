package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Short TTL: the cache only absorbs the 2-second polling from every phone
// at a table; sqlite stays the source of truth.
const gameTTL = 10 * time.Second

var Rdb *redis.Client

func Init(addr string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func Enabled() bool {
	return Rdb != nil
}

func SetGame(code string, doc string) {
	Rdb.Set(context.Background(), "game:"+code, doc, gameTTL)
}

func GetGame(code string) (string, error) {
	return Rdb.Get(context.Background(), "game:"+code).Result()
}
