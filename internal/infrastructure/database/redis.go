package database

import (
	"log"
	"os"
	"strings"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the optional shared cache tier from REDIS_URL.
// When the variable is unset both returns are nil and the cache runs
// in-process only.
func ConnectRedis() (*redis.Client, *redislock.Client) {
	rawURL := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if rawURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache runs in-process only: %v", err)
		return nil, nil
	}
	rdb := redis.NewClient(opts)
	return rdb, redislock.New(rdb)
}
