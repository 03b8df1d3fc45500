package rdx

import (
	"context"

	"restring/config"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client, used for the booking event bus.
var Conn *redis.Client

func Init(cfg config.Config) error {
	Conn = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	return Conn.Ping(context.Background()).Err()
}

func Close() error {
	if Conn == nil {
		return nil
	}
	return Conn.Close()
}
