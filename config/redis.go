package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

func ConnectRedis() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     Env("REDIS_ADDR", "localhost:6379"),
		Password: Env("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Println("Error pinging Redis:", err)
		return err
	}
	log.Println("Connected to Redis")
	return nil
}

func RedisClient() *redis.Client {
	return rdb
}
