package redis

import (
	"cinema_reservation/configs"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

var ErrNotConnected = errors.New("redis client not connected")

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[Cinema Reservation Redis Client:", pong, err, "]]")
}

// SetClientForTest swaps the package client, tests only.
func SetClientForTest(client *redis.Client) {
	redisClient = client
}

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", ErrNotConnected
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

func DelRedis(ctx context.Context, keys ...string) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	err := redisClient.Del(ctx, keys...).Err()
	return err
}
