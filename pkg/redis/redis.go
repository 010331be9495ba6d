package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis caches synthesized question prompts. The wizard questions are fixed
// per language and step, so their TTS audio is generated once and reused.
type IRedis interface {
	SetPromptAudio(ctx context.Context, language string, step int, url string, expiration time.Duration) error
	GetPromptAudio(ctx context.Context, language string, step int) (string, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func promptKey(language string, step int) string {
	return fmt.Sprintf("wizard:prompt:%s:%d", language, step)
}

func (r *redisClient) SetPromptAudio(ctx context.Context, language string, step int, url string, expiration time.Duration) error {
	key := promptKey(language, step)
	if err := r.client.Set(ctx, key, url, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching prompt audio for %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetPromptAudio(ctx context.Context, language string, step int) (string, error) {
	key := promptKey(language, step)
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading prompt audio for %s: %v", key, err))
		return "", err
	}
	return val, nil
}
