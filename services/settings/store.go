package settings

import (
	"context"
	"fmt"
	"log"
	"time"

	"carebridge/config"
	"carebridge/utils"

	"github.com/go-redis/redis/v8"
)

// Store is the key/value settings boundary the engine reads its global,
// administrator-mutable configuration through. Set publishes a change
// notification so readers never have to poll.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Subscribe invokes onChange for every settings write until ctx is done.
	Subscribe(ctx context.Context, onChange func(key, value string))
}

// RedisStore implements Store on a dedicated Redis DB with pub/sub change
// notification.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects the settings Redis client.
func NewRedisStore() *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSettingsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Settings): %v", err)
	}
	return &RedisStore{client: client}
}

// NewRedisStoreWithClient wraps an existing client; used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the stored value for key, or redis.Nil when unset.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, "settings:"+key).Result()
}

// Set stores the value and publishes the change on the settings channel.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, "settings:"+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	// Notification is best-effort; the value is already durable.
	if err := s.client.Publish(ctx, utils.SettingsChannel, key+"="+value).Err(); err != nil {
		log.Printf("settings: failed to publish change for %s: %v", key, err)
	}
	return nil
}

// Subscribe streams settings changes to onChange until ctx is cancelled.
func (s *RedisStore) Subscribe(ctx context.Context, onChange func(key, value string)) {
	sub := s.client.Subscribe(ctx, utils.SettingsChannel)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				key, value := splitChange(msg.Payload)
				onChange(key, value)
			}
		}
	}()
}

func splitChange(payload string) (string, string) {
	for i := 0; i < len(payload); i++ {
		if payload[i] == '=' {
			return payload[:i], payload[i+1:]
		}
	}
	return payload, ""
}
