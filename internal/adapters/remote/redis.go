package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ports"
)

// DefaultRedisKeyPrefix is prepended to the user id to form the record key
const DefaultRedisKeyPrefix = "despertar:alarms:"

// RedisMirror stores the alarm list of each user as a JSON string value
type RedisMirror struct {
	client *redis.Client
	prefix string
}

// Verify interface compliance at compile time
var _ ports.AlarmMirror = (*RedisMirror)(nil)

// RedisOptions configures the redis mirror
type RedisOptions struct {
	Addr      string
	DB        int
	KeyPrefix string
	Password  string
}

// OpenRedis connects to redis and checks the connection with a ping
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisMirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return NewRedisMirror(client, opts.KeyPrefix), nil
}

// NewRedisMirror wraps an existing client
func NewRedisMirror(client *redis.Client, prefix string) *RedisMirror {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisMirror{client: client, prefix: prefix}
}

func (m *RedisMirror) key(userID string) string {
	return m.prefix + userID
}

// Save implements AlarmMirror.Save
func (m *RedisMirror) Save(ctx context.Context, userID string, alarms []domain.Alarm) error {
	payload, err := EncodeAlarms(alarms)
	if err != nil {
		return err
	}

	if err := m.client.Set(ctx, m.key(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save alarms: %w", err)
	}
	return nil
}

// Load implements AlarmMirror.Load
func (m *RedisMirror) Load(ctx context.Context, userID string) ([]domain.Alarm, error) {
	payload, err := m.client.Get(ctx, m.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load alarms: %w", err)
	}
	return DecodeAlarms(payload)
}

// Close closes the redis client
func (m *RedisMirror) Close() error {
	return m.client.Close()
}
