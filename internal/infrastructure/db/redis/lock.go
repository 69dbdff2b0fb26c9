package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

const (
	defaultLockTTL  = 10 * time.Second
	defaultLockWait = 3 * time.Second
	lockRetryEvery  = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another process is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ScheduleLock serializes schedule writes per property across replicas.
// Key format: lock:property:<property_id>
type ScheduleLock struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger zerolog.Logger
}

func NewScheduleLock(client *redis.Client, ttl, wait time.Duration, logger zerolog.Logger) *ScheduleLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &ScheduleLock{client: client, ttl: ttl, wait: wait, logger: logger}
}

// Lock blocks until the property lock is acquired, the wait budget runs out
// (domain.ErrScheduleBusy) or ctx is done.
func (l *ScheduleLock) Lock(ctx context.Context, propertyID string) (func(), error) {
	key := lockKey(propertyID)
	token := uuid.NewString()

	deadline := time.NewTimer(l.wait)
	defer deadline.Stop()
	ticker := time.NewTicker(lockRetryEvery)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire schedule lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			l.logger.Warn().Str("property_id", propertyID).Dur("waited", l.wait).Msg("schedule lock busy")
			return nil, domain.ErrScheduleBusy
		case <-ticker.C:
		}
	}
}

func (l *ScheduleLock) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Error().Err(err).Str("key", key).Msg("failed to release schedule lock")
	}
}

func lockKey(propertyID string) string {
	return fmt.Sprintf("lock:property:%s", propertyID)
}
