// Package lock provides per-resource advisory locks backed by Redis. The
// scheduling services wrap their check-then-insert sequences in these locks so
// two concurrent requests cannot both pass a capacity or conflict check.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotAcquired = errors.New("lock not acquired")

// Locker runs a function while holding a named advisory lock.
type Locker interface {
	// WithLock acquires key, runs fn with a deadline of the lock TTL, and
	// releases the lock. Returns ErrNotAcquired if another holder owns key.
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed Locker. ttl bounds both the lock lifetime and
// the critical section's execution time.
func New(client *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{client: client, ttl: ttl}
}

// ActivityDayKey names the lock guarding capacity-check-then-book for one
// activity on one calendar day.
func ActivityDayKey(activityID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("lock:activity:%s:%s", activityID, day.Format("2006-01-02"))
}

// PractitionerDayKey names the lock guarding conflict-check-then-create for
// one physiotherapist on one calendar day.
func PractitionerDayKey(physioID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("lock:physio:%s:%s", physioID, day.Format("2006-01-02"))
}

func (l *redisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return ErrNotAcquired
	}

	defer func() {
		_ = l.release(context.WithoutCancel(ctx), key, token)
	}()

	fnCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(fnCtx)
}

// release deletes key only if this holder's token still owns it, so an
// expired-and-reacquired lock is never deleted from under the new holder.
var releaseScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	_, err := releaseScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	return nil
}
