// Package cooldown holds the Redis implementation of the nudge cooldown store.
package cooldown

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KEYS[1] pair key, KEYS[2] sender index. ARGV: now ms, until ms, ttl ms, goal id.
// Returns the active cooldown end, or nil when the cooldown was set.
var acquireScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return cur
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
redis.call('ZADD', KEYS[2], ARGV[2], ARGV[4])
redis.call('PEXPIRE', KEYS[2], ARGV[3])
return false
`)

// KEYS[1] pair key, KEYS[2] sender index. ARGV: until ms, goal id.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	redis.call('DEL', KEYS[1])
	redis.call('ZREM', KEYS[2], ARGV[2])
	return 1
end
return 0
`)

type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{
		rdb: rdb,
	}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func pairKey(senderID, goalID uuid.UUID) string {
	return fmt.Sprintf("nudge:cooldown:%s:%s", senderID, goalID)
}

func senderKey(senderID uuid.UUID) string {
	return fmt.Sprintf("nudge:cooldowns:%s", senderID)
}

func (rs *RedisStore) Acquire(ctx context.Context, senderID, goalID uuid.UUID, now, until time.Time) (bool, time.Time, error) {
	ttl := until.Sub(now).Milliseconds()
	if ttl < 1 {
		ttl = 1
	}
	res, err := acquireScript.Run(ctx, rs.rdb,
		[]string{pairKey(senderID, goalID), senderKey(senderID)},
		now.UnixMilli(), until.UnixMilli(), ttl, goalID.String(),
	).Text()
	if errors.Is(err, redis.Nil) {
		return true, until, nil
	}
	if err != nil {
		return false, time.Time{}, errors.New("acquiring cooldown error: " + err.Error())
	}
	active, err := parseMillis(res)
	if err != nil {
		return false, time.Time{}, err
	}
	return false, active.In(now.Location()), nil
}

func (rs *RedisStore) Release(ctx context.Context, senderID, goalID uuid.UUID, until time.Time) error {
	err := releaseScript.Run(ctx, rs.rdb,
		[]string{pairKey(senderID, goalID), senderKey(senderID)},
		strconv.FormatInt(until.UnixMilli(), 10), goalID.String(),
	).Err()
	if err != nil {
		return errors.New("releasing cooldown error: " + err.Error())
	}
	return nil
}

func (rs *RedisStore) Get(ctx context.Context, senderID, goalID uuid.UUID, now time.Time) (*time.Time, error) {
	res, err := rs.rdb.Get(ctx, pairKey(senderID, goalID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New("getting cooldown error: " + err.Error())
	}
	until, err := parseMillis(res)
	if err != nil {
		return nil, err
	}
	if !until.After(now) {
		return nil, nil
	}
	until = until.In(now.Location())
	return &until, nil
}

func (rs *RedisStore) ListActive(ctx context.Context, senderID uuid.UUID, now time.Time) (map[uuid.UUID]time.Time, error) {
	entries, err := rs.rdb.ZRangeByScoreWithScores(ctx, senderKey(senderID), &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(now.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, errors.New("listing cooldowns error: " + err.Error())
	}
	result := make(map[uuid.UUID]time.Time, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		goalID, err := uuid.Parse(member)
		if err != nil {
			return nil, errors.New("cooldown member parsing error: " + err.Error())
		}
		result[goalID] = time.UnixMilli(int64(entry.Score)).In(now.Location())
	}
	return result, nil
}

func parseMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("cooldown value parsing error: " + err.Error())
	}
	return time.UnixMilli(ms), nil
}
