// Package parcelcache keeps parcel views in Redis. Every failure is logged
// and swallowed: callers fall back to the database on a miss.
package parcelcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "parcel:view:"
	generationPrefix = "parcel:gen:"

	// generationTTL outlives any single read by a wide margin; an expired
	// generation restarts at zero.
	generationTTL = 24 * time.Hour
)

// storeIfCurrent writes the view only while the generation still matches
// the stamp the reader saw. A zero TTL stores without expiry.
var storeIfCurrent = goredis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[2], ARGV[2])
end
return 1
`)

// Connect opens a client and checks the server answers.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

type RedisCache struct {
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(rdb goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "parcel-cache"),
	}
}

func key(parcelID kernel.UUID) string {
	return keyPrefix + parcelID.String()
}

func generationKey(parcelID kernel.UUID) string {
	return generationPrefix + parcelID.String()
}

func (c *RedisCache) Get(ctx context.Context, parcelID kernel.UUID) (queries.ParcelView, queries.CacheStamp, bool) {
	values, err := c.rdb.MGet(ctx, key(parcelID), generationKey(parcelID)).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed", "parcel_id", parcelID.String(), "error", err)
		return queries.ParcelView{}, 0, false
	}

	stamp, err := parseStamp(values[1])
	if err != nil {
		c.logger.WarnContext(ctx, "cache generation unreadable", "parcel_id", parcelID.String(), "error", err)
		return queries.ParcelView{}, 0, false
	}

	raw, ok := values[0].(string)
	if !ok {
		return queries.ParcelView{}, stamp, false
	}

	var view queries.ParcelView
	if err = json.Unmarshal([]byte(raw), &view); err != nil {
		c.logger.WarnContext(ctx, "cache entry unreadable", "parcel_id", parcelID.String(), "error", err)
		return queries.ParcelView{}, stamp, false
	}

	return view, stamp, true
}

func parseStamp(value any) (queries.CacheStamp, error) {
	if value == nil {
		return 0, nil
	}
	text, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected generation type %T", value)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse generation: %w", err)
	}
	return queries.CacheStamp(n), nil
}

// Set is a no-op when the parcel was invalidated after stamp was read.
func (c *RedisCache) Set(ctx context.Context, view queries.ParcelView, stamp queries.CacheStamp) {
	parcelID, err := kernel.UUIDFromString(view.ID)
	if err != nil {
		c.logger.WarnContext(ctx, "cache write skipped", "parcel_id", view.ID, "error", err)
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "parcel_id", view.ID, "error", err)
		return
	}

	stored, err := storeIfCurrent.Run(ctx, c.rdb,
		[]string{generationKey(parcelID), key(parcelID)},
		strconv.FormatInt(int64(stamp), 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "parcel_id", view.ID, "error", err)
		return
	}
	if stored == 0 {
		c.logger.DebugContext(ctx, "cache write superseded", "parcel_id", view.ID, "stamp", int64(stamp))
	}
}

// Invalidate bumps the generation before dropping the view so a reader
// holding the previous stamp cannot store what it loaded.
func (c *RedisCache) Invalidate(ctx context.Context, parcelID kernel.UUID) {
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(parcelID))
		pipe.Expire(ctx, generationKey(parcelID), generationTTL)
		pipe.Del(ctx, key(parcelID))
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", "parcel_id", parcelID.String(), "error", err)
	}
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, kernel.UUID) (queries.ParcelView, queries.CacheStamp, bool) {
	return queries.ParcelView{}, 0, false
}

func (Noop) Set(context.Context, queries.ParcelView, queries.CacheStamp) {}

func (Noop) Invalidate(context.Context, kernel.UUID) {}
