// Package cache keeps short-lived copies of read-heavy pages in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "galacticquest:leaderboard:top:"

// store is the part of the redis client the cache needs.
type store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

// LeaderboardCache stores top-N pages as JSON, one key per page size.
// Entries expire after ttl; writes never invalidate them early.
type LeaderboardCache struct {
	rdb store
	ttl time.Duration
}

// NewLeaderboardCache connects to addr and checks it with a ping. The caller
// owns the returned client and must close it.
func NewLeaderboardCache(ctx context.Context, addr string, ttl time.Duration) (*LeaderboardCache, *goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return newLeaderboardCache(rdb, ttl), rdb, nil
}

func newLeaderboardCache(rdb store, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{rdb: rdb, ttl: ttl}
}

func pageKey(limit int) string {
	return fmt.Sprintf("%s%d", keyPrefix, limit)
}

type cachedRow struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	TotalXP     int64  `json:"total_xp"`
	CurrentRank int    `json:"current_rank"`
}

// Get reports ok=false on a miss.
func (c *LeaderboardCache) Get(ctx context.Context, limit int) ([]models.LeaderboardRow, bool, error) {
	raw, err := c.rdb.Get(ctx, pageKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached []cachedRow
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("decode leaderboard page: %w", err)
	}
	rows := make([]models.LeaderboardRow, 0, len(cached))
	for _, r := range cached {
		rows = append(rows, models.LeaderboardRow(r))
	}
	return rows, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, limit int, rows []models.LeaderboardRow) error {
	cached := make([]cachedRow, 0, len(rows))
	for _, r := range rows {
		cached = append(cached, cachedRow(r))
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, pageKey(limit), raw, c.ttl).Err()
}
