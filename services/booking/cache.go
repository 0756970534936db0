package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"mentorhub/utils"
)

const slotCacheTTL = 5 * time.Minute

// SlotCache memoizes computed bookable-slot grids per mentor and date. All
// operations are best-effort; a cache failure just means recomputation.
type SlotCache interface {
	GetSlots(ctx context.Context, mentorID, date string) ([]string, bool)
	SetSlots(ctx context.Context, mentorID, date string, slots []string)
	InvalidateSlots(ctx context.Context, mentorID, date string)
}

type redisSlotCache struct {
	client *redis.Client
}

// NewRedisSlotCache builds a SlotCache over the generic redis cache DB.
func NewRedisSlotCache(client *redis.Client) SlotCache {
	return &redisSlotCache{client: client}
}

func slotKey(mentorID, date string) string {
	return "slots:" + mentorID + ":" + date
}

func (c *redisSlotCache) GetSlots(ctx context.Context, mentorID, date string) ([]string, bool) {
	raw, err := c.client.Get(ctx, slotKey(mentorID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *redisSlotCache) SetSlots(ctx context.Context, mentorID, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(mentorID, date), raw, slotCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("slot cache set failed", zap.String("mentorID", mentorID), zap.Error(err))
	}
}

func (c *redisSlotCache) InvalidateSlots(ctx context.Context, mentorID, date string) {
	if err := c.client.Del(ctx, slotKey(mentorID, date)).Err(); err != nil && err != redis.Nil {
		utils.GetLogger().Debug("slot cache invalidate failed", zap.String("mentorID", mentorID), zap.Error(err))
	}
}
