package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PresenceService caches user online status in redis so the admin
// dashboard can read it without touching the connection hub.
type PresenceService struct {
	redis *redis.Client
	ctx   context.Context
}

func NewPresenceService(redis *redis.Client, ctx context.Context) *PresenceService {
	return &PresenceService{
		redis: redis,
		ctx:   ctx,
	}
}

func (ps *PresenceService) SetOnlineStatus(userId uint, status bool, lastSeen time.Time) error {
	expiration := time.Hour * 24

	statusKey := fmt.Sprintf("user_online_status_%v", userId)
	statusValue := "false"
	if status {
		statusValue = "true"
	}
	if err := ps.redis.Set(ps.ctx, statusKey, statusValue, expiration).Err(); err != nil {
		return err
	}

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userId)
	return ps.redis.Set(ps.ctx, lastSeenKey, lastSeen.Format(time.RFC3339), expiration).Err()
}

func (ps *PresenceService) GetOnlineStatus(userId uint) (bool, *time.Time, error) {
	statusKey := fmt.Sprintf("user_online_status_%v", userId)
	statusStr, err := ps.redis.Get(ps.ctx, statusKey).Result()
	if err != nil {
		return false, nil, err
	}

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userId)
	lastSeenStr, err := ps.redis.Get(ps.ctx, lastSeenKey).Result()
	if err != nil {
		return statusStr == "true", nil, err
	}
	lastSeen, err := time.Parse(time.RFC3339, lastSeenStr)
	if err != nil {
		return statusStr == "true", nil, err
	}

	return statusStr == "true", &lastSeen, nil
}
