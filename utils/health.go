package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings the backing stores and keeps the latest snapshot.
type HealthMonitor struct {
	mongoClient *mongo.Client
	redisClient *redis.Client
	interval    time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor creates a monitor. redisClient may be nil.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		mongoClient: mongoClient,
		redisClient: redisClient,
		interval:    interval,
	}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Start runs an immediate check and then one per interval until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.check(ctx)
			}
		}
	}()
}

func (h *HealthMonitor) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if h.mongoClient != nil {
		status.Mongo = h.mongoClient.Ping(ctx, nil) == nil
	}
	if h.redisClient != nil {
		ok := h.redisClient.Ping(ctx).Err() == nil
		status.Redis = &ok
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
}
