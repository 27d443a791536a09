package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий
const (
	EventProximityApproaching = "proximity.approaching"
	EventAttendancePending    = "attendance.pending_approval"
	EventAttendanceReviewed   = "attendance.reviewed"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type      string    `json:"type"`
	RepID     string    `json:"rep_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`

	FenceID   *uuid.UUID `json:"fence_id,omitempty"`
	FenceName string     `json:"fence_name,omitempty"`
	// DistanceMeters отсутствует, если расстояние не удалось вычислить
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Message        string   `json:"message,omitempty"`

	AttendanceID *uuid.UUID              `json:"attendance_id,omitempty"`
	Status       models.AttendanceStatus `json:"status,omitempty"`
	FlagReason   string                  `json:"flag_reason,omitempty"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает из хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
