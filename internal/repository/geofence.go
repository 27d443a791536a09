package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service"
	"github.com/redis/go-redis/v9"
)

const activeFencesCacheKey = "geofences:active"

const geoFenceColumns = `
	id,
	name,
	center_latitude,
	center_longitude,
	radius_meters,
	hospital_id,
	alert_radius_meters,
	is_active,
	created_at,
	updated_at`

type GeoFenceRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewGeoFenceRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.GeoFenceRepository {
	return &GeoFenceRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanGeoFence(row pgx.Row) (*models.GeoFence, error) {
	fence := &models.GeoFence{}
	err := row.Scan(
		&fence.ID,
		&fence.Name,
		&fence.CenterLatitude,
		&fence.CenterLongitude,
		&fence.RadiusMeters,
		&fence.HospitalID,
		&fence.AlertRadiusMeters,
		&fence.IsActive,
		&fence.CreatedAt,
		&fence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fence, nil
}

func collectGeoFences(rows pgx.Rows) ([]*models.GeoFence, error) {
	defer rows.Close()
	fences := make([]*models.GeoFence, 0)
	for rows.Next() {
		fence, err := scanGeoFence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error geofence iteration: %w", err)
	}
	return fences, nil
}

// Create создает новую геозону в бд
func (r *GeoFenceRepository) Create(ctx context.Context, fence *models.GeoFence) error {
	query := `
		INSERT INTO geofences (name, center_latitude, center_longitude, radius_meters, hospital_id, alert_radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		fence.Name,
		fence.CenterLatitude,
		fence.CenterLongitude,
		fence.RadiusMeters,
		fence.HospitalID,
		fence.AlertRadiusMeters,
		fence.IsActive,
	).Scan(&fence.ID, &fence.CreatedAt, &fence.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geofence: %w", err)
	}
	return nil
}

// GetByID возвращает геозону по её UUID
func (r *GeoFenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GeoFence, error) {
	query := `SELECT ` + geoFenceColumns + ` FROM geofences WHERE id = $1;`

	fence, err := scanGeoFence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geofence with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get geofence by id: %w", err)
	}
	return fence, nil
}

// Update обновляет геозону
func (r *GeoFenceRepository) Update(ctx context.Context, fence *models.GeoFence) error {
	query := `
		UPDATE geofences SET
			name = $1,
			center_latitude = $2,
			center_longitude = $3,
			radius_meters = $4,
			hospital_id = $5,
			alert_radius_meters = $6,
			is_active = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		fence.Name,
		fence.CenterLatitude,
		fence.CenterLongitude,
		fence.RadiusMeters,
		fence.HospitalID,
		fence.AlertRadiusMeters,
		fence.IsActive,
		fence.ID,
	).Scan(&fence.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("geofence with id %s for update: %w", fence.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	return nil
}

// Deactivate снимает признак активности, запись остаётся для истории отметок
func (r *GeoFenceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE geofences SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate geofence: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence with id %s for deactivate: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает список геозон с пагинацией
func (r *GeoFenceRepository) List(ctx context.Context, page, pageSize int) ([]*models.GeoFence, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + geoFenceColumns + ` FROM geofences ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	return collectGeoFences(rows)
}

// ListActive возвращает все активные геозоны
func (r *GeoFenceRepository) ListActive(ctx context.Context) ([]*models.GeoFence, error) {
	query := `SELECT ` + geoFenceColumns + ` FROM geofences WHERE is_active ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active geofences: %w", err)
	}
	return collectGeoFences(rows)
}

// GetActiveFromCache пытается получить снимок активных зон из Redis; false - промах кеша
func (r *GeoFenceRepository) GetActiveFromCache(ctx context.Context) ([]*models.GeoFence, bool, error) {
	val, err := r.redisClient.Get(ctx, activeFencesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get active geofences from cache: %w", err)
	}

	var fences []*models.GeoFence
	if err := json.Unmarshal(val, &fences); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal active geofences from cache: %w", err)
	}
	return fences, true, nil
}

// SetActiveCache сохраняет снимок активных зон в Redis
func (r *GeoFenceRepository) SetActiveCache(ctx context.Context, fences []*models.GeoFence) error {
	val, err := json.Marshal(fences)
	if err != nil {
		return fmt.Errorf("failed to marshal active geofences for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, activeFencesCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set active geofences in cache: %w", err)
	}
	return nil
}

// InvalidateActiveCache удаляет снимок активных зон из Redis
func (r *GeoFenceRepository) InvalidateActiveCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, activeFencesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate active geofences cache: %w", err)
	}
	return nil
}
