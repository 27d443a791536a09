package service

//go:generate mockgen -source=geofence.go -destination=mocks/mock_geofence.go -package=mocks

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/geo"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/sirupsen/logrus"
)

// GeoFenceRepository определяет контракт для работы с бд геозон
type GeoFenceRepository interface {
	Create(ctx context.Context, fence *models.GeoFence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GeoFence, error)
	Update(ctx context.Context, fence *models.GeoFence) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*models.GeoFence, error)
	ListActive(ctx context.Context) ([]*models.GeoFence, error)

	GetActiveFromCache(ctx context.Context) ([]*models.GeoFence, bool, error)
	SetActiveCache(ctx context.Context, fences []*models.GeoFence) error
	InvalidateActiveCache(ctx context.Context) error
}

// GeoFenceService определяет контракт бизнес-логики управления геозонами
type GeoFenceService interface {
	CreateFence(ctx context.Context, fence *models.GeoFence) error
	GetFence(ctx context.Context, id uuid.UUID) (*models.GeoFence, error)
	UpdateFence(ctx context.Context, fence *models.GeoFence) error
	DeactivateFence(ctx context.Context, id uuid.UUID) error
	ListFences(ctx context.Context, page, pageSize int) ([]*models.GeoFence, error)
	ActiveFences(ctx context.Context, hospitalID *string) ([]*models.GeoFence, error)
}

type geoFenceService struct {
	repo   GeoFenceRepository
	logger *logrus.Logger
}

func NewGeoFenceService(repo GeoFenceRepository, logger *logrus.Logger) GeoFenceService {
	return &geoFenceService{
		repo:   repo,
		logger: logger,
	}
}

// ValidateFence проверяет конфигурацию зоны перед сохранением
func ValidateFence(fence *models.GeoFence) error {
	if fence.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFence)
	}
	if !geo.AreValidCoordinates(fence.CenterLatitude, fence.CenterLongitude) {
		return fmt.Errorf("%w: center (%v, %v) is out of range", ErrInvalidFence, fence.CenterLatitude, fence.CenterLongitude)
	}
	if math.IsNaN(fence.RadiusMeters) || math.IsInf(fence.RadiusMeters, 0) || fence.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidFence, fence.RadiusMeters)
	}
	if fence.AlertRadiusMeters != nil {
		alert := *fence.AlertRadiusMeters
		if math.IsNaN(alert) || math.IsInf(alert, 0) || alert < fence.RadiusMeters {
			return fmt.Errorf("%w: alert radius %v must not be smaller than radius %v", ErrInvalidFence, alert, fence.RadiusMeters)
		}
	}
	return nil
}

// CreateFence создает геозону
func (s *geoFenceService) CreateFence(ctx context.Context, fence *models.GeoFence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "CreateFence",
		"name":    fence.Name,
	})
	log.Info("Attempting to create a new geofence")

	if err := ValidateFence(fence); err != nil {
		log.WithError(err).Warn("Rejected geofence configuration")
		return err
	}

	fence.IsActive = true
	if err := s.repo.Create(ctx, fence); err != nil {
		log.WithError(err).Error("Failed to create geofence in repository")
		return fmt.Errorf("service: could not create geofence: %w", err)
	}
	s.invalidate(ctx, log)

	log.WithField("fence_id", fence.ID).Info("Geofence created successfully")
	return nil
}

// GetFence получает геозону по ID
func (s *geoFenceService) GetFence(ctx context.Context, id uuid.UUID) (*models.GeoFence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "geofence",
		"method":   "GetFence",
		"fence_id": id,
	})

	fence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get geofence from repository")
		return nil, fmt.Errorf("service: could not get geofence: %w", err)
	}
	return fence, nil
}

// UpdateFence обновляет существующую геозону
func (s *geoFenceService) UpdateFence(ctx context.Context, fence *models.GeoFence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "geofence",
		"method":   "UpdateFence",
		"fence_id": fence.ID,
	})
	log.Info("Attempting to update geofence")

	if err := ValidateFence(fence); err != nil {
		log.WithError(err).Warn("Rejected geofence configuration")
		return err
	}

	existing, err := s.repo.GetByID(ctx, fence.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent geofence")
		return fmt.Errorf("service: geofence %s not found for update: %w", fence.ID, err)
	}

	existing.Name = fence.Name
	existing.CenterLatitude = fence.CenterLatitude
	existing.CenterLongitude = fence.CenterLongitude
	existing.RadiusMeters = fence.RadiusMeters
	existing.HospitalID = fence.HospitalID
	existing.AlertRadiusMeters = fence.AlertRadiusMeters
	existing.IsActive = fence.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update geofence in repository")
		return fmt.Errorf("service: could not update geofence: %w", err)
	}
	s.invalidate(ctx, log)

	*fence = *existing
	log.Info("Geofence updated successfully")
	return nil
}

// DeactivateFence деактивирует геозону
func (s *geoFenceService) DeactivateFence(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "geofence",
		"method":   "DeactivateFence",
		"fence_id": id,
	})
	log.Info("Attempting to deactivate geofence")

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate geofence in repository")
		return fmt.Errorf("service: could not deactivate geofence: %w", err)
	}
	s.invalidate(ctx, log)

	log.Info("Geofence deactivated successfully")
	return nil
}

// ListFences возвращает список геозон с пагинацией
func (s *geoFenceService) ListFences(ctx context.Context, page, pageSize int) ([]*models.GeoFence, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "geofence",
		"method":    "ListFences",
		"page":      page,
		"page_size": pageSize,
	})

	fences, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences from repository")
		return nil, fmt.Errorf("service: could not list geofences: %w", err)
	}

	log.WithField("count", len(fences)).Debug("Geofences listed successfully")
	return fences, nil
}

// ActiveFences возвращает актуальный снимок активных зон, при hospitalID - только зоны этой больницы
func (s *geoFenceService) ActiveFences(ctx context.Context, hospitalID *string) ([]*models.GeoFence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "ActiveFences",
	})

	fences, found, err := s.repo.GetActiveFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read active geofences from cache")
	}
	if !found {
		fences, err = s.repo.ListActive(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list active geofences from repository")
			return nil, fmt.Errorf("service: could not list active geofences: %w", err)
		}
		if err := s.repo.SetActiveCache(ctx, fences); err != nil {
			log.WithError(err).Warn("Failed to cache active geofences")
		}
	}

	if hospitalID == nil {
		return fences, nil
	}
	filtered := make([]*models.GeoFence, 0, len(fences))
	for _, fence := range fences {
		if fence.BelongsTo(*hospitalID) {
			filtered = append(filtered, fence)
		}
	}
	return filtered, nil
}

func (s *geoFenceService) invalidate(ctx context.Context, log *logrus.Entry) {
	if err := s.repo.InvalidateActiveCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate active geofences cache")
	}
}

// normalizePage приводит параметры пагинации к допустимым значениям
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
