package service

//go:generate mockgen -source=compliance.go -destination=mocks/mock_compliance.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/geo"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ComplianceService проверяет позицию представителя и рассылает предупреждения о приближении
type ComplianceService interface {
	CheckCompliance(ctx context.Context, repID string, reading models.PositionReading, hospitalID *string) (*geo.Report, error)
}

type complianceService struct {
	fences    GeoFenceService
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewComplianceService(fences GeoFenceService, publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) ComplianceService {
	return &complianceService{
		fences:    fences,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CheckCompliance вычисляет вердикт по активным зонам и публикует событие, если представитель приближается к зоне
func (s *complianceService) CheckCompliance(ctx context.Context, repID string, reading models.PositionReading, hospitalID *string) (*geo.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "compliance",
		"method":  "CheckCompliance",
		"rep_id":  repID,
	})

	report, err := evaluateReading(ctx, s.fences, reading, hospitalID, s.cfg.ApproachingThresholdMeters)
	if err != nil {
		log.WithError(err).Warn("Compliance check failed")
		return nil, err
	}
	report.CheckedAt = s.now()

	log.WithFields(logrus.Fields{
		"is_compliant": report.IsCompliant,
		"proximity":    report.Proximity,
		"distance":     geo.FormatDistance(report.DistanceMeters),
	}).Info("Compliance check completed")

	if report.Proximity == geo.ProximityApproaching {
		event := proximityEvent(repID, reading, report)
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish proximity event")
		}
	}
	return report, nil
}

// evaluateReading проверяет показание GPS и оценивает его по актуальному снимку зон
func evaluateReading(ctx context.Context, fences GeoFenceService, reading models.PositionReading, hospitalID *string, alertRadius float64) (*geo.Report, error) {
	pos := geo.Coordinate{Latitude: reading.Latitude, Longitude: reading.Longitude}
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinates, reading.Latitude, reading.Longitude)
	}

	active, err := fences.ActiveFences(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load geofences: %w", err)
	}

	report := geo.Evaluate(pos, active, alertRadius)
	return &report, nil
}

func proximityEvent(repID string, reading models.PositionReading, report *geo.Report) webhook.WebhookEvent {
	fence := report.NearestFence
	return webhook.WebhookEvent{
		Type:           webhook.EventProximityApproaching,
		RepID:          repID,
		Latitude:       reading.Latitude,
		Longitude:      reading.Longitude,
		FenceID:        &fence.ID,
		FenceName:      fence.Name,
		DistanceMeters: report.FiniteDistance(),
		Message:        fmt.Sprintf("%s is %s from %s", repID, geo.FormatDistance(report.DistanceMeters), fence.Name),
		Timestamp:      report.CheckedAt,
	}
}
