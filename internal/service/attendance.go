package service

//go:generate mockgen -source=attendance.go -destination=mocks/mock_attendance.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/geo"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AttendanceRepository определяет контракт для работы с бд отметок
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AttendanceRecord, error)
	// GetOpenByRep возвращает models.ErrNotFound, если открытой отметки нет
	GetOpenByRep(ctx context.Context, repID string) (*models.AttendanceRecord, error)
	UpdateClockOut(ctx context.Context, record *models.AttendanceRecord) error
	UpdateReview(ctx context.Context, record *models.AttendanceRecord) error
	ListByStatus(ctx context.Context, status models.AttendanceStatus, page, pageSize int) ([]*models.AttendanceRecord, error)
}

// AttendanceService определяет контракт отметок прихода/ухода и ручного подтверждения
type AttendanceService interface {
	ClockIn(ctx context.Context, repID string, reading models.PositionReading, hospitalID *string) (*models.AttendanceRecord, error)
	ClockOut(ctx context.Context, repID string, reading models.PositionReading) (*models.AttendanceRecord, error)
	GetAttendance(ctx context.Context, id uuid.UUID) (*models.AttendanceRecord, error)
	ListPending(ctx context.Context, page, pageSize int) ([]*models.AttendanceRecord, error)
	Review(ctx context.Context, id uuid.UUID, reviewer string, approve bool, note string) (*models.AttendanceRecord, error)
}

type attendanceService struct {
	repo      AttendanceRepository
	fences    GeoFenceService
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAttendanceService(repo AttendanceRepository, fences GeoFenceService, publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) AttendanceService {
	return &attendanceService{
		repo:      repo,
		fences:    fences,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// clockInFlag возвращает причину отправки на ручное подтверждение или "" для соответствующей отметки
func clockInFlag(report *geo.Report) string {
	switch {
	case report.NearestFence == nil:
		return models.FlagNoGeoFenceConfigured
	case !report.Verifiable():
		return models.FlagUnverifiableDistance
	case !report.IsCompliant:
		return models.FlagOutsideGeoFence
	}
	return ""
}

// ClockIn принимает отметку прихода. Несоответствующая или непроверяемая отметка не отклоняется,
// а сохраняется со статусом pending_approval.
func (s *attendanceService) ClockIn(ctx context.Context, repID string, reading models.PositionReading, hospitalID *string) (*models.AttendanceRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "ClockIn",
		"rep_id":  repID,
	})
	log.Info("Processing clock-in")

	open, err := s.repo.GetOpenByRep(ctx, repID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to look up open attendance")
		return nil, fmt.Errorf("service: could not check open attendance: %w", err)
	}
	if open != nil {
		log.WithField("attendance_id", open.ID).Warn("Rep is already clocked in")
		return nil, ErrAlreadyClockedIn
	}

	report, err := evaluateReading(ctx, s.fences, reading, hospitalID, s.cfg.ApproachingThresholdMeters)
	if err != nil {
		log.WithError(err).Warn("Clock-in position could not be evaluated")
		return nil, err
	}

	record := &models.AttendanceRecord{
		RepID:                 repID,
		HospitalID:            hospitalID,
		ClockInAt:             s.now(),
		ClockInLatitude:       reading.Latitude,
		ClockInLongitude:      reading.Longitude,
		ClockInAccuracy:       reading.Accuracy,
		ClockInDistanceMeters: report.FiniteDistance(),
		WithinGeoFence:        report.IsCompliant,
		Status:                models.AttendanceApproved,
	}
	if report.NearestFence != nil {
		record.FenceID = &report.NearestFence.ID
		if record.HospitalID == nil {
			record.HospitalID = report.NearestFence.HospitalID
		}
	}
	if flag := clockInFlag(report); flag != "" {
		record.Status = models.AttendancePendingApproval
		record.FlagReason = flag
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, ErrAlreadyClockedIn) {
			return nil, err
		}
		log.WithError(err).Error("Failed to create attendance record")
		return nil, fmt.Errorf("service: could not create attendance record: %w", err)
	}

	log = log.WithFields(logrus.Fields{
		"attendance_id": record.ID,
		"status":        record.Status,
		"flag_reason":   record.FlagReason,
	})
	if record.Status == models.AttendancePendingApproval {
		log.Warn("Clock-in flagged for manual approval")
		s.publish(ctx, log, attendanceEvent(webhook.EventAttendancePending, record, record.ClockInLatitude, record.ClockInLongitude, report, record.ClockInAt))
	} else {
		log.Info("Clock-in accepted")
	}
	return record, nil
}

// ClockOut закрывает открытую отметку. Уход вне зоны переводит одобренную отметку на ручное подтверждение.
func (s *attendanceService) ClockOut(ctx context.Context, repID string, reading models.PositionReading) (*models.AttendanceRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "ClockOut",
		"rep_id":  repID,
	})
	log.Info("Processing clock-out")

	record, err := s.repo.GetOpenByRep(ctx, repID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Clock-out without open attendance")
			return nil, ErrNotClockedIn
		}
		log.WithError(err).Error("Failed to look up open attendance")
		return nil, fmt.Errorf("service: could not check open attendance: %w", err)
	}

	report, err := evaluateReading(ctx, s.fences, reading, record.HospitalID, s.cfg.ApproachingThresholdMeters)
	if err != nil {
		log.WithError(err).Warn("Clock-out position could not be evaluated")
		return nil, err
	}

	now := s.now()
	lat, lon := reading.Latitude, reading.Longitude
	within := report.IsCompliant
	record.ClockOutAt = &now
	record.ClockOutLatitude = &lat
	record.ClockOutLongitude = &lon
	record.ClockOutDistanceMeters = report.FiniteDistance()
	record.ClockOutWithinGeoFence = &within

	flagged := false
	if !within && record.Status == models.AttendanceApproved {
		record.Status = models.AttendancePendingApproval
		record.FlagReason = models.FlagClockOutOutsideFence
		if !report.Verifiable() {
			record.FlagReason = models.FlagClockOutUnverifiable
		}
		flagged = true
	}

	if err := s.repo.UpdateClockOut(ctx, record); err != nil {
		log.WithError(err).Error("Failed to store clock-out")
		return nil, fmt.Errorf("service: could not store clock-out: %w", err)
	}

	log = log.WithFields(logrus.Fields{
		"attendance_id": record.ID,
		"status":        record.Status,
	})
	if flagged {
		log.Warn("Clock-out flagged for manual approval")
		s.publish(ctx, log, attendanceEvent(webhook.EventAttendancePending, record, lat, lon, report, now))
	} else {
		log.Info("Clock-out recorded")
	}
	return record, nil
}

// GetAttendance получает отметку по ID
func (s *attendanceService) GetAttendance(ctx context.Context, id uuid.UUID) (*models.AttendanceRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":       "attendance",
			"method":        "GetAttendance",
			"attendance_id": id,
		}).WithError(err).Warn("Failed to get attendance record")
		return nil, fmt.Errorf("service: could not get attendance record: %w", err)
	}
	return record, nil
}

// ListPending возвращает отметки, ожидающие ручного подтверждения
func (s *attendanceService) ListPending(ctx context.Context, page, pageSize int) ([]*models.AttendanceRecord, error) {
	page, pageSize = normalizePage(page, pageSize)

	records, err := s.repo.ListByStatus(ctx, models.AttendancePendingApproval, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "attendance",
			"method":  "ListPending",
		}).WithError(err).Error("Failed to list pending attendance")
		return nil, fmt.Errorf("service: could not list pending attendance: %w", err)
	}
	return records, nil
}

// Review подтверждает или отклоняет отметку, ожидающую ручного подтверждения
func (s *attendanceService) Review(ctx context.Context, id uuid.UUID, reviewer string, approve bool, note string) (*models.AttendanceRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "attendance",
		"method":        "Review",
		"attendance_id": id,
		"reviewer":      reviewer,
		"approve":       approve,
	})

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to review a non-existent attendance record")
		return nil, fmt.Errorf("service: attendance %s not found for review: %w", id, err)
	}
	if record.Status != models.AttendancePendingApproval {
		log.WithField("status", record.Status).Warn("Attendance record is not pending approval")
		return nil, ErrAlreadyReviewed
	}

	now := s.now()
	record.Status = models.AttendanceRejected
	if approve {
		record.Status = models.AttendanceApproved
	}
	record.ReviewNote = note
	record.ReviewedBy = &reviewer
	record.ReviewedAt = &now

	if err := s.repo.UpdateReview(ctx, record); err != nil {
		log.WithError(err).Error("Failed to store review")
		return nil, fmt.Errorf("service: could not store review: %w", err)
	}

	log.WithField("status", record.Status).Info("Attendance reviewed")
	s.publish(ctx, log, attendanceEvent(webhook.EventAttendanceReviewed, record, record.ClockInLatitude, record.ClockInLongitude, nil, now))
	return record, nil
}

// publish отправляет событие; ошибка доставки не влияет на результат операции
func (s *attendanceService) publish(ctx context.Context, log *logrus.Entry, event webhook.WebhookEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish attendance event")
	}
}

func attendanceEvent(eventType string, record *models.AttendanceRecord, lat, lon float64, report *geo.Report, at time.Time) webhook.WebhookEvent {
	id := record.ID
	event := webhook.WebhookEvent{
		Type:         eventType,
		RepID:        record.RepID,
		Latitude:     lat,
		Longitude:    lon,
		Timestamp:    at,
		FenceID:      record.FenceID,
		AttendanceID: &id,
		Status:       record.Status,
		FlagReason:   record.FlagReason,
	}
	if report != nil {
		event.DistanceMeters = report.FiniteDistance()
		if report.NearestFence != nil {
			event.FenceName = report.NearestFence.Name
		}
		event.Message = fmt.Sprintf("%s needs manual approval: %s from nearest geofence", record.RepID, geo.FormatDistance(report.DistanceMeters))
	}
	return event
}
