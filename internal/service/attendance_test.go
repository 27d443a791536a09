package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service/mocks"
	"github.com/medfieldpro/geofence/internal/webhook"
	webhook_mocks "github.com/medfieldpro/geofence/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type attendanceDeps struct {
	repo    *mocks.MockAttendanceRepository
	fences  *mocks.MockGeoFenceService
	webhook *webhook_mocks.MockWebhookPublisher
}

func newTestAttendanceService(t *testing.T) (*attendanceService, attendanceDeps) {
	ctrl := gomock.NewController(t)
	deps := attendanceDeps{
		repo:    mocks.NewMockAttendanceRepository(ctrl),
		fences:  mocks.NewMockGeoFenceService(ctrl),
		webhook: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
	cfg := &config.Config{ApproachingThresholdMeters: 200}

	service := NewAttendanceService(deps.repo, deps.fences, deps.webhook, newTestLogger(), cfg).(*attendanceService)
	service.now = func() time.Time { return fixedNow }
	return service, deps
}

func notFound(repID string) error {
	return fmt.Errorf("open attendance for rep %s: %w", repID, models.ErrNotFound)
}

func TestClockIn_CompliantIsApproved(t *testing.T) {
	// Подготовка
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	fence := midtownFence()
	accuracy := 6.0
	reading := nearCenter
	reading.Accuracy = &accuracy

	// Ожидания
	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, (*string)(nil)).Return([]*models.GeoFence{fence}, nil).Times(1)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.AttendanceRecord) error {
			rec.ID = uuid.New()
			return nil
		}).Times(1)
	deps.webhook.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	record, err := service.ClockIn(ctx, "rep-1", reading, nil)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceApproved, record.Status)
	assert.True(t, record.WithinGeoFence)
	assert.Empty(t, record.FlagReason)
	assert.Equal(t, fence.ID, *record.FenceID)
	assert.Equal(t, "hosp-1", *record.HospitalID, "hospital is taken from the matched fence")
	assert.Equal(t, fixedNow, record.ClockInAt)
	assert.Equal(t, &accuracy, record.ClockInAccuracy)
	require.NotNil(t, record.ClockInDistanceMeters)
	assert.Less(t, *record.ClockInDistanceMeters, 100.0)
}

func TestClockIn_OutsideFenceGoesToManualApproval(t *testing.T) {
	// Подготовка
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	hospital := strPtr("hosp-1")

	// Ожидания
	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, hospital).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	deps.webhook.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventAttendancePending, event.Type)
			assert.Equal(t, models.AttendancePendingApproval, event.Status)
			assert.Equal(t, models.FlagOutsideGeoFence, event.FlagReason)
			assert.Equal(t, "Midtown General", event.FenceName)
			assert.Equal(t, fixedNow, event.Timestamp)
			return nil
		}).Times(1)

	// Действие
	record, err := service.ClockIn(ctx, "rep-1", justOutside, hospital)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePendingApproval, record.Status)
	assert.Equal(t, models.FlagOutsideGeoFence, record.FlagReason)
	assert.False(t, record.WithinGeoFence)
}

func TestClockIn_NoFencesConfiguredFailsClosed(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, gomock.Any()).Return(nil, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	record, err := service.ClockIn(ctx, "rep-1", justOutside, nil)

	require.NoError(t, err)
	assert.Equal(t, models.AttendancePendingApproval, record.Status)
	assert.Equal(t, models.FlagNoGeoFenceConfigured, record.FlagReason)
	assert.Nil(t, record.ClockInDistanceMeters)
	assert.Nil(t, record.FenceID)
}

func TestClockIn_AlreadyClockedIn(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(&models.AttendanceRecord{ID: uuid.New()}, nil).Times(1)
	deps.fences.EXPECT().ActiveFences(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ClockIn(ctx, "rep-1", nearCenter, nil)
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestClockIn_ConcurrentDuplicateRejectedByRepository(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, gomock.Any()).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(ErrAlreadyClockedIn).Times(1)

	_, err := service.ClockIn(ctx, "rep-1", nearCenter, nil)
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestClockIn_InvalidCoordinates(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ClockIn(ctx, "rep-1", models.PositionReading{Latitude: 40, Longitude: 200}, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestClockIn_RepositoryLookupError(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, errors.New("db down")).Times(1)

	_, err := service.ClockIn(ctx, "rep-1", nearCenter, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not check open attendance")
}

func openRecord() *models.AttendanceRecord {
	return &models.AttendanceRecord{
		ID:               uuid.New(),
		RepID:            "rep-1",
		HospitalID:       strPtr("hosp-1"),
		ClockInAt:        fixedNow.Add(-8 * time.Hour),
		ClockInLatitude:  nearCenter.Latitude,
		ClockInLongitude: nearCenter.Longitude,
		WithinGeoFence:   true,
		Status:           models.AttendanceApproved,
	}
}

func TestClockOut_Compliant(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	open := openRecord()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(open, nil).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, open.HospitalID).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	deps.repo.EXPECT().UpdateClockOut(ctx, open).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	record, err := service.ClockOut(ctx, "rep-1", nearCenter)

	require.NoError(t, err)
	assert.Equal(t, models.AttendanceApproved, record.Status)
	require.NotNil(t, record.ClockOutAt)
	assert.Equal(t, fixedNow, *record.ClockOutAt)
	assert.True(t, *record.ClockOutWithinGeoFence)
}

func TestClockOut_OutsideFenceFlagsApprovedRecord(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	open := openRecord()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(open, nil).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, open.HospitalID).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	deps.repo.EXPECT().UpdateClockOut(ctx, open).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	record, err := service.ClockOut(ctx, "rep-1", justOutside)

	require.NoError(t, err)
	assert.Equal(t, models.AttendancePendingApproval, record.Status)
	assert.Equal(t, models.FlagClockOutOutsideFence, record.FlagReason)
	assert.False(t, *record.ClockOutWithinGeoFence)
}

func TestClockOut_KeepsExistingPendingFlag(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	open := openRecord()
	open.Status = models.AttendancePendingApproval
	open.FlagReason = models.FlagOutsideGeoFence

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(open, nil).Times(1)
	deps.fences.EXPECT().ActiveFences(ctx, open.HospitalID).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	deps.repo.EXPECT().UpdateClockOut(ctx, open).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	record, err := service.ClockOut(ctx, "rep-1", justOutside)

	require.NoError(t, err)
	assert.Equal(t, models.FlagOutsideGeoFence, record.FlagReason)
}

func TestClockOut_NotClockedIn(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().GetOpenByRep(ctx, "rep-1").Return(nil, notFound("rep-1")).Times(1)

	_, err := service.ClockOut(ctx, "rep-1", nearCenter)
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestReview_Approve(t *testing.T) {
	// Подготовка
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	pending := openRecord()
	pending.Status = models.AttendancePendingApproval
	pending.FlagReason = models.FlagOutsideGeoFence

	// Ожидания
	deps.repo.EXPECT().GetByID(ctx, pending.ID).Return(pending, nil).Times(1)
	deps.repo.EXPECT().UpdateReview(ctx, pending).Return(nil).Times(1)
	deps.webhook.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventAttendanceReviewed, event.Type)
			assert.Equal(t, models.AttendanceApproved, event.Status)
			return nil
		}).Times(1)

	// Действие
	record, err := service.Review(ctx, pending.ID, "admin-7", true, "parking garage across the street")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceApproved, record.Status)
	assert.Equal(t, "admin-7", *record.ReviewedBy)
	assert.Equal(t, fixedNow, *record.ReviewedAt)
	assert.Equal(t, "parking garage across the street", record.ReviewNote)
}

func TestReview_Reject(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	pending := openRecord()
	pending.Status = models.AttendancePendingApproval

	deps.repo.EXPECT().GetByID(ctx, pending.ID).Return(pending, nil).Times(1)
	deps.repo.EXPECT().UpdateReview(ctx, pending).Return(nil).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	record, err := service.Review(ctx, pending.ID, "admin-7", false, "")

	require.NoError(t, err)
	assert.Equal(t, models.AttendanceRejected, record.Status)
}

func TestReview_NotPending(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	approved := openRecord()

	deps.repo.EXPECT().GetByID(ctx, approved.ID).Return(approved, nil).Times(1)
	deps.repo.EXPECT().UpdateReview(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Review(ctx, approved.ID, "admin-7", true, "")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReview_NotFound(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, id).Return(nil, fmt.Errorf("attendance record %s: %w", id, models.ErrNotFound)).Times(1)

	_, err := service.Review(ctx, id, "admin-7", true, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListPending(t *testing.T) {
	service, deps := newTestAttendanceService(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		ListByStatus(ctx, models.AttendancePendingApproval, 2, 20).
		Return([]*models.AttendanceRecord{openRecord()}, nil).
		Times(1)

	records, err := service.ListPending(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
