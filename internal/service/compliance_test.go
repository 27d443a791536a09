package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/geo"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service/mocks"
	"github.com/medfieldpro/geofence/internal/webhook"
	webhook_mocks "github.com/medfieldpro/geofence/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

func newTestComplianceService(t *testing.T) (*complianceService, *mocks.MockGeoFenceService, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	fencesMock := mocks.NewMockGeoFenceService(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	cfg := &config.Config{ApproachingThresholdMeters: 200}

	service := NewComplianceService(fencesMock, webhookMock, newTestLogger(), cfg).(*complianceService)
	service.now = func() time.Time { return fixedNow }
	return service, fencesMock, webhookMock
}

func midtownFence() *models.GeoFence {
	return &models.GeoFence{
		ID:              uuid.New(),
		Name:            "Midtown General",
		CenterLatitude:  40.7589,
		CenterLongitude: -73.9851,
		RadiusMeters:    100,
		HospitalID:      strPtr("hosp-1"),
		IsActive:        true,
	}
}

// ~105.6 м от центра midtownFence
var justOutside = models.PositionReading{Latitude: 40.7580, Longitude: -73.9855}

// ~33 м от центра midtownFence
var nearCenter = models.PositionReading{Latitude: 40.7589, Longitude: -73.9855}

func TestCheckCompliance_Inside(t *testing.T) {
	service, fencesMock, webhookMock := newTestComplianceService(t)
	ctx := context.Background()
	fence := midtownFence()

	fencesMock.EXPECT().ActiveFences(ctx, (*string)(nil)).Return([]*models.GeoFence{fence}, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := service.CheckCompliance(ctx, "rep-1", nearCenter, nil)

	require.NoError(t, err)
	assert.True(t, report.IsCompliant)
	assert.Equal(t, geo.ProximityInside, report.Proximity)
	assert.Equal(t, fixedNow, report.CheckedAt)
}

func TestCheckCompliance_ApproachingPublishesEvent(t *testing.T) {
	// Подготовка
	service, fencesMock, webhookMock := newTestComplianceService(t)
	ctx := context.Background()
	fence := midtownFence()
	hospital := strPtr("hosp-1")

	// Ожидания
	fencesMock.EXPECT().ActiveFences(ctx, hospital).Return([]*models.GeoFence{fence}, nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventProximityApproaching, event.Type)
			assert.Equal(t, "rep-1", event.RepID)
			assert.Equal(t, fence.ID, *event.FenceID)
			require.NotNil(t, event.DistanceMeters)
			assert.InDelta(t, 105.6, *event.DistanceMeters, 0.5)
			assert.Equal(t, "rep-1 is 106 m from Midtown General", event.Message)
			return nil
		}).Times(1)

	// Действие
	report, err := service.CheckCompliance(ctx, "rep-1", justOutside, hospital)

	// Проверки
	require.NoError(t, err)
	assert.False(t, report.IsCompliant)
	assert.Equal(t, geo.ProximityApproaching, report.Proximity)
	assert.Equal(t, 200.0, report.AlertRadiusMeters)
}

func TestCheckCompliance_PublishFailureDoesNotFailCheck(t *testing.T) {
	service, fencesMock, webhookMock := newTestComplianceService(t)
	ctx := context.Background()

	fencesMock.EXPECT().ActiveFences(ctx, gomock.Any()).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	report, err := service.CheckCompliance(ctx, "rep-1", justOutside, nil)
	require.NoError(t, err)
	assert.Equal(t, geo.ProximityApproaching, report.Proximity)
}

func TestCheckCompliance_FarAwayNoEvent(t *testing.T) {
	service, fencesMock, webhookMock := newTestComplianceService(t)
	ctx := context.Background()

	fencesMock.EXPECT().ActiveFences(ctx, gomock.Any()).Return([]*models.GeoFence{midtownFence()}, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := service.CheckCompliance(ctx, "rep-1", models.PositionReading{Latitude: 40.7505, Longitude: -73.9934}, nil)
	require.NoError(t, err)
	assert.Equal(t, geo.ProximityAway, report.Proximity)
}

func TestCheckCompliance_NoFences(t *testing.T) {
	service, fencesMock, webhookMock := newTestComplianceService(t)
	ctx := context.Background()

	fencesMock.EXPECT().ActiveFences(ctx, gomock.Any()).Return([]*models.GeoFence{}, nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := service.CheckCompliance(ctx, "rep-1", justOutside, nil)
	require.NoError(t, err)
	assert.False(t, report.IsCompliant)
	assert.Nil(t, report.NearestFence)
	assert.True(t, math.IsInf(report.DistanceMeters, 1))
	assert.Equal(t, geo.ProximityUnknown, report.Proximity)
}

func TestCheckCompliance_InvalidCoordinates(t *testing.T) {
	service, fencesMock, _ := newTestComplianceService(t)

	fencesMock.EXPECT().ActiveFences(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CheckCompliance(context.Background(), "rep-1", models.PositionReading{Latitude: 95, Longitude: 0}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = service.CheckCompliance(context.Background(), "rep-1", models.PositionReading{Latitude: math.NaN(), Longitude: 0}, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestCheckCompliance_FenceLoadError(t *testing.T) {
	service, fencesMock, _ := newTestComplianceService(t)
	ctx := context.Background()

	fencesMock.EXPECT().ActiveFences(ctx, gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	_, err := service.CheckCompliance(ctx, "rep-1", justOutside, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not load geofences")
}
