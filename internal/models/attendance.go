package models

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceApproved        AttendanceStatus = "approved"
	AttendancePendingApproval AttendanceStatus = "pending_approval"
	AttendanceRejected        AttendanceStatus = "rejected"
)

// Причины, по которым отметка отправлена на ручное подтверждение
const (
	FlagOutsideGeoFence      = "outside_geofence"
	FlagNoGeoFenceConfigured = "no_geofence_configured"
	FlagUnverifiableDistance = "unverifiable_distance"
	FlagClockOutOutsideFence = "clock_out_outside_geofence"
	FlagClockOutUnverifiable = "clock_out_unverifiable_distance"
)

// AttendanceRecord - отметка прихода/ухода представителя
type AttendanceRecord struct {
	ID         uuid.UUID  `json:"id"`
	RepID      string     `json:"rep_id"`
	HospitalID *string    `json:"hospital_id,omitempty"`
	FenceID    *uuid.UUID `json:"fence_id,omitempty"`

	ClockInAt             time.Time `json:"clock_in_at"`
	ClockInLatitude       float64   `json:"clock_in_latitude"`
	ClockInLongitude      float64   `json:"clock_in_longitude"`
	ClockInAccuracy       *float64  `json:"clock_in_accuracy,omitempty"`
	ClockInDistanceMeters *float64  `json:"clock_in_distance_meters,omitempty"`
	WithinGeoFence        bool      `json:"within_geofence"`

	ClockOutAt             *time.Time `json:"clock_out_at,omitempty"`
	ClockOutLatitude       *float64   `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude      *float64   `json:"clock_out_longitude,omitempty"`
	ClockOutDistanceMeters *float64   `json:"clock_out_distance_meters,omitempty"`
	ClockOutWithinGeoFence *bool      `json:"clock_out_within_geofence,omitempty"`

	Status     AttendanceStatus `json:"status"`
	FlagReason string           `json:"flag_reason,omitempty"`
	ReviewNote string           `json:"review_note,omitempty"`
	ReviewedBy *string          `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time       `json:"reviewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOpen - представитель отметил приход, но ещё не ушёл
func (r *AttendanceRecord) IsOpen() bool {
	return r.ClockOutAt == nil
}
