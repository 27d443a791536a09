package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service"
)

const uniqueViolation = "23505"

const attendanceColumns = `
	id,
	rep_id,
	hospital_id,
	fence_id,
	clock_in_at,
	clock_in_latitude,
	clock_in_longitude,
	clock_in_accuracy,
	clock_in_distance_meters,
	within_geofence,
	clock_out_at,
	clock_out_latitude,
	clock_out_longitude,
	clock_out_distance_meters,
	clock_out_within_geofence,
	status,
	flag_reason,
	review_note,
	reviewed_by,
	reviewed_at,
	created_at,
	updated_at`

type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (*models.AttendanceRecord, error) {
	rec := &models.AttendanceRecord{}
	err := row.Scan(
		&rec.ID,
		&rec.RepID,
		&rec.HospitalID,
		&rec.FenceID,
		&rec.ClockInAt,
		&rec.ClockInLatitude,
		&rec.ClockInLongitude,
		&rec.ClockInAccuracy,
		&rec.ClockInDistanceMeters,
		&rec.WithinGeoFence,
		&rec.ClockOutAt,
		&rec.ClockOutLatitude,
		&rec.ClockOutLongitude,
		&rec.ClockOutDistanceMeters,
		&rec.ClockOutWithinGeoFence,
		&rec.Status,
		&rec.FlagReason,
		&rec.ReviewNote,
		&rec.ReviewedBy,
		&rec.ReviewedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Create сохраняет отметку прихода
func (r *AttendanceRepository) Create(ctx context.Context, rec *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (
			rep_id, hospital_id, fence_id,
			clock_in_at, clock_in_latitude, clock_in_longitude, clock_in_accuracy, clock_in_distance_meters,
			within_geofence, status, flag_reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.RepID,
		rec.HospitalID,
		rec.FenceID,
		rec.ClockInAt,
		rec.ClockInLatitude,
		rec.ClockInLongitude,
		rec.ClockInAccuracy,
		rec.ClockInDistanceMeters,
		rec.WithinGeoFence,
		rec.Status,
		rec.FlagReason,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		// уникальный индекс idx_attendance_open_rep: у представителя уже есть открытая отметка
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return service.ErrAlreadyClockedIn
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

// GetByID возвращает отметку по UUID
func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1;`

	rec, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("attendance record %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get attendance record by id: %w", err)
	}
	return rec, nil
}

// GetOpenByRep возвращает незакрытую отметку представителя
func (r *AttendanceRepository) GetOpenByRep(ctx context.Context, repID string) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE rep_id = $1 AND clock_out_at IS NULL;`

	rec, err := scanAttendance(r.db.QueryRow(ctx, query, repID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("open attendance for rep %s: %w", repID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}
	return rec, nil
}

// UpdateClockOut сохраняет отметку ухода и возможный перевод на ручное подтверждение
func (r *AttendanceRepository) UpdateClockOut(ctx context.Context, rec *models.AttendanceRecord) error {
	query := `
		UPDATE attendance_records SET
			clock_out_at = $1,
			clock_out_latitude = $2,
			clock_out_longitude = $3,
			clock_out_distance_meters = $4,
			clock_out_within_geofence = $5,
			status = $6,
			flag_reason = $7,
			updated_at = NOW()
		WHERE id = $8 AND clock_out_at IS NULL
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.ClockOutAt,
		rec.ClockOutLatitude,
		rec.ClockOutLongitude,
		rec.ClockOutDistanceMeters,
		rec.ClockOutWithinGeoFence,
		rec.Status,
		rec.FlagReason,
		rec.ID,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrNotClockedIn
		}
		return fmt.Errorf("failed to update clock-out: %w", err)
	}
	return nil
}

// UpdateReview сохраняет решение администратора; запись должна ожидать подтверждения
func (r *AttendanceRepository) UpdateReview(ctx context.Context, rec *models.AttendanceRecord) error {
	query := `
		UPDATE attendance_records SET
			status = $1,
			review_note = $2,
			reviewed_by = $3,
			reviewed_at = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.Status,
		rec.ReviewNote,
		rec.ReviewedBy,
		rec.ReviewedAt,
		rec.ID,
		models.AttendancePendingApproval,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

// ListByStatus возвращает отметки с указанным статусом, новые первыми
func (r *AttendanceRepository) ListByStatus(ctx context.Context, status models.AttendanceStatus, page, pageSize int) ([]*models.AttendanceRecord, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE status = $1 ORDER BY clock_in_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.db.Query(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.AttendanceRecord, 0)
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error attendance iteration: %w", err)
	}
	return records, nil
}
