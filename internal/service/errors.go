package service

import "errors"

var (
	// ErrInvalidCoordinates - координаты вне диапазона или не конечны
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrInvalidFence - ошибка конфигурации геозоны
	ErrInvalidFence     = errors.New("invalid geofence configuration")
	ErrAlreadyClockedIn = errors.New("rep is already clocked in")
	ErrNotClockedIn     = errors.New("rep is not clocked in")
	// ErrAlreadyReviewed - отметка не ожидает ручного подтверждения
	ErrAlreadyReviewed = errors.New("attendance record is not pending approval")
)
