// Package seed загружает начальный набор геозон больниц из YAML-файла.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File - корневая структура файла с геозонами
type File struct {
	Hospitals []Hospital `yaml:"hospitals"`
}

type Hospital struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Fences []Fence `yaml:"fences"`
}

type Fence struct {
	Name              string   `yaml:"name"`
	Latitude          float64  `yaml:"latitude"`
	Longitude         float64  `yaml:"longitude"`
	RadiusMeters      float64  `yaml:"radius_meters"`
	AlertRadiusMeters *float64 `yaml:"alert_radius_meters"`
}

// LoadFile читает и разбирает YAML-файл с геозонами
func LoadFile(path string) ([]*models.GeoFence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML и проверяет каждую зону. Ошибки всех записей
// возвращаются вместе, с указанием больницы и индекса зоны.
func Parse(data []byte) ([]*models.GeoFence, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}

	var (
		fences []*models.GeoFence
		errs   []error
	)
	for hi, hospital := range file.Hospitals {
		if hospital.ID == "" {
			errs = append(errs, fmt.Errorf("hospitals[%d]: id is required", hi))
			continue
		}
		for fi, entry := range hospital.Fences {
			hospitalID := hospital.ID
			fence := &models.GeoFence{
				Name:              entry.Name,
				CenterLatitude:    entry.Latitude,
				CenterLongitude:   entry.Longitude,
				RadiusMeters:      entry.RadiusMeters,
				HospitalID:        &hospitalID,
				AlertRadiusMeters: entry.AlertRadiusMeters,
				IsActive:          true,
			}
			if fence.Name == "" {
				fence.Name = hospital.Name
			}
			if err := service.ValidateFence(fence); err != nil {
				errs = append(errs, fmt.Errorf("hospitals[%d] (%s) fences[%d]: %w", hi, hospital.ID, fi, err))
				continue
			}
			fences = append(fences, fence)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return fences, nil
}

// Apply создаёт геозоны через сервис. Останавливается на первой ошибке.
func Apply(ctx context.Context, fenceService service.GeoFenceService, fences []*models.GeoFence, logger *logrus.Logger) (int, error) {
	log := logger.WithField("method", "seed.Apply")

	for i, fence := range fences {
		if err := fenceService.CreateFence(ctx, fence); err != nil {
			return i, fmt.Errorf("failed to create fence %q: %w", fence.Name, err)
		}
		log.WithFields(logrus.Fields{
			"fence_id":    fence.ID,
			"name":        fence.Name,
			"hospital_id": *fence.HospitalID,
		}).Info("Geofence seeded")
	}
	return len(fences), nil
}
