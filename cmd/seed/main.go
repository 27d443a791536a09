package main

import (
	"context"
	"flag"
	"time"

	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/repository"
	"github.com/medfieldpro/geofence/internal/seed"
	"github.com/medfieldpro/geofence/internal/service"
	"github.com/medfieldpro/geofence/pkg/logger"
	"github.com/medfieldpro/geofence/pkg/postgres"
	redisclient "github.com/medfieldpro/geofence/pkg/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "fences.yaml", "path to the YAML file with hospital geofences")
	dryRun := flag.Bool("dry-run", false, "validate the file without writing to the database")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	fences, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("Invalid seed file %s: %v", *file, err)
	}
	log.WithField("count", len(fences)).Info("Seed file validated")
	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	// Redis нужен для сброса кэша активных зон после записи
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	fenceRepo := repository.NewGeoFenceRepository(dbpool, redisClient, cfg.FenceCacheTTL)
	fenceService := service.NewGeoFenceService(fenceRepo, log)

	created, err := seed.Apply(ctx, fenceService, fences, log)
	if err != nil {
		log.Fatalf("Seeding stopped after %d fences: %v", created, err)
	}
	log.WithField("count", created).Info("Seeding finished")
}
