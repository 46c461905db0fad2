package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/helper"
	"hotelier/infras/otel"
	"hotelier/shared/cache"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

// Migrator runs the schema migrations. It exists so the reset flow can be
// exercised without a live database.
type Migrator interface {
	Drop(cfg *config.Config) error
	Up(cfg *config.Config) error
}

type migratorImpl struct{}

func (migratorImpl) Drop(cfg *config.Config) error { return helper.Drop(cfg) }
func (migratorImpl) Up(cfg *config.Config) error   { return helper.Up(cfg) }

func NewMigrator() Migrator {
	return migratorImpl{}
}

type Maintenance interface {
	ResetDatabase(ctx context.Context) error
}

type serviceImpl struct {
	migrator Migrator
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(migrator Migrator, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Maintenance {
	return &serviceImpl{
		migrator: migrator,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// ResetDatabase rolls every table back and recreates the schema from the
// migration files, discarding all records. Cached reads are flushed so stale
// listings do not survive the wipe.
func (s *serviceImpl) ResetDatabase(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.ResetDatabase")
	defer scope.End()
	defer scope.TraceIfError(err)

	log.Warn().Msg("Resetting database: dropping and recreating all tables")

	if err = s.migrator.Drop(s.cfg); err != nil {
		log.Error().Err(err).Msg("failed to drop tables")

		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err = s.migrator.Up(s.cfg); err != nil {
		log.Error().Err(err).Msg("failed to recreate tables")

		return fmt.Errorf("failed to recreate tables: %w", err)
	}

	if err := s.cache.Clear(ctx, constant.Asterix); err != nil {
		log.Error().Err(err).Msg("failed to flush cache after database reset")
	}

	log.Warn().Msg("Database reset completed")

	return nil
}
