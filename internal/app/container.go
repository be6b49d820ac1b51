package app

import (
	"context"
	"fmt"
	"time"

	"talent-pool/internal/config"
	"talent-pool/internal/database"
	"talent-pool/internal/database/migration"
	dbpostgres "talent-pool/internal/database/postgres"
	"talent-pool/internal/database/seeder"
	"talent-pool/internal/infrastructure/stats"
	"talent-pool/internal/repository"
	"talent-pool/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Stats  *stats.Client

	Candidates repository.CandidateRepository
	Skills     repository.SkillRepository

	CandidateUC usecase.CandidateUsecase
	SkillUC     usecase.SkillUsecase
	ReportUC    usecase.ReportUsecase
	PopulateUC  usecase.PopulateUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return newContainer(cfg, logger, db), nil
}

func newContainer(cfg config.Config, logger *zap.Logger, db database.DB) *Container {
	statsClient := stats.NewClient(cfg.Stats, logger)
	candidates := repository.NewPostgresCandidateRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	seeds := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger.Named("seed")}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Stats:       statsClient,
		Candidates:  candidates,
		Skills:      skills,
		CandidateUC: usecase.NewCandidateUsecase(candidates, statsClient, logger),
		SkillUC:     usecase.NewSkillUsecase(skills, logger),
		ReportUC:    usecase.NewReportUsecase(candidates, statsClient, logger),
		PopulateUC:  usecase.NewPopulateUsecase(db, seeds, logger),
	}
}

func (c *Container) Migrate(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return database.ErrNilDB
	}
	r := migration.Runner{Dir: c.Config.Migration.Dir, Logger: c.Logger.Named("migration")}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
