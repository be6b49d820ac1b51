package usecase

import (
	"context"

	"talent-pool/internal/database"
	"talent-pool/internal/database/seeder"

	"go.uber.org/zap"
)

const (
	PopulateSkippedMessage = "Database already contains data; skipping population."
	PopulateAppliedMessage = "Populated sample candidates and skills."
)

type SeedRunner interface {
	Run(ctx context.Context, db database.DB) (seeder.Result, error)
}

type PopulateResult struct {
	Populated bool
	Message   string
}

type PopulateUsecase interface {
	Populate(ctx context.Context) (PopulateResult, error)
}

type Populate struct {
	db     database.DB
	runner SeedRunner
	logger *zap.Logger
}

func NewPopulateUsecase(db database.DB, runner SeedRunner, logger *zap.Logger) *Populate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Populate{db: db, runner: runner, logger: logger}
}

func (u *Populate) Populate(ctx context.Context) (PopulateResult, error) {
	res, err := u.runner.Run(ctx, u.db)
	if err != nil {
		u.logger.Error("populate failed", zap.Error(err))
		return PopulateResult{}, ErrInternal
	}
	if res.Skipped {
		return PopulateResult{Populated: false, Message: PopulateSkippedMessage}, nil
	}
	return PopulateResult{Populated: true, Message: PopulateAppliedMessage}, nil
}
