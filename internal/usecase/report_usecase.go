package usecase

import (
	"context"

	"talent-pool/internal/domain/report"
	"talent-pool/internal/infrastructure/stats"
	"talent-pool/internal/repository"

	"go.uber.org/zap"
)

type ReportUsecase interface {
	TopCandidateByPopularity(ctx context.Context) (report.TopCandidate, bool, error)
}

type Report struct {
	repo   repository.CandidateRepository
	stats  stats.Fetcher
	logger *zap.Logger
}

func NewReportUsecase(repo repository.CandidateRepository, fetcher stats.Fetcher, logger *zap.Logger) *Report {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Report{repo: repo, stats: fetcher, logger: logger}
}

// TopCandidateByPopularity reports false when no candidate has a single
// popularity score after enrichment.
func (u *Report) TopCandidateByPopularity(ctx context.Context) (report.TopCandidate, bool, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("load candidates for report failed", zap.Error(err))
		return report.TopCandidate{}, false, ErrInternal
	}
	enrichCandidates(ctx, u.stats, items)

	top, ok := report.TopByPopularity(items)
	return top, ok, nil
}
