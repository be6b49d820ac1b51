package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-pool/internal/database"
	"talent-pool/internal/database/seeder"
)

type mockSeedRunner struct {
	res seeder.Result
	err error
}

func (m mockSeedRunner) Run(context.Context, database.DB) (seeder.Result, error) {
	return m.res, m.err
}

func TestPopulateUsecase(t *testing.T) {
	uc := NewPopulateUsecase(nil, mockSeedRunner{res: seeder.Result{Applied: []string{"skills", "candidates"}}}, nil)
	res, err := uc.Populate(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Populated || res.Message != PopulateAppliedMessage {
		t.Fatalf("expected applied result, got %+v", res)
	}

	uc = NewPopulateUsecase(nil, mockSeedRunner{res: seeder.Result{Skipped: true}}, nil)
	res, err = uc.Populate(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Populated || res.Message != PopulateSkippedMessage {
		t.Fatalf("expected skipped result, got %+v", res)
	}

	uc = NewPopulateUsecase(nil, mockSeedRunner{err: errors.New("boom")}, nil)
	if _, err := uc.Populate(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
