package seeder

import (
	"context"
	"fmt"

	"talent-pool/internal/database"

	"go.uber.org/zap"
)

const seedLockKey int64 = 746295116

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run applies every seeder in a single transaction. Nothing is written when
// the database already holds candidates or skills.
func (r Runner) Run(ctx context.Context, db database.DB) (Result, error) {
	if db == nil {
		return Result{}, database.ErrNilDB
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
			return fmt.Errorf("acquire seed lock: %w", err)
		}

		populated, err := hasData(ctx, tx)
		if err != nil {
			return err
		}
		if populated {
			res.Skipped = true
			return nil
		}

		for _, s := range r.Seeders {
			if s == nil {
				continue
			}
			if err := s.Run(ctx, tx); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			res.Applied = append(res.Applied, s.Name())
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if res.Skipped {
		logger.Info("seed skipped, data present")
	} else {
		logger.Info("seed applied", zap.Strings("seeders", res.Applied))
	}
	return res, nil
}

func hasData(ctx context.Context, q database.Querier) (bool, error) {
	var exists bool
	row := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates) OR EXISTS(SELECT 1 FROM skills)`)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check existing data: %w", err)
	}
	return exists, nil
}
