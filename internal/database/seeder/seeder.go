package seeder

import (
	"context"

	"talent-pool/internal/database"
)

// Seeder writes one slice of the sample data set inside the runner's transaction.
type Seeder interface {
	Name() string
	Run(ctx context.Context, tx database.Tx) error
}

type Result struct {
	Skipped bool
	Applied []string
}
