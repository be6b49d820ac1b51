package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *recordingTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t *recordingTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (t *recordingTx) QueryRow(context.Context, string, ...any) Row        { return nil }
func (t *recordingTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}
func (t *recordingTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type txDB struct {
	tx       *recordingTx
	beginErr error
}

func (d *txDB) Ping(context.Context) error                          { return nil }
func (d *txDB) Close() error                                        { return nil }
func (d *txDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (d *txDB) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (d *txDB) QueryRow(context.Context, string, ...any) Row        { return nil }
func (d *txDB) SQLDB() *sql.DB                                      { return nil }
func (d *txDB) Begin(context.Context) (Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := &txDB{tx: &recordingTx{}}

	err := WithTx(context.Background(), db, func(Tx) error { return nil })
	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := &txDB{tx: &recordingTx{}}
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTx_RollsBackOnCommitFailure(t *testing.T) {
	db := &txDB{tx: &recordingTx{commitErr: errors.New("serialization failure")}}

	err := WithTx(context.Background(), db, func(Tx) error { return nil })
	require.Error(t, err)
	assert.True(t, db.tx.rolledBack)
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := &txDB{tx: &recordingTx{}}

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(Tx) error { panic("bad") })
	})
	assert.True(t, db.tx.rolledBack)
}

func TestWithTx_NilDB(t *testing.T) {
	err := WithTx(context.Background(), nil, func(Tx) error { return nil })
	require.ErrorIs(t, err, ErrNilDB)
}
