// Package txn runs single archive statements against a caller supplied
// connection and records whether they succeeded.
//
// A Tx never opens, commits or rolls back anything. The connection, and any
// database transaction it represents, belongs to the caller.
package txn

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/Konsultn-Engineering/hdbpp/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Conn is what a transaction needs from the database. pgx.Tx, *pgx.Conn and
// *pgxpool.Pool all satisfy it.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tx is one unit of work over a borrowed connection. Result starts false and
// is only set true by a successful statement.
type Tx[C Conn] struct {
	conn   C
	result bool
	id     ulid.ULID
}

func NewTx[C Conn](conn C) *Tx[C] {
	return &Tx[C]{conn: conn, id: ids.next()}
}

func (t *Tx[C]) Result() bool { return t.result }

func (t *Tx[C]) Connection() C { return t.conn }

func (t *Tx[C]) SetResult(ok bool) { t.result = ok }

// ID identifies the unit of work in logs.
func (t *Tx[C]) ID() ulid.ULID { return t.id }

func (t *Tx[C]) String() string {
	return fmt.Sprintf("Tx(id: %s, result: %t)", t.id, t.result)
}

func (t *Tx[C]) exec(ctx context.Context, statement, sql string, args ...any) error {
	_, err := t.conn.Exec(ctx, sql, args...)
	t.finish(statement, err)
	return err
}

func (t *Tx[C]) queryRow(ctx context.Context, statement, sql string, args []any, dest ...any) error {
	err := t.conn.QueryRow(ctx, sql, args...).Scan(dest...)
	t.finish(statement, err)
	return err
}

func (t *Tx[C]) finish(statement string, err error) {
	t.SetResult(err == nil)
	metrics.ObserveTransaction(statement, err == nil)
	if err != nil {
		zap.S().Errorf("Transaction %s failed running %s: %v", t.id, statement, err)
		return
	}
	zap.S().Debugf("Transaction %s ran %s", t.id, statement)
}

// ulid monotonic entropy is not safe for concurrent use
type idSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var ids = &idSource{entropy: ulid.Monotonic(rand.Reader, 0)}

func (s *idSource) next() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		// entropy exhausted within one millisecond, fall back to a fresh reader
		return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	}
	return id
}
