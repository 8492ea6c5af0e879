package txn

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Konsultn-Engineering/hdbpp/metrics"
	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConn = errors.New("connection reset")

var testAttr = Attribute{Host: "foo.example.org", Domain: "domain", Family: "family", Member: "member", Name: "attr"}

const testAttrName = "tango://foo.example.org/domain/family/member/attr"

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func newBuilder(t *testing.T) *query.Builder {
	t.Helper()
	b, err := query.NewBuilder()
	require.NoError(t, err)
	return b
}

func outcomes(statement string) (ok, failed float64) {
	return testutil.ToFloat64(metrics.Transactions.WithLabelValues(statement, "success")),
		testutil.ToFloat64(metrics.Transactions.WithLabelValues(statement, "failure"))
}

func TestTx(t *testing.T) {
	mock := newMock(t)
	tx := NewTx(mock)

	assert.False(t, tx.Result())
	assert.Equal(t, mock, tx.Connection())
	assert.Equal(t, fmt.Sprintf("Tx(id: %s, result: false)", tx.ID()), tx.String())

	tx.SetResult(true)
	assert.True(t, tx.Result())
	assert.Equal(t, fmt.Sprintf("Tx(id: %s, result: true)", tx.ID()), tx.String())

	assert.NotEqual(t, tx.ID(), NewTx(mock).ID())
}

func TestStoreAttributeTx(t *testing.T) {
	ctx := context.Background()
	tr := traits.MustNew(traits.ReadWrite, traits.Spectrum, traits.DevDouble)
	args := []any{
		testAttrName, "att_array_devdouble", "foo.example.org",
		"domain", "family", "member", "attr",
		int32(0), false,
		int32(5), int32(1), int32(3),
	}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(query.StoreAttributeStatement()).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"att_conf_id"}).AddRow(int64(42)))

		tx := NewStoreAttributeTx(mock)
		id, err := tx.Run(ctx, testAttr, tr, 0, false)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.True(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(query.StoreAttributeStatement()).
			WithArgs(args...).
			WillReturnError(errConn)

		tx := NewStoreAttributeTx(mock)
		_, err := tx.Run(ctx, testAttr, tr, 0, false)
		assert.ErrorIs(t, err, errConn)
		assert.False(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unsupported traits never reach the database", func(t *testing.T) {
		mock := newMock(t)

		tx := NewStoreAttributeTx(mock)
		_, err := tx.Run(ctx, testAttr, traits.Traits{}, 0, false)
		assert.ErrorIs(t, err, traits.ErrUnsupported)
		assert.False(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreErrorTx(t *testing.T) {
	ctx := context.Background()

	mock := newMock(t)
	mock.ExpectQuery(query.StoreErrorStatement()).
		WithArgs("device timeout").
		WillReturnRows(pgxmock.NewRows([]string{"att_error_desc_id"}).AddRow(int64(9)))

	tx := NewStoreErrorTx(mock)
	id, err := tx.Run(ctx, "device timeout")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.True(t, tx.Result())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreHistoryTxs(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	mock.ExpectQuery(query.StoreHistoryStringStatement()).
		WithArgs("start").
		WillReturnRows(pgxmock.NewRows([]string{"att_history_event_id"}).AddRow(int64(1)))
	mock.ExpectExec(query.StoreHistoryEventStatement()).
		WithArgs(int64(42), "start").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(query.StoreHistoryEventStatement()).
		WithArgs(int64(42), "stop").
		WillReturnError(errConn)

	str := NewStoreHistoryStringTx(mock)
	id, err := str.Run(ctx, "start")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.True(t, str.Result())

	ev := NewStoreHistoryEventTx(mock)
	require.NoError(t, ev.Run(ctx, 42, "start"))
	assert.True(t, ev.Result())

	failed := NewStoreHistoryEventTx(mock)
	assert.ErrorIs(t, failed.Run(ctx, 42, "stop"), errConn)
	assert.False(t, failed.Result())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreParameterEventTx(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	ev := query.ParameterEvent{
		ConfID:     42,
		EventTime:  time.Unix(1700000000, 0),
		Label:      "voltage",
		EnumLabels: []string{"ON", "OFF"},
		Unit:       "V",
	}
	mock.ExpectExec(query.StoreParameterEventStatement()).
		WithArgs(int64(42), 1700000000.0, "voltage", []string{"ON", "OFF"}, "V", "", "", "", "", "", "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx := NewStoreParameterEventTx(mock)
	require.NoError(t, tx.Run(ctx, ev))
	assert.True(t, tx.Result())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreDataEventTx(t *testing.T) {
	ctx := context.Background()
	b := newBuilder(t)
	tr := traits.MustNew(traits.ReadWrite, traits.Spectrum, traits.DevDouble)
	ev := query.DataEvent{
		ConfID:    42,
		EventTime: time.Unix(1700000000, 500000000),
		Quality:   0,
		ValueR:    []float64{1, 2},
		ValueW:    []float64{3},
	}
	stmt := "INSERT INTO att_array_devdouble (att_conf_id,data_time,value_r,value_w,quality) VALUES ($1,TO_TIMESTAMP($2),$3::float8[],$4::float8[],$5)"

	t.Run("success", func(t *testing.T) {
		ok, _ := outcomes(StatementStoreDataEvent)

		mock := newMock(t)
		mock.ExpectExec(stmt).
			WithArgs(int64(42), 1700000000.5, []float64{1, 2}, []float64{3}, int32(0)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		tx := NewStoreDataEventTx(mock, b)
		require.NoError(t, tx.Run(ctx, tr, ev))
		assert.True(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())

		after, _ := outcomes(StatementStoreDataEvent)
		assert.Equal(t, ok+1, after)
	})

	t.Run("failure", func(t *testing.T) {
		_, failed := outcomes(StatementStoreDataEvent)

		mock := newMock(t)
		mock.ExpectExec(stmt).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errConn)

		tx := NewStoreDataEventTx(mock, b)
		err := tx.Run(ctx, tr, ev)
		assert.ErrorIs(t, err, errConn)
		assert.False(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())

		_, after := outcomes(StatementStoreDataEvent)
		assert.Equal(t, failed+1, after)
	})

	t.Run("unsupported traits", func(t *testing.T) {
		mock := newMock(t)

		tx := NewStoreDataEventTx(mock, b)
		err := tx.Run(ctx, traits.Traits{}, ev)
		assert.ErrorIs(t, err, traits.ErrUnsupported)
		assert.False(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreDataEventErrorTx(t *testing.T) {
	ctx := context.Background()
	b := newBuilder(t)
	tr := traits.MustNew(traits.Read, traits.Scalar, traits.DevLong)

	mock := newMock(t)
	mock.ExpectExec("INSERT INTO att_scalar_devlong (att_conf_id,data_time,quality,att_error_desc_id) VALUES ($1,TO_TIMESTAMP($2),$3,$4)").
		WithArgs(int64(42), 1700000000.0, int32(1), int64(9)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx := NewStoreDataEventErrorTx(mock, b)
	err := tx.Run(ctx, tr, query.DataEventError{ConfID: 42, EventTime: time.Unix(1700000000, 0), Quality: 1, ErrorDescID: 9})
	require.NoError(t, err)
	assert.True(t, tx.Result())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreTTLTx(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	mock.ExpectExec(query.StoreTTLStatement()).
		WithArgs(int32(1440), int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx := NewStoreTTLTx(mock)
	require.NoError(t, tx.Run(ctx, 42, 1440))
	assert.True(t, tx.Result())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchTraitsTx(t *testing.T) {
	ctx := context.Background()
	columns := []string{"type_num", "format_num", "write_num"}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(query.FetchAttributeTraitsStatement()).
			WithArgs(testAttrName).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int32(5), int32(1), int32(3)))

		tx := NewFetchTraitsTx(mock)
		got, err := tx.Run(ctx, testAttr)
		require.NoError(t, err)
		assert.Equal(t, traits.MustNew(traits.ReadWrite, traits.Spectrum, traits.DevDouble), got)
		assert.True(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown numbers", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(query.FetchAttributeTraitsStatement()).
			WithArgs(testAttrName).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int32(99), int32(1), int32(3)))

		tx := NewFetchTraitsTx(mock)
		_, err := tx.Run(ctx, testAttr)
		assert.ErrorIs(t, err, traits.ErrUnsupported)
		assert.False(t, tx.Result())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(query.FetchAttributeTraitsStatement()).
			WithArgs(testAttrName).
			WillReturnError(errConn)

		tx := NewFetchTraitsTx(mock)
		_, err := tx.Run(ctx, testAttr)
		assert.ErrorIs(t, err, errConn)
		assert.False(t, tx.Result())
	})
}

func TestFetchLastHistoryEventTx(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	mock.ExpectQuery(query.FetchLastHistoryEventStatement()).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"event"}).AddRow("pause"))

	tx := NewFetchLastHistoryEventTx(mock)
	event, err := tx.Run(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "pause", event)
	assert.True(t, tx.Result())
	assert.NoError(t, mock.ExpectationsWereMet())
}
