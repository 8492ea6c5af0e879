package query

import (
	"time"

	"github.com/Konsultn-Engineering/hdbpp/traits"
)

// Bound pairs a statement with the values for its placeholders, in order.
// Caller values only ever travel in Args.
type Bound struct {
	SQL  string
	Args []any
}

// EpochSeconds converts t to the fractional epoch seconds expected by the
// TO_TIMESTAMP placeholders, at microsecond precision.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

// ParameterEvent is a snapshot of an attribute's archiving configuration.
type ParameterEvent struct {
	ConfID           int64
	EventTime        time.Time
	Label            string
	EnumLabels       []string
	Unit             string
	StandardUnit     string
	DisplayUnit      string
	Format           string
	ArchiveRelChange string
	ArchiveAbsChange string
	ArchivePeriod    string
	Description      string
}

// DataEvent is one archived sample. ValueR and ValueW are ignored when the
// attribute's traits carry no read or write data respectively; nil stores NULL.
type DataEvent struct {
	ConfID    int64
	EventTime time.Time
	Quality   int32
	ValueR    any
	ValueW    any
}

// DataEventError is a sample recording a failed read.
type DataEventError struct {
	ConfID      int64
	EventTime   time.Time
	Quality     int32
	ErrorDescID int64
}

// BindParameterEvent binds ev to StoreParameterEventStatement.
func BindParameterEvent(ev ParameterEvent) Bound {
	labels := ev.EnumLabels
	if labels == nil {
		labels = []string{}
	}

	return Bound{
		SQL: storeParameterEventStatement,
		Args: []any{
			ev.ConfID,
			EpochSeconds(ev.EventTime),
			ev.Label,
			labels,
			ev.Unit,
			ev.StandardUnit,
			ev.DisplayUnit,
			ev.Format,
			ev.ArchiveRelChange,
			ev.ArchiveAbsChange,
			ev.ArchivePeriod,
			ev.Description,
		},
	}
}

// BindDataEvent binds ev to the data event statement of t.
func (b *Builder) BindDataEvent(t traits.Traits, ev DataEvent) (Bound, error) {
	stmt, err := b.StoreDataEventStatement(t)
	if err != nil {
		return Bound{}, err
	}

	args := make([]any, 0, 5)
	args = append(args, ev.ConfID, EpochSeconds(ev.EventTime))
	if t.HasReadData() {
		args = append(args, ev.ValueR)
	}
	if t.HasWriteData() {
		args = append(args, ev.ValueW)
	}
	args = append(args, ev.Quality)

	return Bound{SQL: stmt, Args: args}, nil
}

// BindDataEventError binds ev to the data event error statement of t.
func (b *Builder) BindDataEventError(t traits.Traits, ev DataEventError) (Bound, error) {
	stmt, err := b.StoreDataEventErrorStatement(t)
	if err != nil {
		return Bound{}, err
	}

	return Bound{
		SQL:  stmt,
		Args: []any{ev.ConfID, EpochSeconds(ev.EventTime), ev.Quality, ev.ErrorDescID},
	}, nil
}
