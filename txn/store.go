package txn

import (
	"context"
	"fmt"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
)

// Statement labels used in logs and the transactions counter.
const (
	StatementStoreAttribute        = "store-attribute"
	StatementStoreError            = "store-error"
	StatementStoreHistoryString    = "store-history-string"
	StatementStoreHistoryEvent     = "store-history-event"
	StatementStoreParameterEvent   = "store-parameter-event"
	StatementStoreDataEvent        = "data-event"
	StatementStoreDataEventError   = "data-event-error"
	StatementStoreTTL              = "store-ttl"
	StatementFetchTraits           = "fetch-traits"
	StatementFetchLastHistoryEvent = "fetch-last-history-event"
)

// StoreAttributeTx adds an attribute to the configuration table.
type StoreAttributeTx struct {
	*Tx[Conn]
}

func NewStoreAttributeTx(conn Conn) *StoreAttributeTx {
	return &StoreAttributeTx{Tx: NewTx(conn)}
}

// Run stores attr with traits t and returns the new configuration id. ttl is
// the retention in minutes, zero meaning forever.
func (s *StoreAttributeTx) Run(ctx context.Context, attr Attribute, t traits.Traits, ttl int32, hide bool) (int64, error) {
	table, err := query.TableName(t)
	if err != nil {
		s.finish(StatementStoreAttribute, err)
		return 0, fmt.Errorf("store attribute %s: %w", AttrNameForStorage(attr), err)
	}

	args := []any{
		AttrNameForStorage(attr),
		table,
		attr.TangoHostWithDomain(),
		attr.Domain,
		attr.Family,
		attr.Member,
		attr.Name,
		ttl,
		hide,
		int32(t.Type()),
		int32(t.FormatType()),
		int32(t.WriteType()),
	}

	var id int64
	if err := s.queryRow(ctx, StatementStoreAttribute, query.StoreAttributeStatement(), args, &id); err != nil {
		return 0, fmt.Errorf("store attribute %s: %w", AttrNameForStorage(attr), err)
	}
	return id, nil
}

// StoreErrorTx adds an error description.
type StoreErrorTx struct {
	*Tx[Conn]
}

func NewStoreErrorTx(conn Conn) *StoreErrorTx {
	return &StoreErrorTx{Tx: NewTx(conn)}
}

// Run stores desc and returns its id.
func (s *StoreErrorTx) Run(ctx context.Context, desc string) (int64, error) {
	var id int64
	if err := s.queryRow(ctx, StatementStoreError, query.StoreErrorStatement(), []any{desc}, &id); err != nil {
		return 0, fmt.Errorf("store error description: %w", err)
	}
	return id, nil
}

// StoreHistoryStringTx adds a history event name, such as "start".
type StoreHistoryStringTx struct {
	*Tx[Conn]
}

func NewStoreHistoryStringTx(conn Conn) *StoreHistoryStringTx {
	return &StoreHistoryStringTx{Tx: NewTx(conn)}
}

func (s *StoreHistoryStringTx) Run(ctx context.Context, event string) (int64, error) {
	var id int64
	if err := s.queryRow(ctx, StatementStoreHistoryString, query.StoreHistoryStringStatement(), []any{event}, &id); err != nil {
		return 0, fmt.Errorf("store history event %q: %w", event, err)
	}
	return id, nil
}

// StoreHistoryEventTx records a history event for an attribute.
type StoreHistoryEventTx struct {
	*Tx[Conn]
}

func NewStoreHistoryEventTx(conn Conn) *StoreHistoryEventTx {
	return &StoreHistoryEventTx{Tx: NewTx(conn)}
}

func (s *StoreHistoryEventTx) Run(ctx context.Context, confID int64, event string) error {
	if err := s.exec(ctx, StatementStoreHistoryEvent, query.StoreHistoryEventStatement(), confID, event); err != nil {
		return fmt.Errorf("store history event %q for %d: %w", event, confID, err)
	}
	return nil
}

// StoreParameterEventTx records an attribute parameter snapshot.
type StoreParameterEventTx struct {
	*Tx[Conn]
}

func NewStoreParameterEventTx(conn Conn) *StoreParameterEventTx {
	return &StoreParameterEventTx{Tx: NewTx(conn)}
}

func (s *StoreParameterEventTx) Run(ctx context.Context, ev query.ParameterEvent) error {
	bound := query.BindParameterEvent(ev)
	if err := s.exec(ctx, StatementStoreParameterEvent, bound.SQL, bound.Args...); err != nil {
		return fmt.Errorf("store parameter event for %d: %w", ev.ConfID, err)
	}
	return nil
}

// StoreDataEventTx archives one sample.
type StoreDataEventTx struct {
	*Tx[Conn]
	builder *query.Builder
}

func NewStoreDataEventTx(conn Conn, b *query.Builder) *StoreDataEventTx {
	return &StoreDataEventTx{Tx: NewTx(conn), builder: b}
}

func (s *StoreDataEventTx) Run(ctx context.Context, t traits.Traits, ev query.DataEvent) error {
	bound, err := s.builder.BindDataEvent(t, ev)
	if err != nil {
		s.finish(StatementStoreDataEvent, err)
		return fmt.Errorf("store data event: %w", err)
	}

	if err := s.exec(ctx, StatementStoreDataEvent, bound.SQL, bound.Args...); err != nil {
		return fmt.Errorf("store data event for %d: %w", ev.ConfID, err)
	}
	return nil
}

// StoreDataEventErrorTx archives a failed read.
type StoreDataEventErrorTx struct {
	*Tx[Conn]
	builder *query.Builder
}

func NewStoreDataEventErrorTx(conn Conn, b *query.Builder) *StoreDataEventErrorTx {
	return &StoreDataEventErrorTx{Tx: NewTx(conn), builder: b}
}

func (s *StoreDataEventErrorTx) Run(ctx context.Context, t traits.Traits, ev query.DataEventError) error {
	bound, err := s.builder.BindDataEventError(t, ev)
	if err != nil {
		s.finish(StatementStoreDataEventError, err)
		return fmt.Errorf("store data event error: %w", err)
	}

	if err := s.exec(ctx, StatementStoreDataEventError, bound.SQL, bound.Args...); err != nil {
		return fmt.Errorf("store data event error for %d: %w", ev.ConfID, err)
	}
	return nil
}

// StoreTTLTx changes the retention of an attribute.
type StoreTTLTx struct {
	*Tx[Conn]
}

func NewStoreTTLTx(conn Conn) *StoreTTLTx {
	return &StoreTTLTx{Tx: NewTx(conn)}
}

// Run sets the retention of confID to ttl minutes.
func (s *StoreTTLTx) Run(ctx context.Context, confID int64, ttl int32) error {
	if err := s.exec(ctx, StatementStoreTTL, query.StoreTTLStatement(), ttl, confID); err != nil {
		return fmt.Errorf("store ttl for %d: %w", confID, err)
	}
	return nil
}
