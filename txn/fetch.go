package txn

import (
	"context"
	"fmt"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
)

// FetchTraitsTx reads back the traits an attribute was stored with.
type FetchTraitsTx struct {
	*Tx[Conn]
}

func NewFetchTraitsTx(conn Conn) *FetchTraitsTx {
	return &FetchTraitsTx{Tx: NewTx(conn)}
}

func (f *FetchTraitsTx) Run(ctx context.Context, attr AttributeName) (traits.Traits, error) {
	name := AttrNameForStorage(attr)

	var typeNum, formatNum, writeNum int32
	err := f.Connection().QueryRow(ctx, query.FetchAttributeTraitsStatement(), name).
		Scan(&typeNum, &formatNum, &writeNum)

	// a row describing traits this archive cannot store is a failure too
	var t traits.Traits
	if err == nil {
		t, err = traits.FromNumbers(typeNum, formatNum, writeNum)
	}

	f.finish(StatementFetchTraits, err)
	if err != nil {
		return traits.Traits{}, fmt.Errorf("fetch traits of %s: %w", name, err)
	}
	return t, nil
}

// FetchLastHistoryEventTx reads the most recent history event of an attribute.
type FetchLastHistoryEventTx struct {
	*Tx[Conn]
}

func NewFetchLastHistoryEventTx(conn Conn) *FetchLastHistoryEventTx {
	return &FetchLastHistoryEventTx{Tx: NewTx(conn)}
}

func (f *FetchLastHistoryEventTx) Run(ctx context.Context, confID int64) (string, error) {
	var event string
	err := f.queryRow(ctx, StatementFetchLastHistoryEvent, query.FetchLastHistoryEventStatement(), []any{confID}, &event)
	if err != nil {
		return "", fmt.Errorf("fetch last history event of %d: %w", confID, err)
	}
	return event, nil
}
