package query

import (
	"fmt"

	"github.com/Konsultn-Engineering/hdbpp/cache"
	"github.com/Konsultn-Engineering/hdbpp/dialect"
	"github.com/Konsultn-Engineering/hdbpp/metrics"
	"github.com/Konsultn-Engineering/hdbpp/traits"
	"go.uber.org/zap"
)

// Statement name stubs. Names identify prepared statements on a connection.
const (
	StoreDataEvent      = "StoreDataEvent"
	StoreDataEventError = "StoreDataEventError"
)

// Cache families, also used as metric labels.
const (
	FamilyDataEventName      = "data_event_name"
	FamilyDataEvent          = "data_event"
	FamilyDataEventErrorName = "data_event_error_name"
	FamilyDataEventError     = "data_event_error"
	FamilyFetchValue         = "fetch_value"
	FamilyFetchAllValues     = "fetch_all_values"
)

const DefaultFetchCacheSize = 256

// Builder produces the SQL for every archive operation. Traits dependent text
// is generated once per traits and served from a cache afterwards; with
// precompute enabled (the default) every cache is filled by NewBuilder and
// lookups never build.
//
// A Builder is safe for concurrent use.
type Builder struct {
	dialect dialect.Postgres

	dataEventNames        *cache.TemplateCache[traits.Traits]
	dataEventQueries      *cache.TemplateCache[traits.Traits]
	dataEventErrorNames   *cache.TemplateCache[traits.Traits]
	dataEventErrorQueries *cache.TemplateCache[traits.Traits]

	fetch *cache.StatementCache
}

type options struct {
	precompute     bool
	fetchCacheSize int
}

type Option func(*options)

// WithPrecompute controls whether NewBuilder generates the statements for the
// whole traits space up front.
func WithPrecompute(enabled bool) Option {
	return func(o *options) { o.precompute = enabled }
}

// WithFetchCacheSize bounds the number of cached fetch statements.
func WithFetchCacheSize(n int) Option {
	return func(o *options) { o.fetchCacheSize = n }
}

func NewBuilder(opts ...Option) (*Builder, error) {
	o := options{precompute: true, fetchCacheSize: DefaultFetchCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	fetch, err := cache.NewStatementCache(o.fetchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("fetch statement cache: %w", err)
	}

	b := &Builder{
		dialect:               dialect.Postgres{},
		dataEventNames:        cache.NewTemplateCache[traits.Traits](),
		dataEventQueries:      cache.NewTemplateCache[traits.Traits](),
		dataEventErrorNames:   cache.NewTemplateCache[traits.Traits](),
		dataEventErrorQueries: cache.NewTemplateCache[traits.Traits](),
		fetch:                 fetch,
	}

	if o.precompute {
		if err := b.Warm(); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Warm generates every traits dependent statement for the closed traits space.
func (b *Builder) Warm() error {
	all := traits.All()

	fills := []struct {
		family string
		cache  *cache.TemplateCache[traits.Traits]
		build  func(traits.Traits) (string, error)
	}{
		{FamilyDataEventName, b.dataEventNames, dataEventNameBuilder(StoreDataEvent)},
		{FamilyDataEvent, b.dataEventQueries, b.buildDataEvent},
		{FamilyDataEventErrorName, b.dataEventErrorNames, dataEventNameBuilder(StoreDataEventError)},
		{FamilyDataEventError, b.dataEventErrorQueries, b.buildDataEventError},
	}

	for _, f := range fills {
		if err := f.cache.Fill(all, f.build); err != nil {
			return fmt.Errorf("warm %s: %w", f.family, err)
		}
	}

	zap.S().Debugf("Query builder warmed for %d traits: %s", len(all), b)
	return nil
}

// StoreDataEventName returns the statement name used for data events of t.
func (b *Builder) StoreDataEventName(t traits.Traits) (string, error) {
	return b.lookup(b.dataEventNames, FamilyDataEventName, t, dataEventNameBuilder(StoreDataEvent))
}

// StoreDataEventErrorName returns the statement name used for data event
// errors of t.
func (b *Builder) StoreDataEventErrorName(t traits.Traits) (string, error) {
	return b.lookup(b.dataEventErrorNames, FamilyDataEventErrorName, t, dataEventNameBuilder(StoreDataEventError))
}

// StoreDataEventStatement returns the insert for a data event of t. Parameters:
// $1 attribute id, $2 event time in epoch seconds, then the read value when t
// has read data, the write value when t has write data, and the quality.
func (b *Builder) StoreDataEventStatement(t traits.Traits) (string, error) {
	return b.lookup(b.dataEventQueries, FamilyDataEvent, t, b.buildDataEvent)
}

// StoreDataEventErrorStatement returns the insert for a failed read of t.
// Parameters: $1 attribute id, $2 event time in epoch seconds, $3 quality,
// $4 error description id.
func (b *Builder) StoreDataEventErrorStatement(t traits.Traits) (string, error) {
	return b.lookup(b.dataEventErrorQueries, FamilyDataEventError, t, b.buildDataEventError)
}

func (b *Builder) lookup(
	c *cache.TemplateCache[traits.Traits],
	family string,
	t traits.Traits,
	build func(traits.Traits) (string, error),
) (string, error) {
	s, hit, err := c.GetOrBuild(t, build)
	if err != nil {
		return "", fmt.Errorf("%s: %w", family, err)
	}

	metrics.ObserveLookup(family, hit)
	if !hit {
		zap.S().Debugf("Built new %s statement and cached it against traits: %s", family, t)
		zap.S().Debugf("New %s statement is: %s", family, s)
	}

	return s, nil
}

// FetchValueStatement selects column from table for rows where reference
// equals $1. The arguments are identifiers and are inserted verbatim.
func (b *Builder) FetchValueStatement(column, table, reference string) string {
	key := cache.Fingerprint(cache.FamilyFetchValue, column, table, reference)
	s, hit := b.fetch.GetOrBuild(key, func() string {
		return "SELECT " + column + " " + "FROM " + table + " WHERE " + reference + "=$1"
	})
	metrics.ObserveLookup(FamilyFetchValue, hit)
	return s
}

// FetchAllValuesStatement selects column together with reference for every
// row of table.
func (b *Builder) FetchAllValuesStatement(column, table, reference string) string {
	key := cache.Fingerprint(cache.FamilyFetchAllValues, column, table, reference)
	s, hit := b.fetch.GetOrBuild(key, func() string {
		return "SELECT " + column + ", " + reference + " " + "FROM " + table
	})
	metrics.ObserveLookup(FamilyFetchAllValues, hit)
	return s
}

// Stats reports cache population. It is diagnostic only.
type Stats struct {
	DataEventNames        int
	DataEventQueries      int
	DataEventErrorNames   int
	DataEventErrorQueries int
	FetchStatements       int
}

func (b *Builder) Stats() Stats {
	return Stats{
		DataEventNames:        b.dataEventNames.Len(),
		DataEventQueries:      b.dataEventQueries.Len(),
		DataEventErrorNames:   b.dataEventErrorNames.Len(),
		DataEventErrorQueries: b.dataEventErrorQueries.Len(),
		FetchStatements:       b.fetch.Len(),
	}
}

func (b *Builder) String() string {
	s := b.Stats()
	return fmt.Sprintf("QueryBuilder(cached data_event: name/query %d/%d, data_event_error: name/query %d/%d)",
		s.DataEventNames, s.DataEventQueries, s.DataEventErrorNames, s.DataEventErrorQueries)
}
