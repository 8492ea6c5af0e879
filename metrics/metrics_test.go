package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test_family"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test_family"))

	ObserveLookup("test_family", true)
	ObserveLookup("test_family", true)
	ObserveLookup("test_family", false)

	assert.Equal(t, hits+2, testutil.ToFloat64(CacheHits.WithLabelValues("test_family")))
	assert.Equal(t, misses+1, testutil.ToFloat64(CacheMisses.WithLabelValues("test_family")))
}

func TestObserveTransaction(t *testing.T) {
	ok := testutil.ToFloat64(Transactions.WithLabelValues("test_stmt", "success"))
	failed := testutil.ToFloat64(Transactions.WithLabelValues("test_stmt", "failure"))

	ObserveTransaction("test_stmt", true)
	ObserveTransaction("test_stmt", false)
	ObserveTransaction("test_stmt", false)

	assert.Equal(t, ok+1, testutil.ToFloat64(Transactions.WithLabelValues("test_stmt", "success")))
	assert.Equal(t, failed+2, testutil.ToFloat64(Transactions.WithLabelValues("test_stmt", "failure")))
}
