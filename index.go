package mediarss

import (
	"fmt"
	"io"
	"sync"

	"github.com/VictoriaMetrics/metrics"
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap"
)

// Index is a set of records keyed by value: two records that are record.Equal are the same entry.
// Records keep the order in which they were first added.
// An Index is safe for concurrent use.
type Index[R record.Record] struct {
	name    string
	logger  *zap.Logger
	lock    sync.RWMutex
	buckets map[uint64][]R
	items   []R

	metrics    *metrics.Set
	added      *metrics.Counter
	duplicates *metrics.Counter
	removed    *metrics.Counter
}

// NewIndex creates an empty Index. The name identifies the index in logs and metrics.
// opts can be the zero value of Options.
func NewIndex[R record.Record](name string, opts Options) (*Index[R], error) {
	// Precondition checks
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: an index needs a name", ErrInvalidOptions)
	case opts.Logger != nil && (opts.LoggingLevel != "" || opts.LogEncoding != ""):
		return nil, fmt.Errorf("%w: setting a logging level or encoding doesn't make sense when you already set a custom logger", ErrInvalidOptions)
	}

	// Set default values
	if opts.LoggingLevel == "" {
		opts.LoggingLevel = DefaultOptions.LoggingLevel
	}
	if opts.LogEncoding == "" {
		opts.LogEncoding = DefaultOptions.LogEncoding
	}

	// Configure logger if no custom one is set
	if opts.Logger == nil {
		var err error
		if opts.Logger, err = NewLogger(opts.LoggingLevel, opts.LogEncoding); err != nil {
			return nil, fmt.Errorf("couldn't create new logger: %w", err)
		}
	}

	ix := &Index[R]{
		name:    name,
		logger:  opts.Logger.With(zap.String("index", name)),
		buckets: make(map[uint64][]R),
	}
	if opts.Metrics {
		ix.metrics = metrics.NewSet()
		ix.added = ix.metrics.NewCounter(fmt.Sprintf(`mediarss_index_added_total{index=%q}`, name))
		ix.duplicates = ix.metrics.NewCounter(fmt.Sprintf(`mediarss_index_duplicates_total{index=%q}`, name))
		ix.removed = ix.metrics.NewCounter(fmt.Sprintf(`mediarss_index_removed_total{index=%q}`, name))
		ix.metrics.NewGauge(fmt.Sprintf(`mediarss_index_size{index=%q}`, name), func() float64 {
			return float64(ix.Len())
		})
	}
	return ix, nil
}

// Add adds r unless an equal record is already present. It reports whether r was added.
func (ix *Index[R]) Add(r R) bool {
	h := record.Hash(r)

	ix.lock.Lock()
	defer ix.lock.Unlock()

	if ix.find(h, r) >= 0 {
		ix.logger.Debug("Dropped duplicate record", record.Object("record", r))
		inc(ix.duplicates)
		return false
	}
	ix.buckets[h] = append(ix.buckets[h], r)
	ix.items = append(ix.items, r)
	inc(ix.added)
	return true
}

// Contains reports whether a record equal to r is present.
func (ix *Index[R]) Contains(r R) bool {
	h := record.Hash(r)

	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return ix.find(h, r) >= 0
}

// Remove removes the record equal to r. It reports whether there was one.
func (ix *Index[R]) Remove(r R) bool {
	h := record.Hash(r)

	ix.lock.Lock()
	defer ix.lock.Unlock()

	i := ix.find(h, r)
	if i < 0 {
		return false
	}
	bucket := ix.buckets[h]
	if len(bucket) == 1 {
		delete(ix.buckets, h)
	} else {
		ix.buckets[h] = append(bucket[:i:i], bucket[i+1:]...)
	}
	for j, item := range ix.items {
		if record.Equal(item, r) {
			ix.items = append(ix.items[:j:j], ix.items[j+1:]...)
			break
		}
	}
	inc(ix.removed)
	return true
}

// Len returns the number of records.
func (ix *Index[R]) Len() int {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	return len(ix.items)
}

// Items returns the records in the order they were added.
func (ix *Index[R]) Items() []R {
	ix.lock.RLock()
	defer ix.lock.RUnlock()

	result := make([]R, len(ix.items))
	copy(result, ix.items)
	return result
}

// WriteMetrics writes the index's metrics in Prometheus text format.
// It writes nothing if the index was created without Options.Metrics.
func (ix *Index[R]) WriteMetrics(w io.Writer) {
	if ix.metrics == nil {
		return
	}
	ix.metrics.WritePrometheus(w)
}

// find returns the position of r within its bucket, or -1. The caller must hold the lock.
func (ix *Index[R]) find(h uint64, r R) int {
	for i, item := range ix.buckets[h] {
		if record.Equal(item, r) {
			return i
		}
	}
	return -1
}

func inc(c *metrics.Counter) {
	if c != nil {
		c.Inc()
	}
}
