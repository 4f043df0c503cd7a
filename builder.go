package qtable

import (
	"context"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

/*
Builder computes truth tables. A build runs strictly as a pipeline:

	ancilla inference -> enumeration -> simulate x 2^n -> sort

A single failed simulation aborts the build; no partial table is returned and
nothing is retried.
*/
type Builder struct {
	id      uint64
	oracle  Oracle
	config  *Config
	metrics *Metrics
	cache   *TableCache
}

// builderSeq hands out the cache namespaces of builders.
var builderSeq atomic.Uint64

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

func WithConfig(config *Config) BuilderOption {
	return func(b *Builder) {
		b.config = config
	}
}

func WithMetrics(metrics *Metrics) BuilderOption {
	return func(b *Builder) {
		b.metrics = metrics
	}
}

func WithCache(cache *TableCache) BuilderOption {
	return func(b *Builder) {
		b.cache = cache
	}
}

// NewBuilder creates a builder that simulates states with oracle.
func NewBuilder(oracle Oracle, opts ...BuilderOption) *Builder {
	b := &Builder{
		id:     builderSeq.Add(1),
		oracle: oracle,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.config == nil {
		b.config = NewConfig()
	}
	if b.metrics == nil {
		b.metrics = NewMetrics(nil)
	}
	return b
}

// BuildTruthTable builds the truth table of c with a default sequential
// builder.
func BuildTruthTable(ctx context.Context, c Computation, oracle Oracle) (*Table, error) {
	return NewBuilder(oracle).Build(ctx, c)
}

func (b *Builder) Metrics() *Metrics {
	return b.metrics
}

/*
Build returns the truth table of c, rows sorted by the numeric value of the
full width input state. A shared TableCache only serves a table to the
builder that built it, since the outputs depend on the oracle.
*/
func (b *Builder) Build(ctx context.Context, c Computation) (table *Table, err error) {
	if isNil(c) {
		return nil, ErrSynthesisUnavailable
	}
	if b.oracle == nil {
		return nil, ErrNoOracle
	}

	numData := c.NumDataQubits()
	if limit := b.maxDataQubits(); numData > limit {
		return nil, errors.Wrapf(ErrTooManyDataQubits, "%d data qubits, at most %d", numData, limit)
	}

	startTime := time.Now()
	defer func() {
		b.metrics.recordBuild(startTime, err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "truth table build aborted")
	}

	if b.cache != nil {
		if cached, ok := b.cache.Get(b.id, c); ok {
			b.metrics.recordCacheHit()
			errnie.Info("build: truth table served from cache (%d rows)", cached.Len())
			return cached, nil
		}
	}

	ancillas := InferAncillaConstants(c)
	errnie.Info("build: %d data qubits, ancilla constants %s", numData, State(ancillas))

	rows := make([]Row, NumStates(numData))
	pool := NewPool(b.oracle, b.config.Workers, b.config.StateTimeout, b.metrics)
	if err := pool.Run(ctx, c, EnumerateStates(numData, ancillas), rows); err != nil {
		var simErr *SimulationError
		if errors.As(err, &simErr) {
			return nil, err
		}
		return nil, errors.Wrap(err, "truth table build aborted")
	}

	SortRows(rows)

	table = &Table{
		NumQubits: c.NumQubits(),
		NumData:   numData,
		Ancillas:  ancillas,
		Rows:      rows,
	}

	if b.cache != nil {
		b.cache.Add(b.id, c, table)
	}
	errnie.Info("build: %d rows in %v", table.Len(), time.Since(startTime))

	return table, nil
}

func (b *Builder) maxDataQubits() int {
	if b.config.MaxDataQubits <= 0 || b.config.MaxDataQubits > MaxDataQubits {
		return MaxDataQubits
	}
	return b.config.MaxDataQubits
}

func isNil(c Computation) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
