package vector

import (
	"math"

	"go.uber.org/zap"
)

// DefaultGrowthFactor is the capacity multiplier applied when a full vector
// needs room for one more element (the golden ratio).
const DefaultGrowthFactor = 1.6180339887498948482

type options struct {
	growth float64
	alloc  Allocator
	log    *zap.Logger
}

// Option configures a Vector or Vec at construction.
type Option func(*options)

// WithGrowthFactor sets the capacity multiplier used on growth.
// Values <= 1, NaN and infinities fall back to DefaultGrowthFactor.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growth = f
	}
}

// WithAllocator sets the source of backing memory. A nil Allocator selects
// HeapAllocator. Vec ignores this option.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithLogger sets the logger that receives reallocation events at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func buildOptions(opts []Option) options {
	o := options{growth: DefaultGrowthFactor}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.growth > 1) || math.IsInf(o.growth, 0) {
		o.growth = DefaultGrowthFactor
	}
	if o.alloc == nil {
		o.alloc = HeapAllocator{}
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o
}

// NextCap returns the capacity a vector of capacity c grows to under growth
// factor f: 1 from an empty vector, otherwise ceil(c*f), and always at least c+1.
func NextCap(c int, f float64) int {
	if c <= 0 {
		return 1
	}
	next := math.Ceil(float64(c) * f)
	if next >= math.MaxInt {
		return math.MaxInt
	}
	n := int(next)
	if n <= c && c < math.MaxInt {
		n = c + 1
	}
	return n
}
