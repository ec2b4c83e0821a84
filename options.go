package slotarena

import (
	"log/slog"
	"math"

	"github.com/pavanmanishd/slotarena/seq"
	"github.com/pavanmanishd/slotarena/token"
)

type options struct {
	chunkLen int
	capacity int
	brand    token.Token
	maxGen   uint32
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		chunkLen: seq.DefaultChunkLen,
		maxGen:   math.MaxUint32,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures an arena.
type Option func(*options)

// WithToken brands the arena. Handles it returns carry t and handles with
// any other brand are treated as not found.
func WithToken(t token.Token) Option {
	return func(o *options) {
		o.brand = t
	}
}

// WithChunkLen sets how many slots are allocated at once when the arena
// grows. See seq.WithChunkLen.
func WithChunkLen(n int) Option {
	return func(o *options) {
		o.chunkLen = n
	}
}

// WithCapacity reserves room for n slots up front.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxGeneration lowers the generation at which a slot is retired.
// It only affects generational arenas (Sparse, Hop). Zero is ignored.
func WithMaxGeneration(g uint32) Option {
	return func(o *options) {
		if g > 0 {
			o.maxGen = g
		}
	}
}

// WithLogger sets the logger used for growth, retirement and clear events.
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
