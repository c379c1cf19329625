// Package fallback implements a two-tier lookup chain: a primary source
// (usually the store) consulted first, with static defaults substituted
// when it has nothing. Sources are composable so the fallback policy can
// be swapped or removed per environment.
package fallback

import "errors"

// ErrExhausted is returned when every source in a chain came up empty.
var ErrExhausted = errors.New("all sources exhausted")

// Source yields a value, or (nil, nil) when it has no data. A non-nil
// error aborts the chain; "no data" does not.
type Source[T any] func() (*T, error)

// Static wraps a fixed-value constructor as a terminal source.
func Static[T any](fn func() *T) Source[T] {
	return func() (*T, error) {
		return fn(), nil
	}
}

// Chain is an ordered list of sources tried until one yields a value.
type Chain[T any] struct {
	sources []Source[T]
}

// NewChain builds a chain from the given sources, primary first.
func NewChain[T any](sources ...Source[T]) *Chain[T] {
	return &Chain[T]{sources: sources}
}

// Resolve walks the chain and returns the first value produced. A source
// error propagates immediately; it never triggers the next tier.
func (c *Chain[T]) Resolve() (*T, error) {
	for _, source := range c.sources {
		value, err := source()
		if err != nil {
			return nil, err
		}
		if value != nil {
			return value, nil
		}
	}
	return nil, ErrExhausted
}
