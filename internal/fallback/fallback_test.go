package fallback_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arblab/arbdash/internal/fallback"
)

func TestResolvePrefersPrimary(t *testing.T) {
	chain := fallback.NewChain(
		func() (*string, error) { v := "primary"; return &v, nil },
		fallback.Static(func() *string { v := "fallback"; return &v }),
	)

	value, err := chain.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "primary", *value)
}

func TestResolveFallsBackOnEmpty(t *testing.T) {
	chain := fallback.NewChain(
		func() (*string, error) { return nil, nil },
		fallback.Static(func() *string { v := "fallback"; return &v }),
	)

	value, err := chain.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "fallback", *value)
}

func TestResolvePropagatesErrors(t *testing.T) {
	boom := errors.New("store down")
	calls := 0
	chain := fallback.NewChain(
		func() (*string, error) { return nil, boom },
		fallback.Static(func() *string { calls++; v := "fallback"; return &v }),
	)

	_, err := chain.Resolve()
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls, "fallback must not mask source errors")
}

func TestResolveExhausted(t *testing.T) {
	chain := fallback.NewChain(
		func() (*int, error) { return nil, nil },
	)

	_, err := chain.Resolve()
	assert.ErrorIs(t, err, fallback.ErrExhausted)
}
