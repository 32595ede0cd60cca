package simulation

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionmc/option-pricer/internal/domain"
)

func TestEngineRun(t *testing.T) {
	params := testParams()
	engine := NewEngine(zerolog.Nop())

	result, matrix, err := engine.Run(params)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, matrix)

	assert.Equal(t, params.NumPaths, matrix.NumPaths())
	assert.Equal(t, params.NumSteps, matrix.NumSteps())
	assert.Equal(t, params, result.Parameters)
	assert.GreaterOrEqual(t, result.Price, 0.0)
	assert.InDelta(t, params.DiscountFactor(), result.DiscountFactor, 1e-12)
	assert.Greater(t, result.Terminal.Max, result.Terminal.Min)
}

func TestEngineRun_DeterministicUnderSeed(t *testing.T) {
	params := testParams()
	engine := NewEngine(zerolog.Nop())

	first, firstMatrix, err := engine.Run(params)
	require.NoError(t, err)
	second, secondMatrix, err := engine.Run(params)
	require.NoError(t, err)

	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.StandardError, second.StandardError)
	for i := 0; i < firstMatrix.NumPaths(); i++ {
		require.Equal(t, firstMatrix.Row(i), secondMatrix.Row(i), "path %d differs", i)
	}
}

func TestEngineRun_DerivesSeedWhenZero(t *testing.T) {
	SetSeedFunc(func() int64 { return 777 })
	t.Cleanup(func() { SetSeedFunc(func() int64 { return time.Now().UnixNano() }) })

	params := testParams()
	params.Seed = 0

	result, _, err := NewEngine(zerolog.Nop()).Run(params)
	require.NoError(t, err)
	assert.Equal(t, int64(777), result.Parameters.Seed)
}

func TestEngineRun_InvalidParameters(t *testing.T) {
	params := testParams()
	params.MaturityYears = 0

	result, matrix, err := NewEngine(zerolog.Nop()).Run(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Nil(t, result)
	assert.Nil(t, matrix)
}
