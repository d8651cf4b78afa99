package shape

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lineq/errs"
)

func TestNewHyperPlane(t *testing.T) {
	t.Run("4D", func(t *testing.T) {
		h, err := NewHyperPlane(1, 1, 1, 1, -4)
		require.NoError(t, err)
		require.Equal(t, 4, h.Dimension())
		require.Equal(t, KindHyperPlane, h.Kind())
	})

	t.Run("1D", func(t *testing.T) {
		h, err := NewHyperPlane(2, -6)
		require.NoError(t, err)
		require.Equal(t, 1, h.Dimension())

		ok, err := h.BelongsToShape(3)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("dimension zero", func(t *testing.T) {
		_, err := NewHyperPlane(5)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Contains(t, err.Error(), "dimension >= 1")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewHyperPlane()
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("all zero", func(t *testing.T) {
		_, err := NewHyperPlane(0, 0, 0, 1e-13)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Contains(t, err.Error(), "all coefficients cannot be zero")
	})

	t.Run("zero normal is allowed", func(t *testing.T) {
		h, err := NewHyperPlane(0, 0, 3)
		require.NoError(t, err)
		require.Equal(t, "3 = 0", h.PrintEquation())
	})

	t.Run("copies input", func(t *testing.T) {
		coeffs := []float64{1, 2, 3}
		h, err := NewHyperPlane(coeffs...)
		require.NoError(t, err)
		coeffs[0] = 9
		require.Equal(t, []float64{1, 2, 3}, h.Coefficients())
	})
}

func TestHyperPlane_BelongsToShape(t *testing.T) {
	h, err := NewHyperPlane(1, 1, 1, 1, -4)
	require.NoError(t, err)

	ok, err := h.BelongsToShape(1, 1, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.BelongsToShape(1, 2, 3, 4)
	require.NoError(t, err)
	require.False(t, ok)

	v, err := h.Evaluate(1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = h.BelongsToShape(1, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.Contains(t, err.Error(), "expected 4 coordinates, got 3")
}

func TestHyperPlane_BelongsToShape_MatchesFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	randInt := func() float64 { return float64(rng.Intn(41) - 20) }

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(6)
		coeffs := make([]float64, n+1)
		point := make([]float64, n)
		for j := 0; j < n; j++ {
			coeffs[j] = randInt()
			point[j] = randInt()
		}
		coeffs[0] = 1 + math.Abs(coeffs[0]) // keep the vector valid

		var dot float64
		for j := 0; j < n; j++ {
			dot += coeffs[j] * point[j]
		}
		coeffs[n] = randInt()
		if i%2 == 0 {
			coeffs[n] = -dot
		}

		h, err := NewHyperPlane(coeffs...)
		require.NoError(t, err)

		got, err := h.BelongsToShape(point...)
		require.NoError(t, err)
		require.Equal(t, math.Abs(dot+coeffs[n]) < Epsilon, got)
	}
}

func TestHyperPlane_PrintEquation(t *testing.T) {
	tests := []struct {
		coeffs []float64
		want   string
	}{
		{[]float64{1, 1, 1, 1, -4}, "x1 + x2 + x3 + x4 - 4 = 0"},
		{[]float64{2, 0, -0.5, 1}, "2x1 - 0.5x3 + 1 = 0"},
		{[]float64{0, -1, 0}, "- x2 = 0"},
		{[]float64{1, -1}, "x1 - 1 = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h, err := NewHyperPlane(tt.coeffs...)
			require.NoError(t, err)
			require.Equal(t, tt.want, h.PrintEquation())
		})
	}

	h, err := NewHyperPlane(1, 1, 1, 1, -4)
	require.NoError(t, err)
	require.Equal(t, "HyperPlane (4D): x1 + x2 + x3 + x4 - 4 = 0", h.String())
}

func TestHyperPlane_Variables(t *testing.T) {
	h, err := NewHyperPlane(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0)
	require.NoError(t, err)

	vars := h.Variables()
	require.Len(t, vars, 11)
	require.Equal(t, "x1", vars[0])
	require.Equal(t, "x11", vars[10])

	var zero HyperPlane
	require.Nil(t, zero.Variables())
}

func TestHyperPlane_Normalize(t *testing.T) {
	h, err := NewHyperPlane(1, 1, 1, 1, -4)
	require.NoError(t, err)

	n := h.Normalize()
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5, -2}, n.Coefficients(), Epsilon)
	require.InDelta(t, 1.0, euclideanNorm(n.Normal()), Epsilon)
	require.InDeltaSlice(t, n.Coefficients(), n.Normalize().Coefficients(), Epsilon)
	require.Equal(t, []float64{1, 1, 1, 1, -4}, h.Coefficients())

	ok, err := n.BelongsToShape(1, 1, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHyperPlane_Normalize_ZeroNormal(t *testing.T) {
	h, err := NewHyperPlane(0, 0, 3)
	require.NoError(t, err)
	require.Equal(t, h, h.Normalize())

	var zero HyperPlane
	require.Equal(t, zero, zero.Normalize())
}

func TestHyperPlane_Normalize_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(8)
		coeffs := make([]float64, n+1)
		for j := 0; j < n; j++ {
			coeffs[j] = randSigned(rng, 1, 1000)
		}
		coeffs[n] = randSigned(rng, 0, 100)

		h, err := NewHyperPlane(coeffs...)
		require.NoError(t, err)

		norm := h.Normalize()
		require.InDelta(t, 1.0, euclideanNorm(norm.Normal()), 1e-12)
		require.InDeltaSlice(t, norm.Coefficients(), norm.Normalize().Coefficients(), 1e-12)
	}
}

func TestHyperPlane_ConcurrentUse(t *testing.T) {
	h, err := NewHyperPlane(1, 1, 1, 1, -4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ok, err := h.BelongsToShape(1, 1, 1, 1)
				if err != nil || !ok {
					t.Errorf("unexpected result: ok=%v err=%v", ok, err)
					return
				}
				_ = h.PrintEquation()
				_ = h.Normalize()
			}
		}()
	}
	wg.Wait()
}
