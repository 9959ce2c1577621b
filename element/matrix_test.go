package element_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semigroups/element"
	"github.com/katalvlaran/semigroups/semiring"
)

const (
	ninf = semiring.NegInf
	pinf = semiring.PosInf
)

func redefined(t *testing.T, x, y *element.Matrix) *element.Matrix {
	t.Helper()
	dst := x.Identity().(*element.Matrix)
	dst.Redefine(x, y)

	return dst
}

func entries(m *element.Matrix) []int64 {
	n := m.Degree()
	out := make([]int64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}

// TestMatrixProducts checks one hand-computed product per semiring family.
func TestMatrixProducts(t *testing.T) {
	cases := []struct {
		desc string
		kind element.Kind
		x, y []int64
		want []int64
	}{
		{"max-plus", element.KindMaxPlusMat,
			[]int64{0, -1, 2, ninf}, []int64{1, 3, 0, ninf}, []int64{1, 3, 3, 5}},
		{"min-plus", element.KindMinPlusMat,
			[]int64{0, pinf, 1, 2}, []int64{3, 1, pinf, 0}, []int64{3, 1, 4, 2}},
		{"tropical-max-plus(4)", element.KindTropicalMaxPlusMat,
			[]int64{2, 3, ninf, 1}, []int64{3, 0, 4, ninf}, []int64{4, 2, 4, ninf}},
		{"tropical-min-plus(4)", element.KindTropicalMinPlusMat,
			[]int64{2, 3, pinf, 1}, []int64{3, 0, 4, pinf}, []int64{4, 2, 4, pinf}},
		{"projective-max-plus", element.KindProjectiveMaxPlusMat,
			[]int64{0, -1, 2, ninf}, []int64{1, 3, 0, ninf}, []int64{-4, -2, -2, 0}},
		{"prime-field(5)", element.KindPrimeFieldMat,
			[]int64{1, 2, 3, 4}, []int64{4, 3, 2, 1}, []int64{3, 0, 0, 3}},
		{"natural(3,2)", element.KindNaturalMat,
			[]int64{2, 2, 0, 1}, []int64{2, 2, 2, 0}, []int64{4, 4, 2, 0}},
		{"natural", element.KindNaturalMat,
			[]int64{2, 2, 0, 1}, []int64{2, 2, 2, 0}, []int64{8, 4, 2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			sr := mustSemiring(t, tc.desc)
			x := mustMatrix(t, sr, tc.x...)
			y := mustMatrix(t, sr, tc.y...)
			require.Equal(t, tc.kind, x.Kind())
			require.Same(t, sr, x.Semiring())

			got := redefined(t, x, y)
			require.Equal(t, tc.want, entries(got))
			require.True(t, got.Equal(mustMatrix(t, sr, tc.want...)))
		})
	}
}

// TestTropicalThresholdClamp: every entry above the threshold becomes the threshold.
func TestTropicalThresholdClamp(t *testing.T) {
	sr := mustSemiring(t, "tropical-max-plus(5)")
	x := mustMatrix(t, sr, 5, 5, 5, 5)
	got := redefined(t, x, x)
	require.Equal(t, []int64{5, 5, 5, 5}, entries(got))

	_, err := element.NewMatrix([]int64{0, 6, 0, 0}, sr)
	require.ErrorIs(t, err, element.ErrEntryOutOfRange)
}

// TestProjectiveScalarEquivalence: matrices differing by a scalar are equal.
func TestProjectiveScalarEquivalence(t *testing.T) {
	sr := semiring.NewProjectiveMaxPlus()
	a := mustMatrix(t, sr, 1, 3, ninf, 5)
	b := mustMatrix(t, sr, -3, -1, ninf, 1)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, []int64{-4, -2, ninf, 0}, entries(a))
}

func TestMatrixIdentity(t *testing.T) {
	sr := semiring.NewMinPlus()
	x := mustMatrix(t, sr, 3, 1, 4, 2)
	id := x.Identity().(*element.Matrix)
	require.Equal(t, []int64{0, pinf, pinf, 0}, entries(id))
	require.True(t, product(x, id).Equal(x))
	require.True(t, product(id, x).Equal(x))
	require.Equal(t, 8, x.Complexity())
}

func TestMatrixCopyPadsWithZero(t *testing.T) {
	sr := semiring.NewMaxPlus()
	x := mustMatrix(t, sr, 1)
	c := x.Copy(1).(*element.Matrix)
	require.Equal(t, []int64{1, ninf, ninf, ninf}, entries(c))
	require.Equal(t, "Matrix<max-plus>[[1 -inf] [-inf -inf]]", c.String())
	require.Same(t, sr, c.Semiring())
}

func TestNewMatrixErrors(t *testing.T) {
	_, err := element.NewMatrix([]int64{0}, nil)
	require.ErrorIs(t, err, element.ErrNilSemiring)

	_, err = element.NewMatrix([]int64{0}, semiring.NewBoolean())
	require.ErrorIs(t, err, element.ErrKindSemiring)

	_, err = element.NewMatrix([]int64{0, 1}, semiring.NewMaxPlus())
	require.ErrorIs(t, err, element.ErrNotSquare)

	_, err = element.NewMatrix([]int64{0, 7, 1, 1}, mustSemiring(t, "prime-field(7)"))
	require.ErrorIs(t, err, element.ErrEntryOutOfRange)
}

// TestMatrixSemiringInstances: products need one shared instance.
func TestMatrixSemiringInstances(t *testing.T) {
	a := mustMatrix(t, semiring.NewMaxPlus(), 0, 1, 2, 3)
	b := mustMatrix(t, semiring.NewMaxPlus(), 0, 1, 2, 3)
	require.False(t, a.Equal(b), "different instances are different semirings")

	dst := a.Copy(0)
	requireContractPanic(t, element.ErrSemiringMismatch, func() { dst.Redefine(a, b) })

	reg := semiring.NewRegistry()
	s1, err := reg.Acquire("max-plus")
	require.NoError(t, err)
	s2, err := reg.Acquire("max-plus")
	require.NoError(t, err)
	c := mustMatrix(t, s1, 0, 1, 2, 3)
	d := mustMatrix(t, s2, 0, 1, 2, 3)
	require.True(t, c.Equal(d))
	require.NotPanics(t, func() { product(c, d) })
}

func TestMatrixHash(t *testing.T) {
	sr := mustSemiring(t, "prime-field(5)")
	x := mustMatrix(t, sr, 1, 2, 3, 4)
	require.Equal(t, uint64(((1*4+2)*4+3)*4+4), x.Hash())
	require.NotEqual(t, x.Hash(), mustMatrix(t, sr, 4, 3, 2, 1).Hash())
}
