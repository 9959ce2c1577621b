package element_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/katalvlaran/semigroups/element"
)

// TestTransformationCayleyTable pins the multiplication table of all
// transformations of degree 2.
func TestTransformationCayleyTable(t *testing.T) {
	var all []*element.Transformation[uint16]
	for _, img := range [][]uint16{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		all = append(all, mustTrans(t, img...))
	}

	var sb strings.Builder
	for _, x := range all {
		for _, y := range all {
			fmt.Fprintf(&sb, "%v * %v = %v\n", x, y, product(x, y))
		}
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "transformation_t2_cayley", []byte(sb.String()))
}
