// SPDX-License-Identifier: MIT

package element

import "github.com/katalvlaran/semigroups/semiring"

// Element is the contract shared by every representation. The set of
// implementations is closed: only this package can satisfy it.
type Element interface {
	// Kind reports the representation tag.
	Kind() Kind

	// Degree is the size parameter fixed at construction: sequence length,
	// matrix side length, or the number of points on each side of a bipartition.
	Degree() int

	// Complexity estimates the relative cost of one product of two elements
	// of this kind. The values are heuristics for choosing representations.
	Complexity() int

	// Equal reports deep structural equality. other must have the same
	// degree (panics otherwise); elements of another kind are never equal.
	Equal(other Element) bool

	// Hash is consistent with Equal and sensitive to entry order.
	Hash() uint64

	// Identity returns a new identity element of the same kind and degree.
	Identity() Element

	// Copy returns an independent deep copy whose degree is increased by
	// extra (>= 0); new positions are padded so the copy stays well formed.
	Copy(extra int) Element

	// Release drops the backing storage. It must be called exactly once.
	Release()

	// Redefine overwrites the receiver with x*y. x, y and the receiver must
	// share kind and degree, and the receiver must be neither x nor y.
	Redefine(x, y Element)

	sealed()
}

// Index is the element type of Transformation and PartialPerm storage.
type Index interface {
	~uint16 | ~uint32
}

// Kind is the representation tag assigned by the external classifier.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTransformation2
	KindTransformation4
	KindPartialPerm2
	KindPartialPerm4
	KindBooleanMat
	KindMaxPlusMat
	KindMinPlusMat
	KindTropicalMaxPlusMat
	KindTropicalMinPlusMat
	KindProjectiveMaxPlusMat
	KindNaturalMat
	KindPrimeFieldMat
	KindBipartition
)

var kindNames = [...]string{
	KindUnknown:              "unknown",
	KindTransformation2:      "transformation-2",
	KindTransformation4:      "transformation-4",
	KindPartialPerm2:         "partial-perm-2",
	KindPartialPerm4:         "partial-perm-4",
	KindBooleanMat:           "boolean-matrix",
	KindMaxPlusMat:           "max-plus-matrix",
	KindMinPlusMat:           "min-plus-matrix",
	KindTropicalMaxPlusMat:   "tropical-max-plus-matrix",
	KindTropicalMinPlusMat:   "tropical-min-plus-matrix",
	KindProjectiveMaxPlusMat: "projective-max-plus-matrix",
	KindNaturalMat:           "natural-matrix",
	KindPrimeFieldMat:        "prime-field-matrix",
	KindBipartition:          "bipartition",
}

// String returns the kind's name, or "unknown" for values outside the enum.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindUnknown]
}

// IsMatrix reports whether k is one of the semiring matrix kinds.
func (k Kind) IsMatrix() bool {
	return k >= KindMaxPlusMat && k <= KindPrimeFieldMat
}

// matrixKinds maps semiring families to matrix kinds. Boolean matrices have
// their own representation (BooleanMat) and are not listed.
var matrixKinds = map[semiring.Kind]Kind{
	semiring.MaxPlus:           KindMaxPlusMat,
	semiring.MinPlus:           KindMinPlusMat,
	semiring.TropicalMaxPlus:   KindTropicalMaxPlusMat,
	semiring.TropicalMinPlus:   KindTropicalMinPlusMat,
	semiring.ProjectiveMaxPlus: KindProjectiveMaxPlusMat,
	semiring.Natural:           KindNaturalMat,
	semiring.PrimeField:        KindPrimeFieldMat,
}
