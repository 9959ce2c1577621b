// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"math"

	"github.com/katalvlaran/semigroups/semiring"
)

// New builds an element of the given kind from flat raw data. It is the
// entry point for a classifier that has already decided which
// representation a foreign value has.
//
// Data layout per kind:
//
//	transformation-2/4    image list; value i at position p means p ↦ i
//	partial-perm-2/4      image list; -1 marks an undefined point
//	boolean-matrix        row-major 0/1 entries
//	*-matrix              row-major entries over sr (semiring.NegInf / PosInf for ∓∞)
//	bipartition           2n block labels, any non-negative values
//
// sr is required for the semiring matrix kinds and ignored otherwise; its
// family must match kind.
// Errors: ErrUnknownKind, ErrKindSemiring, ErrNilSemiring, plus the errors of
// the representation's constructor.
func New(kind Kind, data []int64, sr semiring.Semiring) (Element, error) {
	switch kind {
	case KindTransformation2:
		return newTransformationFrom[uint16](data)
	case KindTransformation4:
		return newTransformationFrom[uint32](data)
	case KindPartialPerm2:
		return newPartialPermFrom[uint16](data)
	case KindPartialPerm4:
		return newPartialPermFrom[uint32](data)
	case KindBooleanMat:
		entries := make([]bool, len(data))
		for i, v := range data {
			if v != 0 && v != 1 {
				return nil, elementErrorf(fmt.Sprintf("New(%s): entry %d=%d", kind, i, v), ErrEntryOutOfRange)
			}
			entries[i] = v == 1
		}
		m, err := NewBooleanMat(entries)
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindBipartition:
		labels := make([]uint32, len(data))
		for i, v := range data {
			if v < 0 || v > math.MaxUint32 {
				return nil, elementErrorf(fmt.Sprintf("New(%s): label %d=%d", kind, i, v), ErrBadBlocks)
			}
			labels[i] = uint32(v)
		}
		b, err := NewBipartition(labels)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	if !kind.IsMatrix() {
		return nil, elementErrorf(fmt.Sprintf("New(%s)", kind), ErrUnknownKind)
	}
	if sr == nil {
		return nil, elementErrorf(fmt.Sprintf("New(%s)", kind), ErrNilSemiring)
	}
	if matrixKinds[sr.Kind()] != kind {
		return nil, elementErrorf(fmt.Sprintf("New(%s) over %s", kind, sr), ErrKindSemiring)
	}

	m, err := NewMatrix(data, sr)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newTransformationFrom[T Index](data []int64) (Element, error) {
	image, err := toIndex[T](data, false)
	if err != nil {
		return nil, elementErrorf("New", err)
	}

	t, err := NewTransformation(image)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func newPartialPermFrom[T Index](data []int64) (Element, error) {
	image, err := toIndex[T](data, true)
	if err != nil {
		return nil, elementErrorf("New", err)
	}

	p, err := NewPartialPerm(image)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// toIndex narrows raw values to T. With undefOK, -1 becomes Undefined[T]()
// and the largest value of T is reserved for it; otherwise every value of T
// is a valid image.
func toIndex[T Index](data []int64, undefOK bool) ([]T, error) {
	out := make([]T, len(data))
	top := int64(maxIndex[T]())
	if undefOK {
		top-- // Undefined
	}
	for i, v := range data {
		switch {
		case undefOK && v == -1:
			out[i] = Undefined[T]()
		case v < 0 || v > top:
			return nil, fmt.Errorf("image[%d]=%d: %w", i, v, ErrImageOutOfRange)
		default:
			out[i] = T(v)
		}
	}

	return out, nil
}
