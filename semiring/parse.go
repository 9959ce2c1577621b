// SPDX-License-Identifier: MIT

package semiring

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// descriptor is the parsed form of strings such as "max-plus",
// "tropical-min-plus(4)" or "natural(3, 2)".
type descriptor struct {
	Name   string  `parser:"@Ident"`
	Params []int64 `parser:"( \"(\" ( @Int ( \",\" @Int )* )? \")\" )?"`
}

var descriptorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9]*(-[A-Za-z0-9]+)*`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var descriptorParser = participle.MustBuild[descriptor](
	participle.Lexer(descriptorLexer),
	participle.Elide("whitespace"),
)

// Parse builds a fresh Semiring from its descriptor. The accepted names are
// the Kind names; parameters follow in parentheses:
//
//	boolean, max-plus, min-plus, projective-max-plus, natural  (no parameters)
//	tropical-max-plus(t), tropical-min-plus(t)                  threshold
//	natural(t, p)                                                threshold, period
//	prime-field(p)                                               prime modulus
//
// Errors: ErrBadDescriptor, ErrUnknownSemiring, ErrBadArity, or any
// constructor error (ErrBadThreshold, ErrBadPeriod, ErrNotPrime).
func Parse(desc string) (Semiring, error) {
	d, err := descriptorParser.ParseString("", desc)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w: %v", desc, ErrBadDescriptor, err)
	}
	sr, err := d.build()
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", desc, err)
	}

	return sr, nil
}

func (d *descriptor) build() (Semiring, error) {
	switch d.Name {
	case Boolean.String():
		return d.nullary(NewBoolean)
	case MaxPlus.String():
		return d.nullary(NewMaxPlus)
	case MinPlus.String():
		return d.nullary(NewMinPlus)
	case ProjectiveMaxPlus.String():
		return d.nullary(NewProjectiveMaxPlus)
	case TropicalMaxPlus.String():
		if err := d.arity(1); err != nil {
			return nil, err
		}
		return NewTropicalMaxPlus(d.Params[0])
	case TropicalMinPlus.String():
		if err := d.arity(1); err != nil {
			return nil, err
		}
		return NewTropicalMinPlus(d.Params[0])
	case PrimeField.String():
		if err := d.arity(1); err != nil {
			return nil, err
		}
		return NewPrimeField(d.Params[0])
	case Natural.String():
		switch len(d.Params) {
		case 0:
			return NewNatural(), nil
		case 2:
			return NewTruncatedNatural(d.Params[0], d.Params[1])
		}
		return nil, fmt.Errorf("%s takes 0 or 2 parameters, got %d: %w", d.Name, len(d.Params), ErrBadArity)
	}

	return nil, fmt.Errorf("%q: %w", d.Name, ErrUnknownSemiring)
}

func (d *descriptor) nullary(ctor func() Semiring) (Semiring, error) {
	if err := d.arity(0); err != nil {
		return nil, err
	}

	return ctor(), nil
}

func (d *descriptor) arity(want int) error {
	if len(d.Params) != want {
		return fmt.Errorf("%s takes %d parameters, got %d: %w", d.Name, want, len(d.Params), ErrBadArity)
	}

	return nil
}
