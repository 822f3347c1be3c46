// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import "fmt"

// Kind represents the element type stored in a column.
type Kind uint8

// The nine element kinds supported by a column.
const (
	I8 Kind = iota
	I16
	I32
	I64
	F32
	F64
	Bool
	Char
	Str
)

// String returns a human readable name for the kind, used in error messages; it is
// not the on-wire token name (see tokenName).
func (k Kind) String() string {
	switch k {
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case Str:
		return "Str"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// isNumeric reports whether the kind supports average/minimum/maximum.
func (k Kind) isNumeric() bool {
	switch k {
	case I8, I16, I32, I64, F32, F64:
		return true
	default:
		return false
	}
}

// Flavour is the nullability discipline of a frame or a column: every column in a
// Default frame rejects missing values, every column in a Nullable frame permits them.
type Flavour uint8

const (
	// Default is the non-null flavour: every element is always present.
	Default Flavour = iota
	// Nullable is the flavour that allows a cell to be missing.
	Nullable
)

// String returns "default" or "nullable", matching the on-wire FLAVOUR token.
func (f Flavour) String() string {
	if f == Nullable {
		return "nullable"
	}
	return "default"
}

// --------------------------- on-wire kind tokens ----------------------------

// baseToken maps a Kind to the un-prefixed on-wire token name from spec §6.1.
var baseToken = [...]string{
	I8:   "Byte",
	I16:  "Short",
	I32:  "Int",
	I64:  "Long",
	F32:  "Float",
	F64:  "Double",
	Bool: "Boolean",
	Char: "Char",
	Str:  "String",
}

// tokenName returns the exact on-wire column-kind token, e.g. "IntColumn" or
// "NullableStringColumn", as defined in spec §6.1.
func tokenName(k Kind, nullable bool) string {
	name := baseToken[k] + "Column"
	if nullable {
		name = "Nullable" + name
	}
	return name
}

// kindFromToken parses a token name back into (Kind, nullable). It returns
// ok == false if the token is not one of the eighteen valid tokens.
func kindFromToken(token string) (k Kind, nullable bool, ok bool) {
	nullable = false
	rest := token
	const nullablePrefix = "Nullable"
	if len(token) > len(nullablePrefix) && token[:len(nullablePrefix)] == nullablePrefix {
		nullable = true
		rest = token[len(nullablePrefix):]
	}

	for kind, base := range baseToken {
		if rest == base+"Column" {
			return Kind(kind), nullable, true
		}
	}
	return 0, false, false
}
