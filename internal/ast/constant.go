package ast

import (
	"fmt"
	"strconv"

	"github.com/go-pascal/pasfront/pkg/token"
)

// ConstKind discriminates the flattened Constant struct, mirroring
// how pkg/token.Token carries one discriminant instead of five
// distinct payload types.
type ConstKind int

const (
	IntConst ConstKind = iota
	RealConst
	CharConst
	BoolConst
	StringConst
)

// Constant is the tagged variant produced while partially evaluating
// constant expressions (§3, §4.3). It is owned by the parser until a
// future symbol table binds it to the identifier that named it.
type Constant struct {
	Kind     ConstKind
	Pos      token.Position
	IntVal   int64
	RealVal  float64
	CharVal  byte
	BoolVal  bool
	StrVal   string
}

// String renders the constant the way a debug dump would, used by
// the constants listing of `pasfront parse` and by tests.
func (c Constant) String() string {
	switch c.Kind {
	case IntConst:
		return strconv.FormatInt(c.IntVal, 10)
	case RealConst:
		return strconv.FormatFloat(c.RealVal, 'g', -1, 64)
	case CharConst:
		return fmt.Sprintf("%q", rune(c.CharVal))
	case BoolConst:
		return strconv.FormatBool(c.BoolVal)
	case StringConst:
		return strconv.Quote(c.StrVal)
	default:
		return "<invalid constant>"
	}
}
