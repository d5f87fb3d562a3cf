package tbl

import (
	"fmt"
	"math"
	"strconv"
)

// Float formatting shared by every renderer. 'f' with precision -1 yields
// the shortest decimal that round-trips and never uses exponent notation.
const (
	FloatFormat    byte = 'f'
	FloatPrecision      = -1
)

// Tokens used for the text form of booleans.
const (
	TrueText  = "true"
	FalseText = "false"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
)

var kindNames = [...]string{
	KindNull:    "null",
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBoolean: "boolean",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is the content of a single table cell. It is a closed set: the only
// implementations are [String], [Integer], [Float], [Boolean], and [Null].
type Value interface {
	Kind() Kind
	value()
}

// String is a text cell.
type String string

// Integer is a signed 64-bit integer cell.
type Integer int64

// Float is a 64-bit floating point cell.
type Float float64

// Boolean is a true/false cell.
type Boolean bool

// Null is an empty cell.
type Null struct{}

func (String) Kind() Kind  { return KindString }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (Boolean) Kind() Kind { return KindBoolean }
func (Null) Kind() Kind    { return KindNull }

func (String) value()  {}
func (Integer) value() {}
func (Float) value()   {}
func (Boolean) value() {}
func (Null) value()    {}

// Text returns the canonical text form of v used by every renderer.
// A nil Value is treated as [Null].
func Text(v Value) string {
	switch v := v.(type) {
	case String:
		return string(v)
	case Integer:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return formatFloat(float64(v))
	case Boolean:
		if v {
			return TrueText
		}
		return FalseText
	case Null, nil:
		return ""
	default:
		panic(fmt.Sprintf("tbl: unknown value type %T", v))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, FloatFormat, FloatPrecision, 64)
}

func finite(f Float) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Of converts a native Go scalar into a Value. Supported inputs are nil,
// Value, string, bool, the signed and unsigned integer types, float32 and
// float64. Unsigned values above math.MaxInt64 are rejected.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Boolean(x), nil
	case int:
		return Integer(x), nil
	case int8:
		return Integer(x), nil
	case int16:
		return Integer(x), nil
	case int32:
		return Integer(x), nil
	case int64:
		return Integer(x), nil
	case uint:
		return ofUnsigned(uint64(x))
	case uint8:
		return Integer(x), nil
	case uint16:
		return Integer(x), nil
	case uint32:
		return Integer(x), nil
	case uint64:
		return ofUnsigned(x)
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported cell type %T", ErrSchema, x)
	}
}

func ofUnsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrSchema, u)
	}
	return Integer(u), nil
}
