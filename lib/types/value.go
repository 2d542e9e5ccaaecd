package types

import (
	"fmt"
	"strconv"
)

// A Value is a view over a piece of constant query data. All values have a
// type and comparison functions, and implement other type-specific
// functionality.
type Value struct {
	valueType TypeID
	isNull    bool
	integer   *int64
	boolean   *bool
	varchar   *string
	float     *float64
}

func NewInteger(value int64) Value {
	return Value{Integer, false, &value, nil, nil, nil}
}

func NewFloat(value float64) Value {
	return Value{Float, false, nil, nil, nil, &value}
}

func NewBoolean(value bool) Value {
	return Value{Boolean, false, nil, &value, nil, nil}
}

func NewVarchar(value string) Value {
	return Value{Varchar, false, nil, nil, &value, nil}
}

func NewNull() Value {
	return Value{Null, true, nil, nil, nil, nil}
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) IsNull() bool {
	return v.isNull
}

// numeric comparisons treat Integer and Float as one numeric domain so that
// a filter like "a < 10" also constrains float attribute values
func (v Value) asFloat() float64 {
	switch v.valueType {
	case Integer:
		return float64(*v.integer)
	case Float:
		return *v.float
	default:
		panic("asFloat called on non numeric value!")
	}
}

func (v Value) isNumeric() bool {
	return v.valueType == Integer || v.valueType == Float
}

func (v Value) CompareEquals(right Value) bool {
	if v.IsNull() && right.IsNull() {
		return true
	} else if v.IsNull() || right.IsNull() {
		return false
	}

	if v.isNumeric() && right.isNumeric() {
		return v.asFloat() == right.asFloat()
	}

	switch v.valueType {
	case Varchar:
		return right.valueType == Varchar && *v.varchar == *right.varchar
	case Boolean:
		return right.valueType == Boolean && *v.boolean == *right.boolean
	}
	return false
}

func (v Value) CompareNotEquals(right Value) bool {
	return !v.CompareEquals(right)
}

func (v Value) CompareGreaterThan(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return false
	}

	if v.isNumeric() && right.isNumeric() {
		return v.asFloat() > right.asFloat()
	}

	switch v.valueType {
	case Varchar:
		return right.valueType == Varchar && *v.varchar > *right.varchar
	}
	return false
}

func (v Value) CompareGreaterThanOrEqual(right Value) bool {
	return v.CompareGreaterThan(right) || v.CompareEquals(right)
}

func (v Value) CompareLessThan(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return false
	}

	if v.isNumeric() && right.isNumeric() {
		return v.asFloat() < right.asFloat()
	}

	switch v.valueType {
	case Varchar:
		return right.valueType == Varchar && *v.varchar < *right.varchar
	}
	return false
}

func (v Value) CompareLessThanOrEqual(right Value) bool {
	return v.CompareLessThan(right) || v.CompareEquals(right)
}

// ToBoolean is only valid for Boolean typed values
func (v Value) ToBoolean() bool {
	if v.valueType != Boolean || v.isNull {
		panic("ToBoolean called on non boolean value!")
	}
	return *v.boolean
}

func (v Value) ToInteger() int64 {
	if v.valueType != Integer || v.isNull {
		panic("ToInteger called on non integer value!")
	}
	return *v.integer
}

func (v Value) ToFloat() float64 {
	if !v.isNumeric() || v.isNull {
		panic("ToFloat called on non numeric value!")
	}
	return v.asFloat()
}

func (v Value) ToVarchar() string {
	if v.valueType != Varchar || v.isNull {
		panic("ToVarchar called on non varchar value!")
	}
	return *v.varchar
}

func (v Value) ToString() string {
	if v.isNull {
		return "null"
	}
	switch v.valueType {
	case Integer:
		return strconv.FormatInt(*v.integer, 10)
	case Float:
		return strconv.FormatFloat(*v.float, 'g', -1, 64)
	case Varchar:
		return *v.varchar
	case Boolean:
		return strconv.FormatBool(*v.boolean)
	default:
		return fmt.Sprintf("unknown(%d)", v.valueType)
	}
}

// ToIFValue converts a Value to a plain interface{} representation for
// result row construction at the cursor boundary
func (v Value) ToIFValue() interface{} {
	if v.isNull {
		return nil
	}
	switch v.valueType {
	case Integer:
		return *v.integer
	case Float:
		return *v.float
	case Varchar:
		return *v.varchar
	case Boolean:
		return *v.boolean
	default:
		return nil
	}
}
