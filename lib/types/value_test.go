package types

import (
	"testing"

	testingpkg "github.com/ryogrid/KujiraDB/lib/testing/testing_assert"
)

func TestValueComparisons(t *testing.T) {
	testingpkg.SimpleAssert(t, NewInteger(5).CompareEquals(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewInteger(5).CompareNotEquals(NewInteger(6)))
	testingpkg.SimpleAssert(t, NewInteger(7).CompareGreaterThan(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewInteger(5).CompareGreaterThanOrEqual(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewInteger(3).CompareLessThan(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewInteger(5).CompareLessThanOrEqual(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewVarchar("abc").CompareLessThan(NewVarchar("abd")))
	testingpkg.SimpleAssert(t, NewBoolean(true).CompareEquals(NewBoolean(true)))
}

func TestValueNumericDomainUnifiesIntegerAndFloat(t *testing.T) {
	testingpkg.SimpleAssert(t, NewInteger(5).CompareEquals(NewFloat(5.0)))
	testingpkg.SimpleAssert(t, NewFloat(4.5).CompareLessThan(NewInteger(5)))
	testingpkg.SimpleAssert(t, NewInteger(5).CompareGreaterThan(NewFloat(4.5)))
}

func TestNullSemantics(t *testing.T) {
	testingpkg.SimpleAssert(t, NewNull().CompareEquals(NewNull()))
	testingpkg.SimpleAssert(t, !NewNull().CompareEquals(NewInteger(0)))
	testingpkg.SimpleAssert(t, !NewNull().CompareLessThan(NewInteger(1)))
	testingpkg.SimpleAssert(t, NewNull().IsNull())
}

func TestValueAccessorsAndConversion(t *testing.T) {
	testingpkg.Equals(t, int64(42), NewInteger(42).ToInteger())
	testingpkg.Equals(t, 1.5, NewFloat(1.5).ToFloat())
	testingpkg.Equals(t, "xyz", NewVarchar("xyz").ToVarchar())
	testingpkg.Equals(t, true, NewBoolean(true).ToBoolean())
	testingpkg.Equals(t, "42", NewInteger(42).ToString())
	testingpkg.Equals(t, "null", NewNull().ToString())
	testingpkg.Equals(t, int64(42), NewInteger(42).ToIFValue())
	testingpkg.SimpleAssert(t, NewNull().ToIFValue() == nil)
}
