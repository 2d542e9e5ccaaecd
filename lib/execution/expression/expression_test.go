package expression

import (
	"testing"

	testingpkg "github.com/ryogrid/KujiraDB/lib/testing/testing_assert"
	"github.com/ryogrid/KujiraDB/lib/types"
)

func TestConstantFolding(t *testing.T) {
	// 1 == 1
	exp := NewComparison(NewConstantValue(types.NewInteger(1)), NewConstantValue(types.NewInteger(1)), Equal)
	testingpkg.SimpleAssert(t, exp.IsConstant())
	testingpkg.SimpleAssert(t, !exp.CanThrow())
	testingpkg.SimpleAssert(t, ToBoolean(exp))

	// 1 == 2
	exp = NewComparison(NewConstantValue(types.NewInteger(1)), NewConstantValue(types.NewInteger(2)), Equal)
	testingpkg.SimpleAssert(t, !ToBoolean(exp))

	// (1 < 2) && (3 >= 3)
	exp = NewLogicalOp(
		NewComparison(NewConstantValue(types.NewInteger(1)), NewConstantValue(types.NewInteger(2)), LessThan),
		NewComparison(NewConstantValue(types.NewInteger(3)), NewConstantValue(types.NewInteger(3)), GreaterThanOrEqual),
		AND)
	testingpkg.SimpleAssert(t, ToBoolean(exp))

	// !(1 < 2)
	exp = NewLogicalOp(
		NewComparison(NewConstantValue(types.NewInteger(1)), NewConstantValue(types.NewInteger(2)), LessThan),
		nil, NOT)
	testingpkg.SimpleAssert(t, !ToBoolean(exp))
}

func TestVariableReferenceBlocksConstness(t *testing.T) {
	v := NewVariable(0, "p")
	exp := NewComparison(
		NewAttributeAccess(NewVariableRef(v), "a"),
		NewConstantValue(types.NewInteger(5)), Equal)
	testingpkg.SimpleAssert(t, !exp.IsConstant())
	testingpkg.SimpleAssert(t, !exp.CanThrow())
}

func TestFunctionCallCanThrow(t *testing.T) {
	exp := NewFunctionCall("FAIL", []Expression{NewConstantValue(types.NewInteger(1))})
	testingpkg.SimpleAssert(t, exp.CanThrow())
	testingpkg.SimpleAssert(t, exp.IsConstant())
}

func TestGetVariablesUsed(t *testing.T) {
	p := NewVariable(0, "p")
	q := NewVariable(1, "q")
	exp := NewLogicalOp(
		NewComparison(NewAttributeAccess(NewVariableRef(p), "a"), NewConstantValue(types.NewInteger(1)), GreaterThan),
		NewComparison(NewAttributeAccess(NewVariableRef(q), "b"), NewAttributeAccess(NewVariableRef(p), "c"), Equal),
		AND)
	used := GetVariablesUsed(exp)
	testingpkg.Equals(t, 2, len(used))
	testingpkg.Equals(t, types.VariableID(0), used[0].Id_)
	testingpkg.Equals(t, types.VariableID(1), used[1].Id_)
}

func TestCloneIsDeepForTreeSharedForVariables(t *testing.T) {
	p := NewVariable(0, "p")
	exp := NewComparison(
		NewAttributeAccess(NewVariableRef(p), "a"),
		NewConstantValue(types.NewInteger(5)), Equal)
	cloned := exp.Clone()
	testingpkg.SimpleAssert(t, cloned != exp)
	testingpkg.Equals(t, exp.GetDebugStr(), cloned.GetDebugStr())
	clonedRef := cloned.GetChildAt(0).GetChildAt(0).(*VariableRef)
	testingpkg.SimpleAssert(t, clonedRef.GetVariable() == p)
}
