package expression

import (
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// EvaluateConstant folds a constant, throw-free subtree into a single value.
func EvaluateConstant(exp Expression) types.Value {
	common.KJ_Assert(exp.IsConstant(), "EvaluateConstant called on non constant expression!")
	common.KJ_Assert(!exp.CanThrow(), "EvaluateConstant called on throwing expression!")
	switch e := exp.(type) {
	case *ConstantValue:
		return e.GetValue()
	case *AttributeAccess:
		// constant attribute access is opaque without a document model
		return types.NewNull()
	case *Comparison:
		left := EvaluateConstant(e.GetChildAt(0))
		right := EvaluateConstant(e.GetChildAt(1))
		switch e.GetComparisonType() {
		case Equal:
			return types.NewBoolean(left.CompareEquals(right))
		case NotEqual:
			return types.NewBoolean(left.CompareNotEquals(right))
		case GreaterThan:
			return types.NewBoolean(left.CompareGreaterThan(right))
		case GreaterThanOrEqual:
			return types.NewBoolean(left.CompareGreaterThanOrEqual(right))
		case LessThan:
			return types.NewBoolean(left.CompareLessThan(right))
		case LessThanOrEqual:
			return types.NewBoolean(left.CompareLessThanOrEqual(right))
		}
	case *LogicalOp:
		switch e.GetLogicalOpType() {
		case AND:
			left := EvaluateConstant(e.GetChildAt(0))
			right := EvaluateConstant(e.GetChildAt(1))
			return types.NewBoolean(left.ToBoolean() && right.ToBoolean())
		case OR:
			left := EvaluateConstant(e.GetChildAt(0))
			right := EvaluateConstant(e.GetChildAt(1))
			return types.NewBoolean(left.ToBoolean() || right.ToBoolean())
		case NOT:
			return types.NewBoolean(!EvaluateConstant(e.GetChildAt(0)).ToBoolean())
		}
	}
	common.KJ_Assert(false, "EvaluateConstant passed unknown expression type!")
	return types.NewNull()
}

// ToBoolean gives the truth value of a constant filter condition. Callers
// must have checked IsConstant and CanThrow first.
func ToBoolean(exp Expression) bool {
	v := EvaluateConstant(exp)
	common.KJ_Assert(v.ValueType() == types.Boolean, "constant filter condition is not boolean!")
	return v.ToBoolean()
}

// GetVariablesUsed collects every variable referenced in the subtree.
// Shared references appear once, in first-seen preorder.
func GetVariablesUsed(exp Expression) []*Variable {
	result := make([]*Variable, 0)
	seen := make(map[types.VariableID]bool)
	collectVariablesUsed(exp, seen, &result)
	return result
}

func collectVariablesUsed(exp Expression, seen map[types.VariableID]bool, out *[]*Variable) {
	if ref, ok := exp.(*VariableRef); ok {
		if !seen[ref.GetVariable().Id_] {
			seen[ref.GetVariable().Id_] = true
			*out = append(*out, ref.GetVariable())
		}
		return
	}
	for _, child := range exp.GetChildren() {
		collectVariablesUsed(child, seen, out)
	}
}

func GetExpTreeStr(exp Expression) string {
	return exp.GetDebugStr()
}
