package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// CalculationNode evaluates an expression per row and binds the result to
// outVariable.
type CalculationNode struct {
	AbstractPlanNode
	expression_ expression.Expression
	outVariable *expression.Variable
}

func NewCalculationNode(id types.NodeID, exp expression.Expression, outVariable *expression.Variable) *CalculationNode {
	return &CalculationNode{NewAbstractPlanNode(id), exp, outVariable}
}

func (n *CalculationNode) GetType() PlanType {
	return Calculation
}

func (n *CalculationNode) GetExpression() expression.Expression {
	return n.expression_
}

func (n *CalculationNode) GetOutVariable() *expression.Variable {
	return n.outVariable
}

// CanThrow reports whether evaluating this node may raise a runtime error.
// Such a node must survive optimization even when its output is unused.
func (n *CalculationNode) CanThrow() bool {
	return n.expression_.CanThrow()
}

func (n *CalculationNode) GetVariablesUsedHere() []*expression.Variable {
	return expression.GetVariablesUsed(n.expression_)
}

func (n *CalculationNode) GetVariablesSetHere() []*expression.Variable {
	return []*expression.Variable{n.outVariable}
}

func (n *CalculationNode) GetDebugStr() string {
	return "Calculation(" + n.expression_.GetDebugStr() + " -> " + n.outVariable.Name_ + ")"
}

func (n *CalculationNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewCalculationNode(newID, n.expression_.Clone(), n.outVariable)
}
