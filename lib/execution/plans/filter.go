package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// FilterNode drops rows whose condition variable is not true. the condition
// itself is computed by an upstream CalculationNode.
type FilterNode struct {
	AbstractPlanNode
	inVariable *expression.Variable
}

func NewFilterNode(id types.NodeID, inVariable *expression.Variable) *FilterNode {
	return &FilterNode{NewAbstractPlanNode(id), inVariable}
}

func (n *FilterNode) GetType() PlanType {
	return Filter
}

func (n *FilterNode) GetInVariable() *expression.Variable {
	return n.inVariable
}

func (n *FilterNode) GetVariablesUsedHere() []*expression.Variable {
	return []*expression.Variable{n.inVariable}
}

func (n *FilterNode) GetVariablesSetHere() []*expression.Variable {
	return nil
}

func (n *FilterNode) GetDebugStr() string {
	return "Filter(" + n.inVariable.Name_ + ")"
}

func (n *FilterNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewFilterNode(newID, n.inVariable)
}
