package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// ReturnNode emits the value of inVariable for each surviving row. it is
// always the root of a plan.
type ReturnNode struct {
	AbstractPlanNode
	inVariable *expression.Variable
}

func NewReturnNode(id types.NodeID, inVariable *expression.Variable) *ReturnNode {
	return &ReturnNode{NewAbstractPlanNode(id), inVariable}
}

func (n *ReturnNode) GetType() PlanType {
	return Return
}

func (n *ReturnNode) GetInVariable() *expression.Variable {
	return n.inVariable
}

func (n *ReturnNode) GetVariablesUsedHere() []*expression.Variable {
	return []*expression.Variable{n.inVariable}
}

func (n *ReturnNode) GetVariablesSetHere() []*expression.Variable {
	return nil
}

func (n *ReturnNode) GetDebugStr() string {
	return "Return(" + n.inVariable.Name_ + ")"
}

func (n *ReturnNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewReturnNode(newID, n.inVariable)
}
