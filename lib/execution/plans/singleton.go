package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// SingletonNode produces exactly one empty row. every plan bottoms out here.
type SingletonNode struct {
	AbstractPlanNode
}

func NewSingletonNode(id types.NodeID) *SingletonNode {
	return &SingletonNode{NewAbstractPlanNode(id)}
}

func (n *SingletonNode) GetType() PlanType {
	return Singleton
}

func (n *SingletonNode) GetVariablesUsedHere() []*expression.Variable {
	return nil
}

func (n *SingletonNode) GetVariablesSetHere() []*expression.Variable {
	return nil
}

func (n *SingletonNode) GetDebugStr() string {
	return "Singleton"
}

func (n *SingletonNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewSingletonNode(newID)
}
