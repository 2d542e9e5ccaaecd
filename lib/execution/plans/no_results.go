package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// NoResultsNode produces no rows at all. it stands in for subtrees a rule
// proved can never emit anything.
type NoResultsNode struct {
	AbstractPlanNode
}

func NewNoResultsNode(id types.NodeID) *NoResultsNode {
	return &NoResultsNode{NewAbstractPlanNode(id)}
}

func (n *NoResultsNode) GetType() PlanType {
	return NoResults
}

func (n *NoResultsNode) GetVariablesUsedHere() []*expression.Variable {
	return nil
}

func (n *NoResultsNode) GetVariablesSetHere() []*expression.Variable {
	return nil
}

func (n *NoResultsNode) GetDebugStr() string {
	return "NoResults"
}

func (n *NoResultsNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewNoResultsNode(newID)
}
