package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// EnumerateCollectionNode scans a whole collection, binding each document
// to outVariable.
type EnumerateCollectionNode struct {
	AbstractPlanNode
	collectionName string
	outVariable    *expression.Variable
}

func NewEnumerateCollectionNode(id types.NodeID, collectionName string, outVariable *expression.Variable) *EnumerateCollectionNode {
	return &EnumerateCollectionNode{NewAbstractPlanNode(id), collectionName, outVariable}
}

func (n *EnumerateCollectionNode) GetType() PlanType {
	return EnumerateCollection
}

func (n *EnumerateCollectionNode) GetCollectionName() string {
	return n.collectionName
}

func (n *EnumerateCollectionNode) GetOutVariable() *expression.Variable {
	return n.outVariable
}

func (n *EnumerateCollectionNode) GetVariablesUsedHere() []*expression.Variable {
	return nil
}

func (n *EnumerateCollectionNode) GetVariablesSetHere() []*expression.Variable {
	return []*expression.Variable{n.outVariable}
}

func (n *EnumerateCollectionNode) GetDebugStr() string {
	return "EnumerateCollection(" + n.collectionName + " -> " + n.outVariable.Name_ + ")"
}

func (n *EnumerateCollectionNode) cloneShallow(newID types.NodeID) ExecutionNode {
	return NewEnumerateCollectionNode(newID, n.collectionName, n.outVariable)
}
