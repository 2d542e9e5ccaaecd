package plans

import (
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

/** PlanType is the tag distinguishing execution plan node kinds. */
type PlanType int

const (
	Singleton PlanType = iota
	EnumerateCollection
	Calculation
	Filter
	IndexRange
	NoResults
	Return
)

/**
 * ExecutionNode is one vertex of the execution plan DAG.
 *
 * Dependencies are the producers a node pulls rows from, parents the
 * consumers pulling from it. Both edge lists are ordered and kept mutually
 * consistent by the ExecutionPlan mutation operations.
 *
 * The hierarchy is sealed inside this package via the unexported abstract
 * accessor, so edge rewiring stays an ExecutionPlan concern.
 */
type ExecutionNode interface {
	GetID() types.NodeID
	GetType() PlanType
	GetDependencies() []ExecutionNode
	GetParents() []ExecutionNode
	// GetVariablesUsedHere lists variables this node reads
	GetVariablesUsedHere() []*expression.Variable
	// GetVariablesSetHere lists variables this node introduces
	GetVariablesSetHere() []*expression.Variable
	GetDebugStr() string
	// cloneShallow copies the node under a new id with empty edge lists.
	// Variables are shared, expressions deep copied
	cloneShallow(newID types.NodeID) ExecutionNode
	abstract() *AbstractPlanNode
}

type AbstractPlanNode struct {
	id           types.NodeID
	dependencies []ExecutionNode
	parents      []ExecutionNode
}

func NewAbstractPlanNode(id types.NodeID) AbstractPlanNode {
	return AbstractPlanNode{id: id}
}

func (n *AbstractPlanNode) GetID() types.NodeID {
	return n.id
}

func (n *AbstractPlanNode) GetDependencies() []ExecutionNode {
	return n.dependencies
}

func (n *AbstractPlanNode) GetParents() []ExecutionNode {
	return n.parents
}

func (n *AbstractPlanNode) abstract() *AbstractPlanNode {
	return n
}

// AddDependency wires node -> dep and the reverse consumer edge in one step.
func AddDependency(node ExecutionNode, dep ExecutionNode) {
	na := node.abstract()
	da := dep.abstract()
	na.dependencies = append(na.dependencies, dep)
	da.parents = append(da.parents, node)
}

func removeFromNodeList(list *[]ExecutionNode, target ExecutionNode) {
	for idx, n := range *list {
		if n == target {
			*list = append((*list)[:idx], (*list)[idx+1:]...)
			return
		}
	}
}

func replaceInNodeList(list *[]ExecutionNode, oldNode ExecutionNode, newNode ExecutionNode) {
	for idx, n := range *list {
		if n == oldNode {
			(*list)[idx] = newNode
		}
	}
}
