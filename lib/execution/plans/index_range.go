package plans

import (
	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// IndexRangeNode scans a collection through one index restricted to the
// given ranges. it binds the same out variable as the EnumerateCollectionNode
// it replaces, so downstream nodes are untouched by the substitution.
type IndexRangeNode struct {
	AbstractPlanNode
	collectionName string
	outVariable    *expression.Variable
	index          *catalog.IndexMeta
	ranges         []*RangeInfo
}

func NewIndexRangeNode(id types.NodeID, collectionName string, outVariable *expression.Variable, index *catalog.IndexMeta, ranges []*RangeInfo) *IndexRangeNode {
	return &IndexRangeNode{NewAbstractPlanNode(id), collectionName, outVariable, index, ranges}
}

func (n *IndexRangeNode) GetType() PlanType {
	return IndexRange
}

func (n *IndexRangeNode) GetCollectionName() string {
	return n.collectionName
}

func (n *IndexRangeNode) GetOutVariable() *expression.Variable {
	return n.outVariable
}

func (n *IndexRangeNode) GetIndex() *catalog.IndexMeta {
	return n.index
}

func (n *IndexRangeNode) GetRanges() []*RangeInfo {
	return n.ranges
}

func (n *IndexRangeNode) GetVariablesUsedHere() []*expression.Variable {
	return nil
}

func (n *IndexRangeNode) GetVariablesSetHere() []*expression.Variable {
	return []*expression.Variable{n.outVariable}
}

func (n *IndexRangeNode) GetDebugStr() string {
	ret := "IndexRange(" + n.collectionName + "/" + n.index.Name_ + "[" + n.index.Kind_.String() + "] -> " + n.outVariable.Name_
	for _, r := range n.ranges {
		ret += ", " + r.GetDebugStr()
	}
	return ret + ")"
}

func (n *IndexRangeNode) cloneShallow(newID types.NodeID) ExecutionNode {
	ranges := make([]*RangeInfo, 0, len(n.ranges))
	for _, r := range n.ranges {
		ranges = append(ranges, r.Clone())
	}
	return NewIndexRangeNode(newID, n.collectionName, n.outVariable, n.index, ranges)
}
