package optimizer

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	stack "github.com/golang-collections/collections/stack"
	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/catalog/index_constants"
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
	"github.com/ryogrid/KujiraDB/lib/types"
)

// RemoveUnnecessaryFilters rewrites filters whose condition is a constant.
// A condition that is always true makes the filter a no-op, so it is
// unlinked. A condition that is always false makes the whole subtree dead,
// so the filter becomes a NoResultsNode. Throwing conditions are left
// alone even when constant.
func (o *Optimizer) RemoveUnnecessaryFilters(plan *plans.ExecutionPlan, out *PlanList) (error, bool) {
	toUnlink := mapset.NewSet[types.NodeID]()
	for _, node := range plan.FindNodesOfType(plans.Filter, true) {
		filter := node.(*plans.FilterNode)
		setter := plan.GetVarSetBy(filter.GetInVariable().Id_)
		if setter == nil || setter.GetType() != plans.Calculation {
			continue
		}
		exp := setter.(*plans.CalculationNode).GetExpression()
		if !exp.IsConstant() || exp.CanThrow() {
			continue
		}

		if expression.ToBoolean(exp) {
			toUnlink.Add(node.GetID())
		} else {
			common.KJ_Assert(len(node.GetParents()) == 1, "filter node must have exactly one parent!")
			noResults := plans.NewNoResultsNode(plan.NextID())
			if err := plan.ReplaceNode(node, noResults); err != nil {
				return err, false
			}
		}
	}
	if toUnlink.Cardinality() > 0 {
		plan.UnlinkNodes(toUnlink)
	}
	return nil, true
}

// RemoveUnnecessaryCalculations unlinks throw-free calculations whose
// output variable no transitive consumer reads.
func (o *Optimizer) RemoveUnnecessaryCalculations(plan *plans.ExecutionPlan, out *PlanList) (error, bool) {
	toUnlink := mapset.NewSet[types.NodeID]()
	for _, node := range plan.FindNodesOfType(plans.Calculation, true) {
		calc := node.(*plans.CalculationNode)
		if calc.CanThrow() {
			continue
		}
		if varUsedLater(node, calc.GetOutVariable()) {
			continue
		}
		toUnlink.Add(node.GetID())
	}
	if toUnlink.Cardinality() > 0 {
		plan.UnlinkNodes(toUnlink)
	}
	return nil, true
}

// varUsedLater scans every transitive consumer of the node for a read of
// the variable.
func varUsedLater(node plans.ExecutionNode, variable *expression.Variable) bool {
	pending := stack.New()
	visited := mapset.NewSet[types.NodeID]()
	for _, parent := range node.GetParents() {
		pending.Push(parent)
	}
	for pending.Len() > 0 {
		cur := pending.Pop().(plans.ExecutionNode)
		if !visited.Add(cur.GetID()) {
			continue
		}
		for _, used := range cur.GetVariablesUsedHere() {
			if used.Id_ == variable.Id_ {
				return true
			}
		}
		for _, parent := range cur.GetParents() {
			pending.Push(parent)
		}
	}
	return false
}

// UseIndexRange turns full collection scans into index range scans.
//
// For every filter the rule walks down the dependency chain. Calculations
// that set the filter's condition variable contribute range conditions to
// a RangesInfo accumulator. When the walk reaches the collection scan that
// binds a constrained variable, every index able to serve the accumulated
// attributes yields one plan clone with the scan swapped for an
// IndexRangeNode. The original plan is always kept as well.
func (o *Optimizer) UseIndexRange(plan *plans.ExecutionPlan, out *PlanList) (error, bool) {
	for _, node := range plan.FindNodesOfType(plans.Filter, true) {
		filter := node.(*plans.FilterNode)
		finder := &filterToEnumCollFinder{
			plan:     plan,
			catalog_: o.catalog_,
			out:      out,
			variable: filter.GetInVariable(),
			ranges:   plans.NewRangesInfo(),
		}
		if err := finder.walk(node, nil); err != nil {
			return err, false
		}
	}
	return nil, true
}

// filterToEnumCollFinder carries the state of one downward walk from a
// filter node toward its collection scan.
type filterToEnumCollFinder struct {
	plan     *plans.ExecutionPlan
	catalog_ *catalog.Catalog
	out      *PlanList
	variable *expression.Variable
	ranges   *plans.RangesInfo
}

func (f *filterToEnumCollFinder) walk(node plans.ExecutionNode, prev plans.ExecutionNode) error {
	switch node.GetType() {
	case plans.Calculation:
		calc := node.(*plans.CalculationNode)
		if calc.GetOutVariable().Id_ == f.variable.Id_ {
			for _, rangeInfo := range f.buildRangeInfo(calc.GetExpression()) {
				f.ranges.Insert(rangeInfo)
			}
		}
	case plans.EnumerateCollection:
		// the walk ends at the scan feeding the filter
		return f.handleEnumerateCollection(node.(*plans.EnumerateCollectionNode), prev)
	}

	deps := node.GetDependencies()
	// a join point or a chain end terminates the walk without substitution
	if len(deps) != 1 {
		return nil
	}
	return f.walk(deps[0], node)
}

func (f *filterToEnumCollFinder) handleEnumerateCollection(enumColl *plans.EnumerateCollectionNode, prev plans.ExecutionNode) error {
	common.KJ_Assert(prev != nil, "collection scan can not be the filter itself!")
	attrRanges := f.ranges.Find(enumColl.GetOutVariable().Name_)
	if len(attrRanges) == 0 {
		return nil
	}
	attrs := make([]string, 0, len(attrRanges))
	for attr := range attrRanges {
		attrs = append(attrs, attr)
	}
	// map iteration order would make candidate enumeration flap
	sort.Strings(attrs)

	err, meta := f.catalog_.GetCollection(enumColl.GetCollectionName())
	if err != nil {
		return err
	}
	for _, index := range meta.GetIndexes(attrs) {
		if index.Kind_ == index_constants.INDEX_KIND_HASH && !allEqualityRanges(index, attrRanges) {
			continue
		}
		if err := f.emitIndexPlan(enumColl, index, attrRanges); err != nil {
			return err
		}
	}
	return nil
}

func allEqualityRanges(index *catalog.IndexMeta, attrRanges map[string]*plans.RangeInfo) bool {
	for _, attr := range index.Attrs_ {
		rangeInfo, ok := attrRanges[attr]
		if !ok || !rangeInfo.Is1ValueRangeInfo() {
			return false
		}
	}
	return true
}

func (f *filterToEnumCollFinder) emitIndexPlan(enumColl *plans.EnumerateCollectionNode, index *catalog.IndexMeta, attrRanges map[string]*plans.RangeInfo) error {
	err, newPlan := f.plan.Clone()
	if err != nil {
		return err
	}

	// variables keep identity across Clone, so the cloned scan is reachable
	// through the new plan's setter index
	clonedScan := newPlan.GetVarSetBy(enumColl.GetOutVariable().Id_)
	common.KJ_Assert(clonedScan != nil && clonedScan.GetType() == plans.EnumerateCollection,
		"cloned plan lost its collection scan node!")

	ranges := make([]*plans.RangeInfo, 0, len(index.Attrs_))
	for _, attr := range index.Attrs_ {
		if rangeInfo, ok := attrRanges[attr]; ok {
			ranges = append(ranges, rangeInfo.Clone())
		}
	}
	indexNode := plans.NewIndexRangeNode(newPlan.NextID(), enumColl.GetCollectionName(),
		enumColl.GetOutVariable(), index, ranges)
	if err := newPlan.ReplaceNode(clonedScan, indexNode); err != nil {
		return err
	}
	f.out.Add(newPlan)
	return nil
}

// buildRangeInfo extracts one-dimensional range conditions from a filter
// condition expression. Only attribute-vs-constant comparisons joined by
// AND produce ranges, and only over variables bound by a collection scan;
// every other form contributes nothing.
func (f *filterToEnumCollFinder) buildRangeInfo(exp expression.Expression) []*plans.RangeInfo {
	switch e := exp.(type) {
	case *expression.LogicalOp:
		if e.GetLogicalOpType() == expression.AND {
			result := f.buildRangeInfo(e.GetChildAt(0))
			return append(result, f.buildRangeInfo(e.GetChildAt(1))...)
		}
	case *expression.Comparison:
		return f.rangeFromComparison(e)
	}
	return nil
}

func (f *filterToEnumCollFinder) rangeFromComparison(cmp *expression.Comparison) []*plans.RangeInfo {
	compType := cmp.GetComparisonType()
	variable, attr, ok := attributeAccessTarget(cmp.GetChildAt(0))
	constSide := cmp.GetChildAt(1)
	if !ok {
		variable, attr, ok = attributeAccessTarget(cmp.GetChildAt(1))
		if !ok {
			return nil
		}
		constSide = cmp.GetChildAt(0)
		compType = flipComparison(compType)
	}
	// a range over an attribute of anything but a collection scan's row
	// variable can not narrow that scan. resolution goes through the
	// setter index, so a calculation-bound variable sharing a scan
	// variable's name never slips through
	setter := f.plan.GetVarSetBy(variable.Id_)
	if setter == nil || setter.GetType() != plans.EnumerateCollection {
		return nil
	}
	varName := variable.Name_
	constVal, ok := constSide.(*expression.ConstantValue)
	if !ok {
		return nil
	}
	value := constVal.GetValue()

	switch compType {
	case expression.Equal:
		bound := plans.NewRangeInfoBound(value, true)
		return []*plans.RangeInfo{plans.NewRangeInfo(varName, attr, bound, bound)}
	case expression.GreaterThan:
		return []*plans.RangeInfo{plans.NewRangeInfo(varName, attr, plans.NewRangeInfoBound(value, false), nil)}
	case expression.GreaterThanOrEqual:
		return []*plans.RangeInfo{plans.NewRangeInfo(varName, attr, plans.NewRangeInfoBound(value, true), nil)}
	case expression.LessThan:
		return []*plans.RangeInfo{plans.NewRangeInfo(varName, attr, nil, plans.NewRangeInfoBound(value, false))}
	case expression.LessThanOrEqual:
		return []*plans.RangeInfo{plans.NewRangeInfo(varName, attr, nil, plans.NewRangeInfoBound(value, true))}
	}
	return nil
}

// attributeAccessTarget resolves an attribute access chain down to its
// variable, joining nested accesses into a dotted path.
func attributeAccessTarget(exp expression.Expression) (*expression.Variable, string, bool) {
	access, ok := exp.(*expression.AttributeAccess)
	if !ok {
		return nil, "", false
	}
	attr := access.GetAttrName()
	child := access.GetChildAt(0)
	for {
		switch c := child.(type) {
		case *expression.AttributeAccess:
			attr = c.GetAttrName() + "." + attr
			child = c.GetChildAt(0)
		case *expression.VariableRef:
			return c.GetVariable(), attr, true
		default:
			return nil, "", false
		}
	}
}

func flipComparison(compType expression.ComparisonType) expression.ComparisonType {
	switch compType {
	case expression.GreaterThan:
		return expression.LessThan
	case expression.GreaterThanOrEqual:
		return expression.LessThanOrEqual
	case expression.LessThan:
		return expression.GreaterThan
	case expression.LessThanOrEqual:
		return expression.GreaterThanOrEqual
	default:
		return compType
	}
}
