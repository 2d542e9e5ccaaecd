package planner

import (
	"errors"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/execution/expression"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
	"github.com/ryogrid/KujiraDB/lib/parser"
	"github.com/ryogrid/KujiraDB/lib/types"
)

type Planner interface {
	MakePlan(qinfo *parser.QueryInfo) (error, *plans.ExecutionPlan)
}

// SimplePlanner binds a parsed query into the canonical initial plan
// shape: Singleton, EnumerateCollection, then for a WHERE clause a
// Calculation computing the condition and a Filter consuming it, and a
// Return on top. All rewriting is left to the optimizer.
type SimplePlanner struct {
	catalog_ *catalog.Catalog
}

func NewSimplePlanner(c *catalog.Catalog) *SimplePlanner {
	return &SimplePlanner{c}
}

func (pner *SimplePlanner) MakePlan(qinfo *parser.QueryInfo) (error, *plans.ExecutionPlan) {
	if qinfo.FromCollection_ == nil {
		return errors.New("query has no FROM collection"), nil
	}
	err, _ := pner.catalog_.GetCollection(*qinfo.FromCollection_)
	if err != nil {
		return err, nil
	}

	plan := plans.NewExecutionPlan()
	singleton := plans.NewSingletonNode(plan.NextID())
	if err := plan.RegisterNode(singleton); err != nil {
		return err, nil
	}

	rowVar := plan.NewVariable(*qinfo.FromCollection_)
	enumColl := plans.NewEnumerateCollectionNode(plan.NextID(), *qinfo.FromCollection_, rowVar)
	if err := plan.RegisterNode(enumColl); err != nil {
		return err, nil
	}
	plans.AddDependency(enumColl, singleton)

	var last plans.ExecutionNode = enumColl
	if qinfo.WhereExpression_ != nil && qinfo.WhereExpression_.GetType() != parser.Empty {
		err, condExp := pner.buildExpression(qinfo.WhereExpression_, rowVar)
		if err != nil {
			return err, nil
		}
		condVar := plan.NewVariable("#cond")
		calc := plans.NewCalculationNode(plan.NextID(), condExp, condVar)
		if err := plan.RegisterNode(calc); err != nil {
			return err, nil
		}
		plans.AddDependency(calc, last)

		filter := plans.NewFilterNode(plan.NextID(), condVar)
		if err := plan.RegisterNode(filter); err != nil {
			return err, nil
		}
		plans.AddDependency(filter, calc)
		last = filter
	}

	ret := plans.NewReturnNode(plan.NextID(), rowVar)
	if err := plan.RegisterNode(ret); err != nil {
		return err, nil
	}
	plans.AddDependency(ret, last)
	plan.SetRoot(ret)

	return nil, plan
}

func (pner *SimplePlanner) buildExpression(boe *parser.BinaryOpExpression, rowVar *expression.Variable) (error, expression.Expression) {
	switch boe.GetType() {
	case parser.Logical:
		err, left := pner.buildOperand(boe.Left_, rowVar)
		if err != nil {
			return err, nil
		}
		err, right := pner.buildOperand(boe.Right_, rowVar)
		if err != nil {
			return err, nil
		}
		return nil, expression.NewLogicalOp(left, right, boe.LogicalOperationType_)
	case parser.Compare:
		err, left := pner.buildOperand(boe.Left_, rowVar)
		if err != nil {
			return err, nil
		}
		err, right := pner.buildOperand(boe.Right_, rowVar)
		if err != nil {
			return err, nil
		}
		return nil, expression.NewComparison(left, right, boe.ComparisonOperationType_)
	case parser.AttributeName, parser.Constant:
		return pner.buildOperand(boe.Left_, rowVar)
	default:
		return errors.New("unsupported WHERE clause form"), nil
	}
}

func (pner *SimplePlanner) buildOperand(operand interface{}, rowVar *expression.Variable) (error, expression.Expression) {
	switch elem := operand.(type) {
	case *parser.BinaryOpExpression:
		return pner.buildExpression(elem, rowVar)
	case *types.Value:
		return nil, expression.NewConstantValue(*elem)
	case *string:
		return nil, expression.NewAttributeAccess(expression.NewVariableRef(rowVar), *elem)
	default:
		return errors.New("unsupported operand in WHERE clause"), nil
	}
}
