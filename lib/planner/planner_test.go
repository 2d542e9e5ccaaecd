package planner

import (
	"testing"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
	"github.com/ryogrid/KujiraDB/lib/parser"
	testingpkg "github.com/ryogrid/KujiraDB/lib/testing/testing_assert"
)

func setupCatalog(t *testing.T) *catalog.Catalog {
	c := catalog.NewCatalog()
	err, _ := c.CreateCollection("pools", nil)
	testingpkg.Ok(t, err)
	return c
}

func makeQueryInfo(t *testing.T, sqlStr string) *parser.QueryInfo {
	err, qinfo := parser.ProcessSQLStr(&sqlStr)
	testingpkg.Ok(t, err)
	return qinfo
}

func TestMakePlanWithoutWhere(t *testing.T) {
	pner := NewSimplePlanner(setupCatalog(t))
	err, plan := pner.MakePlan(makeQueryInfo(t, "SELECT * FROM pools;"))
	testingpkg.Ok(t, err)

	testingpkg.Equals(t, 3, plan.CountNodes())
	root := plan.GetRoot()
	testingpkg.Equals(t, plans.Return, root.GetType())
	testingpkg.Equals(t, plans.EnumerateCollection, root.GetDependencies()[0].GetType())
	testingpkg.Equals(t, plans.Singleton, root.GetDependencies()[0].GetDependencies()[0].GetType())
}

func TestMakePlanWithWhereBuildsCalculationAndFilter(t *testing.T) {
	pner := NewSimplePlanner(setupCatalog(t))
	err, plan := pner.MakePlan(makeQueryInfo(t, "SELECT * FROM pools WHERE a = 5;"))
	testingpkg.Ok(t, err)

	testingpkg.Equals(t, 5, plan.CountNodes())
	root := plan.GetRoot()
	testingpkg.Equals(t, plans.Return, root.GetType())

	filter := root.GetDependencies()[0]
	testingpkg.Equals(t, plans.Filter, filter.GetType())
	calc := filter.GetDependencies()[0]
	testingpkg.Equals(t, plans.Calculation, calc.GetType())
	testingpkg.Equals(t, plans.EnumerateCollection, calc.GetDependencies()[0].GetType())

	// the filter consumes exactly the calculation's output variable
	condVar := filter.(*plans.FilterNode).GetInVariable()
	testingpkg.SimpleAssert(t, plan.GetVarSetBy(condVar.Id_) == calc)

	// the scan's row variable flows into both the condition and the return
	scan := calc.GetDependencies()[0].(*plans.EnumerateCollectionNode)
	testingpkg.Equals(t, "pools", scan.GetCollectionName())
	retVar := root.(*plans.ReturnNode).GetInVariable()
	testingpkg.SimpleAssert(t, retVar == scan.GetOutVariable())
}

func TestMakePlanUnknownCollection(t *testing.T) {
	pner := NewSimplePlanner(setupCatalog(t))
	err, _ := pner.MakePlan(makeQueryInfo(t, "SELECT * FROM nosuch;"))
	testingpkg.SimpleAssert(t, err == catalog.ErrCollectionNotFound)
}
