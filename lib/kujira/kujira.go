package kujira

import (
	"fmt"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ryogrid/KujiraDB/lib/execution/executors"
	"github.com/ryogrid/KujiraDB/lib/parser"
	"github.com/ryogrid/KujiraDB/lib/planner"
	"github.com/ryogrid/KujiraDB/lib/planner/optimizer"
)

// KujiraDB wires parser, planner, optimizer and the injected execution
// engine into one query pipeline.
type KujiraDB struct {
	catalog_   *catalog.Catalog
	planner_   planner.Planner
	optimizer_ *optimizer.Optimizer
	engine_    executors.ExecutionEngine
	execCtx_   *executors.ExecutorContext
}

func NewKujiraDB(c *catalog.Catalog, engine executors.ExecutionEngine) *KujiraDB {
	return &KujiraDB{
		catalog_:   c,
		planner_:   planner.NewSimplePlanner(c),
		optimizer_: optimizer.NewOptimizer(c),
		engine_:    engine,
		execCtx_:   executors.NewExecutorContext(c),
	}
}

func (db *KujiraDB) GetCatalog() *catalog.Catalog {
	return db.catalog_
}

func (db *KujiraDB) ExecuteSQL(sqlStr string) (error, [][]interface{}) {
	err, qinfo := parser.ProcessSQLStr(&sqlStr)
	if err != nil {
		return err, nil
	}

	err, plan := db.planner_.MakePlan(qinfo)
	if err != nil {
		return err, nil
	}

	err, bestPlan := db.optimizer_.Optimize(plan)
	if err != nil {
		return err, nil
	}
	if common.EnableDebug {
		fmt.Println(bestPlan.GetDebugStr())
	}

	return db.engine_.Execute(bestPlan, db.execCtx_)
}
