package main

import (
	"fmt"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/catalog/index_constants"
	"github.com/ryogrid/KujiraDB/lib/parser"
	"github.com/ryogrid/KujiraDB/lib/planner"
	"github.com/ryogrid/KujiraDB/lib/planner/optimizer"
)

// this entry point is used for running snippet code for debugging now...
func main() {
	c := catalog.NewCatalog()
	c.CreateCollection("pools", []*catalog.IndexMeta{
		catalog.NewIndexMeta("idx_a", index_constants.INDEX_KIND_SKIP_LIST, []string{"a"}),
	})

	sqlStr := "SELECT * FROM pools WHERE a > 1 AND a < 10;"
	err, qinfo := parser.ProcessSQLStr(&sqlStr)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}

	err, plan := planner.NewSimplePlanner(c).MakePlan(qinfo)
	if err != nil {
		fmt.Printf("plan error: %v\n", err)
		return
	}
	fmt.Println("initial plan:")
	fmt.Println(plan.GetDebugStr())

	err, bestPlan := optimizer.NewOptimizer(c).Optimize(plan)
	if err != nil {
		fmt.Printf("optimize error: %v\n", err)
		return
	}
	fmt.Println("optimized plan:")
	fmt.Println(bestPlan.GetDebugStr())
}
