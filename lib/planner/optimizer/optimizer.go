package optimizer

import (
	"fmt"

	stack "github.com/golang-collections/collections/stack"
	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
)

// RuleFunc rewrites a plan. it may mutate the plan in place and may append
// rewritten clones to out. the returned flag tells the optimizer whether
// the incoming plan itself stays in play.
type RuleFunc func(plan *plans.ExecutionPlan, out *PlanList) (error, bool)

type Rule struct {
	Name string
	Fn   RuleFunc
}

// PlanList collects the candidate plans a rule emits.
type PlanList struct {
	plans []*plans.ExecutionPlan
}

func (pl *PlanList) Add(plan *plans.ExecutionPlan) {
	pl.plans = append(pl.plans, plan)
}

func (pl *PlanList) Plans() []*plans.ExecutionPlan {
	return pl.plans
}

type CostAndPlan struct {
	cost uint64
	plan *plans.ExecutionPlan
}

/**
 * Optimizer drains a worklist of (plan, next rule index) entries.
 *
 * Each step runs one rule on one plan. Kept plans and emitted clones both
 * re-enter the worklist at the next rule index, so every plan sees every
 * rule at most once and the loop terminates. Plans that ran out of rules
 * become candidates, and the cheapest candidate wins.
 */
type Optimizer struct {
	catalog_ *catalog.Catalog
	rules    []Rule
}

func NewOptimizer(c *catalog.Catalog) *Optimizer {
	o := &Optimizer{catalog_: c}
	o.rules = []Rule{
		{"remove-unnecessary-filters", o.RemoveUnnecessaryFilters},
		{"remove-unnecessary-calculations", o.RemoveUnnecessaryCalculations},
		{"use-index-range", o.UseIndexRange},
	}
	return o
}

func (o *Optimizer) Optimize(plan *plans.ExecutionPlan) (error, *plans.ExecutionPlan) {
	worklist := stack.New()
	worklist.Push(&pair.Pair[*plans.ExecutionPlan, int]{First: plan, Second: 0})
	candidates := make([]*plans.ExecutionPlan, 0)

	for worklist.Len() > 0 {
		entry := worklist.Pop().(*pair.Pair[*plans.ExecutionPlan, int])
		curPlan, ruleIdx := entry.First, entry.Second
		if ruleIdx >= len(o.rules) {
			candidates = append(candidates, curPlan)
			continue
		}

		out := new(PlanList)
		err, keep := o.rules[ruleIdx].Fn(curPlan, out)
		if err != nil {
			return err, nil
		}
		if common.EnableDebug {
			fmt.Printf("rule %s: keep=%v emitted=%d\n", o.rules[ruleIdx].Name, keep, len(out.Plans()))
		}
		if keep {
			worklist.Push(&pair.Pair[*plans.ExecutionPlan, int]{First: curPlan, Second: ruleIdx + 1})
		}
		for _, newPlan := range out.Plans() {
			if len(candidates)+worklist.Len() >= common.MaxOptimizedPlanNum {
				break
			}
			worklist.Push(&pair.Pair[*plans.ExecutionPlan, int]{First: newPlan, Second: ruleIdx + 1})
		}
	}

	common.KJ_Assert(len(candidates) > 0, "optimization left no candidate plan!")
	return nil, ChooseBestPlan(candidates)
}

// ChooseBestPlan picks the cheapest candidate. strict comparison keeps the
// first-discovered plan on ties.
func ChooseBestPlan(candidates []*plans.ExecutionPlan) *plans.ExecutionPlan {
	best := CostAndPlan{EstimateCost(candidates[0]), candidates[0]}
	for _, c := range candidates[1:] {
		cost := EstimateCost(c)
		if cost < best.cost {
			best = CostAndPlan{cost, c}
		}
	}
	return best.plan
}

// EstimateCost scores a plan by node mix. a full collection scan dominates
// everything else, an index range scan is near free.
func EstimateCost(plan *plans.ExecutionPlan) uint64 {
	var cost uint64
	node := plan.GetRoot()
	for node != nil {
		switch node.GetType() {
		case plans.EnumerateCollection:
			cost += 1000
		case plans.IndexRange:
			cost += 1
		case plans.Filter:
			cost += 10
		case plans.Calculation:
			cost += 5
		default:
			cost += 1
		}
		deps := node.GetDependencies()
		if len(deps) == 0 {
			break
		}
		node = deps[0]
	}
	return cost
}
