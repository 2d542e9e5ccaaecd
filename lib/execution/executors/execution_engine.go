package executors

import (
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
)

// ExecutionEngine materializes result rows for an optimized plan. The
// physical operators live outside this module, so callers inject an
// implementation.
type ExecutionEngine interface {
	Execute(plan *plans.ExecutionPlan, ctx *ExecutorContext) (error, [][]interface{})
}
