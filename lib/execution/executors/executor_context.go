package executors

import (
	"github.com/ryogrid/KujiraDB/lib/catalog"
)

// ExecutorContext carries everything a physical engine needs while
// materializing one plan.
type ExecutorContext struct {
	catalog_ *catalog.Catalog
}

func NewExecutorContext(c *catalog.Catalog) *ExecutorContext {
	return &ExecutorContext{c}
}

func (ctx *ExecutorContext) GetCatalog() *catalog.Catalog {
	return ctx.catalog_
}
