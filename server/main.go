package main

import (
	"log"
	"net/http"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/catalog/index_constants"
	"github.com/ryogrid/KujiraDB/lib/execution/executors"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
	"github.com/ryogrid/KujiraDB/lib/kujira"
)

// noStorageEngine stands in until a physical engine is linked. queries
// optimize and answer with empty result sets.
type noStorageEngine struct{}

func (e *noStorageEngine) Execute(plan *plans.ExecutionPlan, ctx *executors.ExecutorContext) (error, [][]interface{}) {
	return nil, make([][]interface{}, 0)
}

func main() {
	c := catalog.NewCatalog()
	c.CreateCollection("pools", []*catalog.IndexMeta{
		catalog.NewIndexMeta("idx_a", index_constants.INDEX_KIND_SKIP_LIST, []string{"a"}),
		catalog.NewIndexMeta("idx_hash_a", index_constants.INDEX_KIND_HASH, []string{"a"}),
	})

	db := kujira.NewKujiraDB(c, &noStorageEngine{})
	api := kujira.NewCursorAPI(db)

	handler, err := api.MakeHandler()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Server started")
	log.Fatal(http.ListenAndServe(
		"0.0.0.0:19999",
		handler,
	))
}
