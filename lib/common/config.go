package common

import "time"

const EnableDebug bool = false //true

const (
	// default number of result rows in one cursor batch
	DefaultBatchSize = 1000
	// cursor lifetime used when a request does not pass ttl
	DefaultCursorTTL = 30 * time.Second
	// safety valve against rule fan-out. one UseIndexRange invocation may
	// emit one clone per matching index candidate
	MaxOptimizedPlanNum = 128
)
