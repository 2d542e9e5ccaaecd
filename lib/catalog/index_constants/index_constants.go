package index_constants

type IndexKind int32

const (
	INDEX_KIND_INVALID IndexKind = iota
	INDEX_KIND_UNIQ_SKIP_LIST
	INDEX_KIND_SKIP_LIST
	INDEX_KIND_HASH
)

// IsOrdered reports whether the index keeps its entries sorted and can
// therefore serve range conditions, not only equality lookups.
func (k IndexKind) IsOrdered() bool {
	return k == INDEX_KIND_SKIP_LIST || k == INDEX_KIND_UNIQ_SKIP_LIST
}

func (k IndexKind) String() string {
	switch k {
	case INDEX_KIND_UNIQ_SKIP_LIST:
		return "uniq_skip_list"
	case INDEX_KIND_SKIP_LIST:
		return "skip_list"
	case INDEX_KIND_HASH:
		return "hash"
	default:
		return "invalid"
	}
}
