package catalog

import (
	"github.com/ryogrid/KujiraDB/lib/catalog/index_constants"
)

// IndexMeta describes one index of a collection. Attrs_ is the ordered
// attribute list the index is built over.
type IndexMeta struct {
	Name_  string
	Kind_  index_constants.IndexKind
	Attrs_ []string
}

func NewIndexMeta(name string, kind index_constants.IndexKind, attrs []string) *IndexMeta {
	return &IndexMeta{name, kind, attrs}
}

type CollectionMetadata struct {
	name    string
	indexes []*IndexMeta
}

func (m *CollectionMetadata) Name() string {
	return m.name
}

// GetIndexes returns the indexes that can serve a scan constrained on the
// given attributes. Hash indexes need every index attribute constrained,
// skip list indexes only their first one. Order follows index creation
// order so candidate enumeration stays deterministic.
func (m *CollectionMetadata) GetIndexes(attrs []string) []*IndexMeta {
	matched := make([]*IndexMeta, 0)
	for _, index := range m.indexes {
		if len(index.Attrs_) == 0 {
			continue
		}
		switch {
		case index.Kind_ == index_constants.INDEX_KIND_HASH:
			if containsAll(attrs, index.Attrs_) {
				matched = append(matched, index)
			}
		case index.Kind_.IsOrdered():
			if contains(attrs, index.Attrs_[0]) {
				matched = append(matched, index)
			}
		}
	}
	return matched
}

func contains(attrs []string, attr string) bool {
	for _, a := range attrs {
		if a == attr {
			return true
		}
	}
	return false
}

func containsAll(attrs []string, needed []string) bool {
	for _, n := range needed {
		if !contains(attrs, n) {
			return false
		}
	}
	return true
}
