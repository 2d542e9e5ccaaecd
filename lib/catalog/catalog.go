package catalog

import (
	"errors"
)

var ErrCollectionNotFound = errors.New("collection not found")
var ErrCollectionExists = errors.New("collection already exists")

// Catalog is the in-memory registry of collections and their indexes. The
// optimizer consults it for index candidates, the planner for existence
// checks. Document storage itself lives behind the execution engine.
type Catalog struct {
	collections map[string]*CollectionMetadata
}

func NewCatalog() *Catalog {
	return &Catalog{make(map[string]*CollectionMetadata)}
}

func (c *Catalog) CreateCollection(name string, indexes []*IndexMeta) (error, *CollectionMetadata) {
	if _, ok := c.collections[name]; ok {
		return ErrCollectionExists, nil
	}
	meta := &CollectionMetadata{name, indexes}
	c.collections[name] = meta
	return nil, meta
}

func (c *Catalog) GetCollection(name string) (error, *CollectionMetadata) {
	meta, ok := c.collections[name]
	if !ok {
		return ErrCollectionNotFound, nil
	}
	return nil, meta
}
