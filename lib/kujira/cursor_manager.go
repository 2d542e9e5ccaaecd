package kujira

import (
	"errors"
	"strconv"
	"time"

	"github.com/sasha-s/go-deadlock"
	"github.com/spaolacci/murmur3"
)

var ErrCursorNotFound = errors.New("cursor not found")

// CursorBatch is one page of results handed to the HTTP layer. ID is empty
// when the cursor was fully drained and nothing remains server side.
type CursorBatch struct {
	ID       string
	Rows     [][]interface{}
	HasMore  bool
	Count    int
	HasCount bool
}

type cursor struct {
	id        string
	rows      [][]interface{}
	pos       int
	batchSize int
	count     bool
	expiresAt time.Time
}

// CursorManager keeps result sets alive between batched reads. Cursors die
// on explicit delete, on exhaustion and on TTL expiry, whichever comes
// first.
type CursorManager struct {
	mutex   deadlock.Mutex
	cursors map[string]*cursor
	idSeed  uint64
}

func NewCursorManager() *CursorManager {
	return &CursorManager{cursors: make(map[string]*cursor)}
}

func (cm *CursorManager) genCursorID() string {
	cm.idSeed++
	payload := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.FormatUint(cm.idSeed, 10)
	hashed := murmur3.Sum64([]byte(payload))
	return strconv.FormatUint(hashed, 10)
}

// OpenCursor stores the result set and returns its first batch. when the
// first batch already drains everything no cursor is retained and the
// batch carries no id.
func (cm *CursorManager) OpenCursor(rows [][]interface{}, batchSize int, ttl time.Duration, withCount bool) *CursorBatch {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if rows == nil {
		// keep the result field a JSON array, never null
		rows = make([][]interface{}, 0)
	}
	cur := &cursor{
		rows:      rows,
		batchSize: batchSize,
		count:     withCount,
		expiresAt: time.Now().Add(ttl),
	}
	batch := cur.nextBatch()
	if batch.HasMore {
		cur.id = cm.genCursorID()
		batch.ID = cur.id
		cm.cursors[cur.id] = cur
	}
	return batch
}

// Advance returns the next batch of a stored cursor. drained and expired
// cursors are reclaimed immediately.
func (cm *CursorManager) Advance(id string) (error, *CursorBatch) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cur, ok := cm.cursors[id]
	if !ok {
		return ErrCursorNotFound, nil
	}
	if time.Now().After(cur.expiresAt) {
		delete(cm.cursors, id)
		return ErrCursorNotFound, nil
	}
	batch := cur.nextBatch()
	batch.ID = id
	if !batch.HasMore {
		delete(cm.cursors, id)
	}
	return nil, batch
}

func (cm *CursorManager) Delete(id string) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if _, ok := cm.cursors[id]; !ok {
		return ErrCursorNotFound
	}
	delete(cm.cursors, id)
	return nil
}

// RemoveExpired sweeps out cursors past their TTL and reports how many
// were dropped.
func (cm *CursorManager) RemoveExpired() int {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	now := time.Now()
	removed := 0
	for id, cur := range cm.cursors {
		if now.After(cur.expiresAt) {
			delete(cm.cursors, id)
			removed++
		}
	}
	return removed
}

func (cm *CursorManager) CountCursors() int {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	return len(cm.cursors)
}

func (c *cursor) nextBatch() *CursorBatch {
	end := c.pos + c.batchSize
	if end > len(c.rows) {
		end = len(c.rows)
	}
	batch := &CursorBatch{
		Rows:     c.rows[c.pos:end],
		HasMore:  end < len(c.rows),
		Count:    len(c.rows),
		HasCount: c.count,
	}
	c.pos = end
	return batch
}
