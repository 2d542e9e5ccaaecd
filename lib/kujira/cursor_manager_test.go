package kujira

import (
	"testing"
	"time"

	testingpkg "github.com/ryogrid/KujiraDB/lib/testing/testing_assert"
)

func makeRows(n int) [][]interface{} {
	rows := make([][]interface{}, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []interface{}{int64(i)})
	}
	return rows
}

func TestOpenCursorSingleBatch(t *testing.T) {
	cm := NewCursorManager()
	batch := cm.OpenCursor(makeRows(3), 10, time.Minute, true)

	testingpkg.Equals(t, 3, len(batch.Rows))
	testingpkg.SimpleAssert(t, !batch.HasMore)
	testingpkg.Equals(t, "", batch.ID)
	testingpkg.Equals(t, 3, batch.Count)
	testingpkg.SimpleAssert(t, batch.HasCount)
	// nothing retained server side
	testingpkg.Equals(t, 0, cm.CountCursors())
}

func TestCursorBatchingAndExhaustion(t *testing.T) {
	cm := NewCursorManager()
	batch := cm.OpenCursor(makeRows(5), 2, time.Minute, false)

	testingpkg.Equals(t, 2, len(batch.Rows))
	testingpkg.SimpleAssert(t, batch.HasMore)
	testingpkg.SimpleAssert(t, batch.ID != "")
	testingpkg.Equals(t, 1, cm.CountCursors())

	err, batch2 := cm.Advance(batch.ID)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 2, len(batch2.Rows))
	testingpkg.SimpleAssert(t, batch2.HasMore)

	err, batch3 := cm.Advance(batch.ID)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 1, len(batch3.Rows))
	testingpkg.SimpleAssert(t, !batch3.HasMore)
	testingpkg.Equals(t, batch.ID, batch3.ID)
	// exhaustion reclaims the cursor immediately
	testingpkg.Equals(t, 0, cm.CountCursors())

	err, _ = cm.Advance(batch.ID)
	testingpkg.SimpleAssert(t, err == ErrCursorNotFound)
}

func TestCursorDelete(t *testing.T) {
	cm := NewCursorManager()
	batch := cm.OpenCursor(makeRows(5), 2, time.Minute, false)

	testingpkg.Ok(t, cm.Delete(batch.ID))
	testingpkg.SimpleAssert(t, cm.Delete(batch.ID) == ErrCursorNotFound)
	testingpkg.SimpleAssert(t, cm.Delete("12345") == ErrCursorNotFound)
}

func TestCursorTTLExpiry(t *testing.T) {
	cm := NewCursorManager()
	batch := cm.OpenCursor(makeRows(5), 2, time.Millisecond, false)

	time.Sleep(5 * time.Millisecond)
	err, _ := cm.Advance(batch.ID)
	testingpkg.SimpleAssert(t, err == ErrCursorNotFound)
	testingpkg.Equals(t, 0, cm.CountCursors())
}

func TestRemoveExpiredSweep(t *testing.T) {
	cm := NewCursorManager()
	cm.OpenCursor(makeRows(5), 2, time.Millisecond, false)
	keep := cm.OpenCursor(makeRows(5), 2, time.Minute, false)

	time.Sleep(5 * time.Millisecond)
	testingpkg.Equals(t, 1, cm.RemoveExpired())
	testingpkg.Equals(t, 1, cm.CountCursors())

	err, _ := cm.Advance(keep.ID)
	testingpkg.Ok(t, err)
}

func TestCursorIDsAreUnique(t *testing.T) {
	cm := NewCursorManager()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		batch := cm.OpenCursor(makeRows(5), 2, time.Minute, false)
		testingpkg.SimpleAssert(t, !seen[batch.ID])
		seen[batch.ID] = true
	}
}
