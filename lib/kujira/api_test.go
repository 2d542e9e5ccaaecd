package kujira

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/catalog/index_constants"
	"github.com/ryogrid/KujiraDB/lib/execution/executors"
	"github.com/ryogrid/KujiraDB/lib/execution/plans"
	testingpkg "github.com/ryogrid/KujiraDB/lib/testing/testing_assert"
	"github.com/ugorji/go/codec"
)

// fixedRowsEngine answers every plan with the same canned rows.
type fixedRowsEngine struct {
	rows [][]interface{}
}

func (e *fixedRowsEngine) Execute(plan *plans.ExecutionPlan, ctx *executors.ExecutorContext) (error, [][]interface{}) {
	return nil, e.rows
}

func setupHandler(t *testing.T, rows [][]interface{}) http.Handler {
	c := catalog.NewCatalog()
	err, _ := c.CreateCollection("pools", []*catalog.IndexMeta{
		catalog.NewIndexMeta("idx_a", index_constants.INDEX_KIND_SKIP_LIST, []string{"a"}),
	})
	testingpkg.Ok(t, err)

	db := NewKujiraDB(c, &fixedRowsEngine{rows})
	handler, err := NewCursorAPI(db).MakeHandler()
	testingpkg.Ok(t, err)
	return handler
}

func doJSON(t *testing.T, handler http.Handler, method string, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reqBody *bytes.Buffer
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	decoded := make(map[string]interface{})
	if len(rec.Body.Bytes()) > 0 {
		json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestPostCursorReturnsAllRowsInOneBatch(t *testing.T) {
	handler := setupHandler(t, makeRows(3))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM pools WHERE a = 5;", "count": true}`)

	testingpkg.Equals(t, http.StatusCreated, rec.Code)
	testingpkg.Equals(t, false, body["error"])
	testingpkg.Equals(t, float64(http.StatusCreated), body["code"])
	testingpkg.Equals(t, 3, len(body["result"].([]interface{})))
	testingpkg.Equals(t, false, body["hasMore"])
	testingpkg.Equals(t, float64(3), body["count"])
	_, hasID := body["id"]
	testingpkg.SimpleAssert(t, !hasID)
}

func TestPostCursorBatchedThenPutAndExhaust(t *testing.T) {
	handler := setupHandler(t, makeRows(3))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM pools;", "batchSize": 2}`)

	testingpkg.Equals(t, http.StatusCreated, rec.Code)
	testingpkg.Equals(t, 2, len(body["result"].([]interface{})))
	testingpkg.Equals(t, true, body["hasMore"])
	id := body["id"].(string)
	testingpkg.SimpleAssert(t, id != "")

	rec, body = doJSON(t, handler, "PUT", "/_api/cursor/"+id, "")
	testingpkg.Equals(t, http.StatusOK, rec.Code)
	testingpkg.Equals(t, id, body["id"])
	testingpkg.Equals(t, 1, len(body["result"].([]interface{})))
	testingpkg.Equals(t, false, body["hasMore"])

	// the drained cursor is gone
	rec, _ = doJSON(t, handler, "PUT", "/_api/cursor/"+id, "")
	testingpkg.Equals(t, http.StatusNotFound, rec.Code)
}

func TestPostCursorEmptyQuery(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor", `{"query": "  "}`)

	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, true, body["error"])
	testingpkg.Equals(t, float64(1502), body["errorNum"])
}

func TestPostCursorMissingQueryField(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor", `{"count": true}`)

	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, float64(1502), body["errorNum"])
}

func TestPostCursorUnknownCollection(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM nosuch;"}`)

	testingpkg.Equals(t, http.StatusNotFound, rec.Code)
	testingpkg.Equals(t, true, body["error"])
	testingpkg.Equals(t, float64(1203), body["errorNum"])
}

func TestPostCursorUnparsableQuery(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT FROM WHERE;"}`)

	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, float64(1501), body["errorNum"])
}

func TestPostCursorCommentOnlyQuery(t *testing.T) {
	// not empty, but no statement either. must surface as a structured
	// parse error, never a handler panic
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "-- hi"}`)

	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, true, body["error"])
	testingpkg.Equals(t, float64(1501), body["errorNum"])
}

func TestPostCursorRejectsBindVars(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM pools;", "bindVars": {"x": 1}}`)

	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, true, body["error"])
	testingpkg.Equals(t, float64(1550), body["errorNum"])
}

func TestPostCursorIgnoresOptions(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, _ := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM pools;", "options": {"fullCount": true}}`)

	testingpkg.Equals(t, http.StatusCreated, rec.Code)
}

func TestCursorMethodNotAllowed(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, _ := doJSON(t, handler, "GET", "/_api/cursor", "")
	testingpkg.Equals(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPutCursorMissingID(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "PUT", "/_api/cursor", "")
	testingpkg.Equals(t, http.StatusBadRequest, rec.Code)
	testingpkg.Equals(t, true, body["error"])
}

func TestPutCursorUnknownID(t *testing.T) {
	handler := setupHandler(t, makeRows(1))
	rec, body := doJSON(t, handler, "PUT", "/_api/cursor/99999", "")
	testingpkg.Equals(t, http.StatusNotFound, rec.Code)
	testingpkg.Equals(t, float64(1600), body["errorNum"])
}

func TestDeleteCursor(t *testing.T) {
	handler := setupHandler(t, makeRows(3))
	_, body := doJSON(t, handler, "POST", "/_api/cursor",
		`{"query": "SELECT * FROM pools;", "batchSize": 1}`)
	id := body["id"].(string)

	rec, body := doJSON(t, handler, "DELETE", "/_api/cursor/"+id, "")
	testingpkg.Equals(t, http.StatusAccepted, rec.Code)
	testingpkg.Equals(t, id, body["id"])

	rec, _ = doJSON(t, handler, "DELETE", "/_api/cursor/"+id, "")
	testingpkg.Equals(t, http.StatusNotFound, rec.Code)
}

func TestPostCursorMsgPack(t *testing.T) {
	handler := setupHandler(t, makeRows(2))
	req := httptest.NewRequest("POST", "/_api/cursor-msgpack",
		bytes.NewBufferString(`{"query": "SELECT * FROM pools;"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testingpkg.Equals(t, http.StatusCreated, rec.Code)
	testingpkg.Equals(t, "application/octet-stream", rec.Header().Get("Content-Type"))

	var h codec.Handle = new(codec.MsgpackHandle)
	dec := codec.NewDecoderBytes(rec.Body.Bytes(), h)
	var decoded map[string]interface{}
	testingpkg.Ok(t, dec.Decode(&decoded))
}
