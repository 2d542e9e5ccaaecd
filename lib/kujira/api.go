package kujira

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ryogrid/KujiraDB/lib/catalog"
	"github.com/ryogrid/KujiraDB/lib/common"
	"github.com/ugorji/go/codec"
)

// ArangoDB compatible error numbers surfaced by the cursor API.
const (
	errNumCorruptedJson      = 600
	errNumCollectionNotFound = 1203
	errNumQueryParse         = 1501
	errNumQueryEmpty         = 1502
	errNumBindParamsInvalid  = 1550
	errNumCursorNotFound     = 1600
)

type cursorRequest struct {
	Query     string                 `json:"query"`
	Count     bool                   `json:"count"`
	BatchSize int                    `json:"batchSize"`
	TTL       float64                `json:"ttl"`
	BindVars  map[string]interface{} `json:"bindVars"`
	Options   map[string]interface{} `json:"options"`
}

type createCursorResponse struct {
	Error   bool            `json:"error"`
	Code    int             `json:"code"`
	Result  [][]interface{} `json:"result"`
	HasMore bool            `json:"hasMore"`
	Count   *int            `json:"count,omitempty"`
	ID      string          `json:"id,omitempty"`
}

type advanceCursorResponse struct {
	ID      string          `json:"id"`
	Result  [][]interface{} `json:"result"`
	HasMore bool            `json:"hasMore"`
	Count   *int            `json:"count,omitempty"`
}

type deleteCursorResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error        bool   `json:"error"`
	Code         int    `json:"code"`
	ErrorNum     int    `json:"errorNum"`
	ErrorMessage string `json:"errorMessage"`
}

// CursorAPI exposes query execution and batched result retrieval over
// HTTP.
type CursorAPI struct {
	db      *KujiraDB
	cursors *CursorManager
}

func NewCursorAPI(db *KujiraDB) *CursorAPI {
	return &CursorAPI{db, NewCursorManager()}
}

func (api *CursorAPI) MakeHandler() (http.Handler, error) {
	restAPI := rest.NewApi()
	restAPI.Use(rest.DefaultDevStack...)
	router, err := rest.MakeRouter(
		&rest.Route{HttpMethod: "POST", PathExp: "/_api/cursor", Func: api.PostCursor},
		&rest.Route{HttpMethod: "POST", PathExp: "/_api/cursor-msgpack", Func: api.PostCursorMsgPack},
		&rest.Route{HttpMethod: "PUT", PathExp: "/_api/cursor/:id", Func: api.PutCursor},
		&rest.Route{HttpMethod: "PUT", PathExp: "/_api/cursor", Func: api.missingCursorID},
		&rest.Route{HttpMethod: "DELETE", PathExp: "/_api/cursor/:id", Func: api.DeleteCursor},
		&rest.Route{HttpMethod: "DELETE", PathExp: "/_api/cursor", Func: api.missingCursorID},
		&rest.Route{HttpMethod: "GET", PathExp: "/_api/cursor", Func: api.methodNotAllowed},
		&rest.Route{HttpMethod: "GET", PathExp: "/_api/cursor/:id", Func: api.methodNotAllowed},
	)
	if err != nil {
		return nil, err
	}
	restAPI.SetApp(router)
	return restAPI.MakeHandler(), nil
}

func writeError(w rest.ResponseWriter, status int, errorNum int, msg string) {
	w.WriteHeader(status)
	w.WriteJson(&errorResponse{true, status, errorNum, msg})
}

// executeQuery runs the request's query and builds the first cursor batch.
// the returned response is nil when an error was already written.
func (api *CursorAPI) executeQuery(w rest.ResponseWriter, req *rest.Request) *createCursorResponse {
	input := cursorRequest{}
	if err := req.DecodeJsonPayload(&input); err != nil {
		writeError(w, http.StatusBadRequest, errNumCorruptedJson, "request body is not valid json")
		return nil
	}
	if strings.TrimSpace(input.Query) == "" {
		writeError(w, http.StatusBadRequest, errNumQueryEmpty, "query is empty")
		return nil
	}
	// the query surface has no bind parameter syntax, so every supplied
	// binding is undeclared. options only tune features the engine does
	// not expose and are accepted and ignored
	if len(input.BindVars) > 0 {
		writeError(w, http.StatusBadRequest, errNumBindParamsInvalid, "query does not declare bind parameters")
		return nil
	}

	err, rows := api.db.ExecuteSQL(input.Query)
	if err != nil {
		if errors.Is(err, catalog.ErrCollectionNotFound) {
			writeError(w, http.StatusNotFound, errNumCollectionNotFound, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, errNumQueryParse, err.Error())
		}
		return nil
	}

	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = common.DefaultBatchSize
	}
	ttl := common.DefaultCursorTTL
	if input.TTL > 0 {
		ttl = time.Duration(input.TTL * float64(time.Second))
	}

	batch := api.cursors.OpenCursor(rows, batchSize, ttl, input.Count)
	resp := &createCursorResponse{
		Error:   false,
		Code:    http.StatusCreated,
		Result:  batch.Rows,
		HasMore: batch.HasMore,
		ID:      batch.ID,
	}
	if batch.HasCount {
		count := batch.Count
		resp.Count = &count
	}
	return resp
}

func (api *CursorAPI) PostCursor(w rest.ResponseWriter, req *rest.Request) {
	resp := api.executeQuery(w, req)
	if resp == nil {
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.WriteJson(resp)
}

func (api *CursorAPI) PostCursorMsgPack(w rest.ResponseWriter, req *rest.Request) {
	resp := api.executeQuery(w, req)
	if resp == nil {
		return
	}

	var buf bytes.Buffer
	var h codec.Handle = new(codec.MsgpackHandle)
	enc := codec.NewEncoder(&buf, h)
	if err := enc.Encode(resp); err != nil {
		http.Error(w.(http.ResponseWriter), err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.(http.ResponseWriter).WriteHeader(http.StatusCreated)
	w.(http.ResponseWriter).Write(buf.Bytes())
}

func (api *CursorAPI) PutCursor(w rest.ResponseWriter, req *rest.Request) {
	id := req.PathParam("id")
	err, batch := api.cursors.Advance(id)
	if err != nil {
		writeError(w, http.StatusNotFound, errNumCursorNotFound, "cursor not found")
		return
	}
	resp := &advanceCursorResponse{
		ID:      batch.ID,
		Result:  batch.Rows,
		HasMore: batch.HasMore,
	}
	if batch.HasCount {
		count := batch.Count
		resp.Count = &count
	}
	w.WriteJson(resp)
}

func (api *CursorAPI) DeleteCursor(w rest.ResponseWriter, req *rest.Request) {
	id := req.PathParam("id")
	if err := api.cursors.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, errNumCursorNotFound, "cursor not found")
		return
	}
	w.WriteHeader(http.StatusAccepted)
	w.WriteJson(&deleteCursorResponse{id})
}

func (api *CursorAPI) missingCursorID(w rest.ResponseWriter, req *rest.Request) {
	writeError(w, http.StatusBadRequest, http.StatusBadRequest, "expecting /_api/cursor/<cursor-id>")
}

func (api *CursorAPI) methodNotAllowed(w rest.ResponseWriter, req *rest.Request) {
	writeError(w, http.StatusMethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed")
}
