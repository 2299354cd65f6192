package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchStreamHandler_StreamDeliversInitialResults(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listFixture))
	})
	handler := NewSearchStreamHandler(gw, nil, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/api/search/stream?search=solar", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.Stream(rec, req) // returns when ctx expires

	body := rec.Body.String()
	assert.Contains(t, body, "event: session")
	assert.Contains(t, body, "event: loading")
	assert.Contains(t, body, "event: results")
	assert.Contains(t, body, "Sunrise Solar")
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	// The fetcher was torn down on disconnect.
	assert.Equal(t, 0, handler.SessionCount())
}

func TestSearchStreamHandler_StreamReportsGatewayError(t *testing.T) {
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"upstream exploded"}`))
	})
	handler := NewSearchStreamHandler(gw, nil, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	rec := httptest.NewRecorder()
	handler.Stream(rec, httptest.NewRequest("GET", "/api/search/stream", nil).WithContext(ctx))

	assert.Contains(t, rec.Body.String(), "event: error")
	assert.Contains(t, rec.Body.String(), "upstream exploded")
}

func TestSearchStreamHandler_UpdateUnknownSession(t *testing.T) {
	handler := NewSearchStreamHandler(fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {}), nil, time.Millisecond)

	req := httptest.NewRequest("POST", "/api/search/sessions/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchStreamHandler_UpdateDebouncesFilterEdits(t *testing.T) {
	var mu sync.Mutex
	var queries []string
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Query().Get("search"))
		mu.Unlock()
		w.Write([]byte(`{"meta":{"total":0,"totalPages":0,"currentPage":1,"pageSize":10},"data":[]}`))
	})
	handler := NewSearchStreamHandler(gw, nil, 40*time.Millisecond)

	streamCtx, cancelStream := context.WithCancel(context.Background())

	go func() {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/search/stream", nil).WithContext(streamCtx)
		handler.Stream(rec, req)
	}()
	id := awaitSession(t, handler)

	// A burst of keystroke edits.
	for _, q := range []string{"s", "so", "sol", "solar"} {
		postUpdate(t, handler, id, "search="+q)
		time.Sleep(5 * time.Millisecond)
	}

	// Let the settle window elapse and the fetch land.
	time.Sleep(200 * time.Millisecond)
	cancelStream()

	mu.Lock()
	defer mu.Unlock()
	// One initial fetch plus exactly one debounced fetch for the burst.
	assert.Len(t, queries, 2)
	assert.Equal(t, "solar", queries[len(queries)-1])
}

func TestSearchStreamHandler_FilterEditResetsToFirstPage(t *testing.T) {
	var mu sync.Mutex
	var pages []string
	gw := fakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		pages = append(pages, r.URL.Query().Get("page"))
		mu.Unlock()
		w.Write([]byte(`{"meta":{"total":50,"totalPages":5,"currentPage":1,"pageSize":10},"data":[]}`))
	})
	handler := NewSearchStreamHandler(gw, nil, 20*time.Millisecond)

	streamCtx, cancelStream := context.WithCancel(context.Background())
	go func() {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/search/stream", nil).WithContext(streamCtx)
		handler.Stream(rec, req)
	}()
	id := awaitSession(t, handler)

	// Let the initial fetch land before moving pages.
	time.Sleep(100 * time.Millisecond)

	// A pure page move dispatches immediately and keeps the requested page.
	postUpdate(t, handler, id, "page=3")
	time.Sleep(100 * time.Millisecond)

	// Editing a filter while on page 3 lands back on page 1, even though the
	// posted state still carries page=3.
	postUpdate(t, handler, id, "search=solar&page=3")
	time.Sleep(200 * time.Millisecond)
	cancelStream()

	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, pages, 3) {
		assert.Equal(t, "1", pages[0])
		assert.Equal(t, "3", pages[1])
		assert.Equal(t, "1", pages[2])
	}
}

// awaitSession polls until the stream goroutine registers its session and
// returns the session ID.
func awaitSession(t *testing.T, handler *SearchStreamHandler) string {
	t.Helper()
	for i := 0; i < 200; i++ {
		handler.mu.RLock()
		for id := range handler.sessions {
			handler.mu.RUnlock()
			return id
		}
		handler.mu.RUnlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("stream session never registered")
	return ""
}

func postUpdate(t *testing.T, handler *SearchStreamHandler, id, query string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/search/sessions/"+id+"?"+query, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.Update(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
