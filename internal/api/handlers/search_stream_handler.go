package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sTrAy74/swi-web/internal/discovery"
	"github.com/sTrAy74/swi-web/internal/gateway"
	"github.com/sTrAy74/swi-web/internal/infrastructure/observability"
)

type sseEvent struct {
	name string
	data any
}

// searchSession is one live search: a debounced fetcher plus the channel
// its results stream out on. State edits arrive over a separate endpoint
// keyed by the session ID.
type searchSession struct {
	fetcher *discovery.Fetcher
	events  chan sseEvent

	mu     sync.Mutex
	filter discovery.FilterState
	page   discovery.PageState
}

// SearchStreamHandler serves live provider search over Server-Sent Events.
// A client opens the stream, receives its session ID, then posts filter
// edits as they happen; the fetcher debounces them so a burst of
// keystrokes becomes one upstream request, and only the latest state's
// results ever come back down the stream.
type SearchStreamHandler struct {
	gw       *gateway.Client
	metrics  *observability.Metrics
	debounce time.Duration

	mu       sync.RWMutex
	sessions map[string]*searchSession
}

// NewSearchStreamHandler creates a search stream handler
func NewSearchStreamHandler(gw *gateway.Client, metrics *observability.Metrics, debounce time.Duration) *SearchStreamHandler {
	return &SearchStreamHandler{
		gw:       gw,
		metrics:  metrics,
		debounce: debounce,
		sessions: make(map[string]*searchSession),
	}
}

// Stream handles GET /api/search/stream. The initial filter state comes
// from the request's query parameters.
func (h *SearchStreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sess := &searchSession{events: make(chan sseEvent, 16)}
	sess.fetcher = discovery.NewFetcher(discovery.FetcherConfig{
		Fetch:    h.fetch,
		Debounce: h.debounce,
		OnLoading: func(loading bool) {
			sess.push(sseEvent{name: "loading", data: map[string]bool{"loading": loading}})
		},
		OnResult: func(result discovery.Result) {
			if result.Err != nil {
				sess.push(sseEvent{name: "error", data: map[string]string{
					"error": gateway.UserMessage(result.Err, "Search failed"),
				}})
				return
			}
			sess.push(sseEvent{name: "results", data: h.project(result)})
		},
	})

	id := uuid.New().String()
	h.register(id, sess)
	defer h.unregister(id)

	sendEvent(w, "session", map[string]string{"id": id})
	flusher.Flush()

	// Kick off the initial search with whatever state the URL carried.
	filter, page := discovery.Decode(r.URL.Query())
	sess.setState(filter, page)
	observability.RecordSearch(r.Context(), h.metrics)
	sess.fetcher.RequestNow(filter, page)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			observability.LoggerFromContext(r.Context()).Debug().Str("session_id", id).Msg("search stream closed")
			return
		case <-ticker.C:
			sendEvent(w, "heartbeat", map[string]int64{"timestamp": time.Now().Unix()})
			flusher.Flush()
		case event := <-sess.events:
			sendEvent(w, event.name, event.data)
			flusher.Flush()
		}
	}
}

// Update handles POST /api/search/sessions/{id}. The new state rides in
// the query parameters, same codec as the stream URL. A filter change
// resets to page 1 and goes through the debounce window; a pure page move
// dispatches immediately.
func (h *SearchStreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mu.RLock()
	sess, exists := h.sessions[id]
	h.mu.RUnlock()
	if !exists {
		respondWithError(w, http.StatusNotFound, "unknown search session")
		return
	}

	filter, page := discovery.Decode(r.URL.Query())

	sess.mu.Lock()
	filterChanged := !filter.Equal(sess.filter)
	if filterChanged {
		page.Page = discovery.DefaultPage
	}
	sess.filter = filter
	sess.page = page
	sess.mu.Unlock()

	observability.RecordSearch(r.Context(), h.metrics)
	if filterChanged {
		sess.fetcher.Request(filter, page)
	} else {
		sess.fetcher.RequestNow(filter, page)
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *SearchStreamHandler) fetch(ctx context.Context, filter discovery.FilterState, page discovery.PageState) (*gateway.ProvidersListResponse, error) {
	return h.gw.ListProviders(ctx, discovery.ToQuery(filter, page))
}

func (h *SearchStreamHandler) project(result discovery.Result) providerListPayload {
	resp := result.Response
	cards := make([]discovery.ProviderCard, 0, len(resp.Data))
	for _, item := range resp.Data {
		cards = append(cards, discovery.ProjectCard(h.gw.BaseURL(), item))
	}
	pager := discovery.Pager{Current: resp.Meta.CurrentPage, Total: resp.Meta.TotalPages}
	return providerListPayload{
		Providers:      cards,
		Meta:           resp.Meta,
		Pages:          pager.Pages(),
		HasPrev:        pager.HasPrev(),
		HasNext:        pager.HasNext(),
		CanonicalQuery: discovery.CanonicalQuery(result.Filter, result.Page),
	}
}

func (h *SearchStreamHandler) register(id string, sess *searchSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = sess
}

func (h *SearchStreamHandler) unregister(id string) {
	h.mu.Lock()
	sess, exists := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if exists {
		sess.fetcher.Close()
	}
}

// SessionCount returns the number of live search sessions
func (h *SearchStreamHandler) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (s *searchSession) setState(filter discovery.FilterState, page discovery.PageState) {
	s.mu.Lock()
	s.filter = filter
	s.page = page
	s.mu.Unlock()
}

// push drops events when the stream writer has fallen behind; a stale
// loading or results frame is worthless once newer ones exist.
func (s *searchSession) push(event sseEvent) {
	select {
	case s.events <- event:
	default:
	}
}

// sendEvent writes one SSE frame
func sendEvent(w http.ResponseWriter, eventType string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
