package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/sTrAy74/swi-web/internal/gateway"
)

// FetchFunc performs one provider list request for the given state
type FetchFunc func(ctx context.Context, filter FilterState, page PageState) (*gateway.ProvidersListResponse, error)

// Result is the outcome of one dispatched fetch
type Result struct {
	Filter   FilterState
	Page     PageState
	Response *gateway.ProvidersListResponse
	Err      error
}

// FetcherConfig configures a Fetcher. OnResult receives every completed
// fetch that was not superseded or cancelled; OnLoading tracks whether a
// request is in flight. Both callbacks run on the fetcher's own goroutine
// and are never invoked after Close returns.
type FetcherConfig struct {
	Fetch     FetchFunc
	Debounce  time.Duration
	OnResult  func(Result)
	OnLoading func(bool)
}

type scheduled struct {
	filter    FilterState
	page      PageState
	immediate bool
}

type fetchOutcome struct {
	generation uint64
	result     Result
}

// Fetcher coalesces rapid state changes into single upstream requests.
// Each Request resets a settle timer; only when the state has been quiet
// for the debounce window does a fetch go out. A newer dispatch cancels
// the in-flight request, and a cancelled request produces no callback:
// the last state always wins and stale results never surface.
//
// All state lives in a single event-loop goroutine, so no locking is
// needed and the no-callback-after-Close guarantee is structural.
type Fetcher struct {
	cfg      FetcherConfig
	schedule chan scheduled
	done     chan struct{}
	stopped  chan struct{}
}

// NewFetcher starts a fetcher's event loop
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	f := &Fetcher{
		cfg:      cfg,
		schedule: make(chan scheduled, 16),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go f.loop()
	return f
}

// Request schedules a fetch for the given state after the settle window.
// Calls made after Close are dropped.
func (f *Fetcher) Request(filter FilterState, page PageState) {
	f.submit(scheduled{filter: filter, page: page})
}

// RequestNow bypasses the settle window, used for pagination moves where
// the state change is a single deliberate action rather than keystrokes.
func (f *Fetcher) RequestNow(filter FilterState, page PageState) {
	f.submit(scheduled{filter: filter, page: page, immediate: true})
}

func (f *Fetcher) submit(req scheduled) {
	select {
	case f.schedule <- req:
	case <-f.done:
	}
}

// Close tears the fetcher down: the settle timer is stopped, any in-flight
// request is cancelled, and once Close returns no callback will fire.
func (f *Fetcher) Close() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
	<-f.stopped
}

func (f *Fetcher) loop() {
	defer close(f.stopped)

	var (
		timer      *time.Timer
		timerC     <-chan time.Time
		pending    scheduled
		hasPending bool
		generation uint64
		cancel     context.CancelFunc
		outcomes   = make(chan fetchOutcome, 1)
	)

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	dispatch := func() {
		if !hasPending {
			return
		}
		hasPending = false
		if cancel != nil {
			cancel()
		}
		generation++

		ctx, cancelFn := context.WithCancel(context.Background())
		cancel = cancelFn
		gen := generation
		req := pending

		if f.cfg.OnLoading != nil {
			f.cfg.OnLoading(true)
		}
		go func() {
			resp, err := f.cfg.Fetch(ctx, req.filter, req.page)
			select {
			case outcomes <- fetchOutcome{
				generation: gen,
				result:     Result{Filter: req.filter, Page: req.page, Response: resp, Err: err},
			}:
			case <-f.done:
			}
		}()
	}

	for {
		select {
		case req := <-f.schedule:
			pending = req
			hasPending = true
			if req.immediate {
				stopTimer()
				dispatch()
				continue
			}
			stopTimer()
			timer = time.NewTimer(f.cfg.Debounce)
			timerC = timer.C

		case <-timerC:
			timer = nil
			timerC = nil
			dispatch()

		case outcome := <-outcomes:
			if outcome.generation != generation {
				// Superseded by a newer dispatch; its cancellation already
				// happened and the result is dropped without a callback.
				continue
			}
			if errors.Is(outcome.result.Err, context.Canceled) {
				continue
			}
			if f.cfg.OnLoading != nil {
				f.cfg.OnLoading(false)
			}
			if f.cfg.OnResult != nil {
				f.cfg.OnResult(outcome.result)
			}

		case <-f.done:
			stopTimer()
			if cancel != nil {
				cancel()
			}
			return
		}
	}
}
