package client

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
)

// QueryKey identifies one polled query.
type QueryKey string

const (
	QueryBotStatus    QueryKey = "botStatus"
	QueryHeaderStatus QueryKey = "headerStatus"
	QueryDiagnostics  QueryKey = "diagnostics"
	QueryGasPrice     QueryKey = "gasPrice"
)

// Polling cadence per query, matching the dashboard's refresh rates.
const (
	botStatusInterval    = 60 * time.Second
	diagnosticsInterval  = 60 * time.Second
	headerStatusInterval = 30 * time.Second
	gasPriceInterval     = 30 * time.Second
)

type task struct {
	interval time.Duration
	fetch    func(ctx context.Context) any
	kick     chan struct{}
}

// Scheduler owns the interval timers for every polled query. Each query
// runs as its own cancellable goroutine; Invalidate forces an immediate
// refetch without waiting for the timer. There is no cross-query
// ordering: a refetch-all simply fires every task concurrently and the
// snapshots reflect whichever responses land first.
type Scheduler struct {
	client *Client
	log    *zap.SugaredLogger
	gas    *gasPriceSim

	mu      sync.RWMutex
	results map[QueryKey]any

	tasks  map[QueryKey]*task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler registers the standard dashboard queries against the
// given client. Call Start to begin polling.
func NewScheduler(client *Client, log *zap.SugaredLogger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		client:  client,
		log:     log,
		gas:     newGasPriceSim(),
		results: make(map[QueryKey]any),
		tasks:   make(map[QueryKey]*task),
		ctx:     ctx,
		cancel:  cancel,
	}

	s.register(QueryBotStatus, botStatusInterval, func(ctx context.Context) any {
		return s.client.BotStatus(ctx)
	})
	s.register(QueryHeaderStatus, headerStatusInterval, func(ctx context.Context) any {
		return s.client.BotStatus(ctx)
	})
	s.register(QueryDiagnostics, diagnosticsInterval, func(ctx context.Context) any {
		return s.client.Diagnostics(ctx)
	})
	s.register(QueryGasPrice, gasPriceInterval, func(ctx context.Context) any {
		// Client-side simulation, never a server round trip.
		return s.gas.Sample()
	})

	return s
}

func (s *Scheduler) register(key QueryKey, interval time.Duration, fetch func(ctx context.Context) any) {
	s.tasks[key] = &task{
		interval: interval,
		fetch:    fetch,
		kick:     make(chan struct{}, 1),
	}
}

// Start launches one polling goroutine per registered query. Each query
// fetches immediately, then on its own timer.
func (s *Scheduler) Start() {
	for key, t := range s.tasks {
		s.wg.Add(1)
		go s.run(key, t)
	}
}

func (s *Scheduler) run(key QueryKey, t *task) {
	defer s.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	s.store(key, t.fetch(s.ctx))
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.store(key, t.fetch(s.ctx))
		case <-t.kick:
			s.store(key, t.fetch(s.ctx))
			ticker.Reset(t.interval)
		}
	}
}

func (s *Scheduler) store(key QueryKey, value any) {
	s.mu.Lock()
	s.results[key] = value
	s.mu.Unlock()
}

// Invalidate forces an immediate refetch of one query. A refetch that is
// already pending absorbs the request.
func (s *Scheduler) Invalidate(key QueryKey) {
	t, ok := s.tasks[key]
	if !ok {
		s.log.Warnw("invalidate for unknown query", "key", key)
		return
	}
	select {
	case t.kick <- struct{}{}:
	default:
	}
}

// InvalidateAll refetches every query concurrently, with no barrier.
func (s *Scheduler) InvalidateAll() {
	for key := range s.tasks {
		s.Invalidate(key)
	}
}

// Result returns the last-fetched snapshot for a query. The bool is
// false until the first fetch completes; a nil snapshot afterwards means
// the last fetch failed.
func (s *Scheduler) Result(key QueryKey) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.results[key]
	return value, ok
}

// BotStatus returns the dashboard's last status snapshot, or nil.
func (s *Scheduler) BotStatus() *BotStatus {
	return snapshot[*BotStatus](s, QueryBotStatus)
}

// HeaderStatus returns the header's last status snapshot, or nil.
func (s *Scheduler) HeaderStatus() *BotStatus {
	return snapshot[*BotStatus](s, QueryHeaderStatus)
}

// Diagnostics returns the last diagnostics snapshot, or nil.
func (s *Scheduler) Diagnostics() *Diagnostics {
	return snapshot[*Diagnostics](s, QueryDiagnostics)
}

// GasPrice returns the last simulated gas price in wei, or nil.
func (s *Scheduler) GasPrice() *big.Int {
	return snapshot[*big.Int](s, QueryGasPrice)
}

func snapshot[T any](s *Scheduler, key QueryKey) T {
	var zero T
	value, ok := s.Result(key)
	if !ok || value == nil {
		return zero
	}
	typed, ok := value.(T)
	if !ok {
		return zero
	}
	return typed
}

// Close cancels every polling task and waits for them to stop.
func (s *Scheduler) Close() {
	s.cancel()
	s.wg.Wait()
}
