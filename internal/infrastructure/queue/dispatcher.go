package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/api/metrics"
	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans authentication audit events to a fixed set of workers
// using consistent hashing on the username, keeping per-user event ordering.
// Recording never blocks the request path: when a worker channel is full the
// event is dropped, logged and counted.
type Dispatcher struct {
	workers []chan domain.AuthAudit
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthAudit, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthAudit, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or, after Stop, once their channels drain.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(len(d.workers))
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the worker channels and waits until every buffered event has
// been persisted. Call only after the HTTP server has stopped accepting
// requests; Record on a stopped dispatcher panics.
func (d *Dispatcher) Stop() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Record enqueues an audit event for the worker responsible for its
// username. Implements ports.AuditSink.
func (d *Dispatcher) Record(event domain.AuthAudit) {
	idx := d.shardIndex(event.Username)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsDroppedTotal.WithLabelValues(strconv.Itoa(idx)).Inc()
		d.log.Warn().Str("username", event.Username).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthAudit) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("username", event.Username).
					Str("outcome", event.Outcome).
					Int("worker_id", id).
					Msg("audit event persist failed")
			}
		}
	}
}
