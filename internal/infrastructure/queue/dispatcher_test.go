package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/api/metrics"
	"github.com/oxefood/delivery-api/internal/core/domain"
)

type memoryAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuthAudit
}

func (r *memoryAuditRepo) Insert(_ context.Context, event domain.AuthAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memoryAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	repo := &memoryAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start(context.Background())

	const total = 50
	for i := 0; i < total; i++ {
		d.Record(domain.AuthAudit{
			Username: fmt.Sprintf("user-%d", i%5),
			Outcome:  domain.AuditLoginFailed,
		})
	}
	d.Stop()

	if got := repo.count(); got != total {
		t.Fatalf("expected %d persisted events after Stop, got %d", total, got)
	}
}

func TestDispatcher_PerUserOrderSurvivesSharding(t *testing.T) {
	repo := &memoryAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 10; i++ {
		d.Record(domain.AuthAudit{Username: "alice", Reason: fmt.Sprintf("%d", i)})
	}
	d.Stop()

	var seen []string
	for _, event := range repo.events {
		if event.Username == "alice" {
			seen = append(seen, event.Reason)
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 events for alice, got %d", len(seen))
	}
	for i, reason := range seen {
		if reason != fmt.Sprintf("%d", i) {
			t.Fatalf("events out of order at %d: %v", i, seen)
		}
	}
}

func TestDispatcher_FullChannelDropsAndCounts(t *testing.T) {
	// Workers never start, so the single channel fills at channelBuffer and
	// everything beyond it must be dropped and counted.
	repo := &memoryAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	before := testutil.ToFloat64(metrics.AuditEventsDroppedTotal.WithLabelValues("0"))

	const overflow = 3
	for i := 0; i < channelBuffer+overflow; i++ {
		d.Record(domain.AuthAudit{Username: "alice"})
	}

	after := testutil.ToFloat64(metrics.AuditEventsDroppedTotal.WithLabelValues("0"))
	if got := after - before; got != overflow {
		t.Fatalf("expected %d dropped events counted, got %v", overflow, got)
	}
}
