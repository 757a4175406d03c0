package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
)

type captureJournal struct {
	mu      sync.Mutex
	records []domain.SubmissionRecord
	err     error
	done    chan struct{}
}

func newCaptureJournal(expect int) *captureJournal {
	return &captureJournal{done: make(chan struct{}, expect)}
}

func (j *captureJournal) Record(_ context.Context, rec domain.SubmissionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.done <- struct{}{}
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, rec)
	return nil
}

func (j *captureJournal) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-j.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for write %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_DeliversRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	journal := newCaptureJournal(3)
	d := NewDispatcher(2, journal, zerolog.Nop())
	d.Start(ctx)

	for _, email := range []string{"a@x.c", "b@x.c", "c@x.c"} {
		if err := d.Record(ctx, domain.SubmissionRecord{
			Kind:  domain.SubmissionContact,
			Email: email,
		}); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}

	journal.wait(t, 3)
	journal.mu.Lock()
	defer journal.mu.Unlock()
	if len(journal.records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(journal.records))
	}
}

func TestDispatcher_SameSubmitterKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	journal := newCaptureJournal(5)
	d := NewDispatcher(4, journal, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Record(ctx, domain.SubmissionRecord{
			Email: "same@x.c",
			Name:  string(rune('a' + i)),
		})
	}

	journal.wait(t, 5)
	journal.mu.Lock()
	defer journal.mu.Unlock()
	for i, rec := range journal.records {
		if rec.Name != string(rune('a'+i)) {
			t.Fatalf("order broken at %d: %+v", i, journal.records)
		}
	}
}

func TestDispatcher_WriteFailureDoesNotStopWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	journal := newCaptureJournal(2)
	journal.err = errors.New("mongo down")
	d := NewDispatcher(1, journal, zerolog.Nop())
	d.Start(ctx)

	d.Record(ctx, domain.SubmissionRecord{Email: "a@x.c"})
	d.Record(ctx, domain.SubmissionRecord{Email: "b@x.c"})

	// Both writes are attempted even though the first one failed.
	journal.wait(t, 2)
}

func TestDispatcher_RecordNeverErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(1, newCaptureJournal(1), zerolog.Nop())
	d.Start(ctx)

	if err := d.Record(ctx, domain.SubmissionRecord{}); err != nil {
		t.Fatalf("record must not surface errors: %v", err)
	}
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureJournal(0), zerolog.Nop())
	first := d.shardIndex("user@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("user@example.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
