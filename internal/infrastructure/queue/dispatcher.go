package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
	"github.com/mastersolis/site-gateway/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher writes journal entries asynchronously so form handlers never
// block on the journal. Entries are sharded to a fixed set of workers by
// submitter email, preserving per-submitter ordering.
//
// Dispatcher itself satisfies ports.SubmissionJournal: Record enqueues and
// returns immediately; the wrapped journal does the actual write.
type Dispatcher struct {
	workers []chan domain.SubmissionRecord
	journal ports.SubmissionJournal
	log     zerolog.Logger
}

var _ ports.SubmissionJournal = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers writing
// to journal. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, journal ports.SubmissionJournal, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.SubmissionRecord, numWorkers),
		journal: journal,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.SubmissionRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues one entry, non-blocking up to channelBuffer capacity.
// It never returns an error: journal failures are the workers' problem and
// must not surface to the submitting user.
func (d *Dispatcher) Record(_ context.Context, rec domain.SubmissionRecord) error {
	idx := d.shardIndex(rec.Email)
	d.workers[idx] <- rec
	metrics.JournalQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a submitter email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.SubmissionRecord) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			metrics.JournalQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.journal.Record(ctx, rec); err != nil {
				metrics.SubmissionsJournaledTotal.WithLabelValues(string(rec.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(rec.Kind)).
					Str("email", rec.Email).
					Int("worker_id", id).
					Msg("journal write failed")
				continue
			}
			metrics.SubmissionsJournaledTotal.WithLabelValues(string(rec.Kind), "ok").Inc()
		}
	}
}
