package workers

import (
	"context"
	"time"

	"github.com/ojlab/discussions/domain"
	"github.com/sirupsen/logrus"
)

// recountWorker re-runs the vote recount for recently voted discussions. The
// synchronous recount after each vote already maintains the counters; this
// sweep repairs rows where the process died between the vote mutation and the
// counter persist.
type recountWorker struct {
	aggregator domain.VoteAggregator
	ch         chan int64
}

var _ domain.RecountScheduler = (*recountWorker)(nil)

func NewRecountWorker(aggregator domain.VoteAggregator) *recountWorker {
	return &recountWorker{
		aggregator: aggregator,
		ch:         make(chan int64, 1024),
	}
}

// Schedule enqueues a discussion for a deferred recount. Best effort.
func (w recountWorker) Schedule(discussionID int64) {
	select {
	case w.ch <- discussionID:
	default:
		logrus.Info("recountWorker's channel is full, task dropped")
	}
}

func (w recountWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	pending := make(map[int64]struct{}, batchSize)
	for {
		select {
		case id := <-w.ch:
			pending[id] = struct{}{}
			if len(pending) == batchSize {
				w.flush(ctx, pending)
				pending = make(map[int64]struct{}, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, pending)
			pending = make(map[int64]struct{}, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down recountWorker, flushing remaining tasks...")
			w.flush(context.Background(), pending)
			return
		}
	}
}

func (w recountWorker) flush(ctx context.Context, pending map[int64]struct{}) {
	for id := range pending {
		if _, _, err := w.aggregator.Recount(ctx, id); err != nil {
			logrus.Errorf("deferred recount failed for discussion %d: %v", id, err)
		}
	}
}
