package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/umputun/feedscope/pkg/aggregator"
)

//go:generate moq -out mocks/pool.go -pkg mocks -skip-ensure -fmt goimports . Pool

// Pool is the aggregated item pool the scheduler keeps warm
type Pool interface {
	Query(ctx context.Context, feedType string) (aggregator.Result, error)
}

// Scheduler periodically refreshes aggregated pools so user requests
// land on memoized results instead of paying upstream latency
type Scheduler struct {
	pool      Pool
	feedTypes []string
	interval  time.Duration
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// New creates a scheduler warming the given feed types every interval
func New(pool Pool, feedTypes []string, interval time.Duration) *Scheduler {
	return &Scheduler{
		pool:      pool,
		feedTypes: feedTypes,
		interval:  interval,
	}
}

// Start begins the warming loop. The first pass runs immediately,
// subsequent passes on every interval tick until Stop or ctx cancel.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.warmAll(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.warmAll(ctx)
			}
		}
	}()

	log.Printf("[INFO] scheduler started, warming %d feed types every %v", len(s.feedTypes), s.interval)
}

// Stop cancels the warming loop and waits for the current pass to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	log.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) warmAll(ctx context.Context) {
	for _, feedType := range s.feedTypes {
		if ctx.Err() != nil {
			return
		}
		res, err := s.pool.Query(ctx, feedType)
		if err != nil {
			log.Printf("[WARN] warm fetch failed for feed %q: %v", feedType, err)
			continue
		}
		if len(res.Warnings) > 0 {
			log.Printf("[WARN] warm fetch for feed %q got %d items with %d warnings", feedType, len(res.Items), len(res.Warnings))
			continue
		}
		log.Printf("[DEBUG] warm fetch for feed %q got %d items", feedType, len(res.Items))
	}
}
