package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/clock"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

// StaleAfter is how long a session may stay open before the cleanup takes it.
const StaleAfter = 24 * time.Hour

type PassResult struct {
	Deleted   int
	Completed int
}

// Cleaner reconciles abandoned sessions: stale ones without logs are deleted,
// the rest are completed.
type Cleaner struct {
	store Store
	clock clock.Clock
}

func NewCleaner(store Store, clk clock.Clock) *Cleaner {
	return &Cleaner{
		store: store,
		clock: clk,
	}
}

// RunPass does one reconciliation in a single transaction.
func (c *Cleaner) RunPass(ctx context.Context) (result PassResult, err error) {
	ctx, span := tracing.GlobalCleanupTracer.Start(ctx, "cleanup.pass")
	defer func() {
		span.SetAttributes(
			attribute.Int("deleted", result.Deleted),
			attribute.Int("completed", result.Completed),
		)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cutoff := c.clock.Now().Add(-StaleAfter)
	err = c.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		result = PassResult{}

		stale, err := tx.StaleSessions(ctx, cutoff)
		if err != nil {
			return err
		}

		for _, session := range stale {
			if session.LogCount == 0 {
				err = tx.DeleteSession(ctx, session.ID)
				if err == nil {
					result.Deleted++
				}
			} else {
				err = tx.CompleteSession(ctx, session.ID)
				if err == nil {
					result.Completed++
				}
			}
			// the owner got there first
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("reconcile session %d: %w", session.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return PassResult{}, fmt.Errorf("cleanup pass: %w", err)
	}
	return result, nil
}

type passRunner interface {
	RunPass(ctx context.Context) (PassResult, error)
}

// Scheduler runs the cleanup once on start and then at every reference
// midnight. The delay is recomputed each cycle from the clock.
type Scheduler struct {
	cleaner passRunner
	clock   clock.Clock
	metrics *metrics.Manager
}

func NewScheduler(cleaner passRunner, clk clock.Clock, metricsManager *metrics.Manager) *Scheduler {
	return &Scheduler{
		cleaner: cleaner,
		clock:   clk,
		metrics: metricsManager,
	}
}

// Run blocks until ctx is cancelled. Failed passes are logged and retried at
// the next midnight.
func (s *Scheduler) Run(ctx context.Context) {
	log.Infof("session cleanup: scheduler started [%s]", s.clock.Location())

	for {
		if ctx.Err() != nil {
			log.Infof("session cleanup: scheduler stopped")
			return
		}

		s.runPass(ctx)

		wait := clock.UntilNextMidnight(s.clock)
		log.Debugf("session cleanup: next pass in %s", wait)

		timer := s.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Infof("session cleanup: scheduler stopped")
			return
		case <-timer.C():
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	passID := uuid.NewString()
	logger := log.WithField("pass", passID)

	start := time.Now()
	result, err := s.cleaner.RunPass(ctx)
	s.metrics.HistCleanupPassDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			logger.Infof("session cleanup: pass abandoned on shutdown")
			return
		}
		s.metrics.CounterCleanupFailures.Inc()
		logger.Errorf("session cleanup: pass failed: %s", err)
		return
	}

	s.metrics.CounterCleanupDeleted.Add(float64(result.Deleted))
	s.metrics.CounterCleanupCompleted.Add(float64(result.Completed))
	logger.Infof("session cleanup: %d deleted, %d completed", result.Deleted, result.Completed)
}
