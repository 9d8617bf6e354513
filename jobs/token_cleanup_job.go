package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TokenCleaner removes refresh tokens that can no longer be used
type TokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// TokenCleanupJob periodically deletes expired and revoked refresh tokens
type TokenCleanupJob struct {
	cleaner  TokenCleaner
	interval time.Duration
	log      *zap.Logger

	stopChan chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewTokenCleanupJob creates a job that runs every interval
func NewTokenCleanupJob(cleaner TokenCleaner, interval time.Duration, log *zap.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		cleaner:  cleaner,
		interval: interval,
		log:      log.Named("token-cleanup"),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the cleanup loop
func (j *TokenCleanupJob) Start() {
	go j.run()
	j.log.Info("token cleanup job started", zap.Duration("interval", j.interval))
}

// Stop ends the loop and waits for a running sweep to finish. Safe to call twice.
func (j *TokenCleanupJob) Stop() {
	j.once.Do(func() {
		close(j.stopChan)
		<-j.done
		j.log.Info("token cleanup job stopped")
	})
}

func (j *TokenCleanupJob) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopChan:
			return
		}
	}
}

func (j *TokenCleanupJob) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := j.cleaner.CleanupExpiredTokens(ctx)
	if err != nil {
		j.log.Error("failed to clean up refresh tokens", zap.Error(err))
		return
	}
	if removed > 0 {
		j.log.Info("removed stale refresh tokens", zap.Int64("count", removed))
	}
}
