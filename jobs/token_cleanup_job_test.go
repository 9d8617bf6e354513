package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingCleaner struct {
	calls atomic.Int32
	err   error
}

func (c *countingCleaner) CleanupExpiredTokens(context.Context) (int64, error) {
	c.calls.Add(1)
	return 2, c.err
}

func TestTokenCleanupJobSweepsUntilStopped(t *testing.T) {
	cleaner := &countingCleaner{}
	job := NewTokenCleanupJob(cleaner, 5*time.Millisecond, zap.NewNop())
	job.Start()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	job.Stop()
	after := cleaner.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, cleaner.calls.Load())
}

func TestTokenCleanupJobKeepsRunningAfterErrors(t *testing.T) {
	cleaner := &countingCleaner{err: errors.New("db down")}
	job := NewTokenCleanupJob(cleaner, 5*time.Millisecond, zap.NewNop())
	job.Start()
	defer job.Stop()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}
