package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait_Elapses(t *testing.T) {
	start := time.Now()
	err := Wait(context.Background(), 20*time.Millisecond)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWait_Zero(t *testing.T) {
	assert.NoError(t, Wait(context.Background(), 0))
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWait_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Wait(ctx, time.Hour)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
