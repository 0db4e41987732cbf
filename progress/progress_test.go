package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	ctx, tracker := WithNewTracker(context.Background(), "run-1", "checkout", nil)
	assert.Same(t, tracker, FromContext(ctx))

	tracker.Update(Delta{Total: 3, Running: 1})
	tracker.Update(Delta{Running: -1, Completed: 1})
	tracker.Update(Delta{Failed: 1})
	tracker.Update(Delta{Skipped: 1})

	snapshot := tracker.Snapshot()
	assert.Equal(t, 3, snapshot.TotalNodes)
	assert.Equal(t, 1, snapshot.CompletedNodes)
	assert.Equal(t, 1, snapshot.FailedNodes)
	assert.Equal(t, 1, snapshot.SkippedNodes)
	assert.Equal(t, 0, snapshot.RunningNodes)
}

func TestProgress_OnChange(t *testing.T) {
	var seen []int
	_, tracker := WithNewTracker(context.Background(), "run-1", "checkout", nil)
	tracker.OnChange(func(p Snapshot) {
		seen = append(seen, p.CompletedNodes)
	})
	tracker.Update(Delta{Completed: 1})
	tracker.Update(Delta{Completed: 1})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestProgress_NilSafe(t *testing.T) {
	var tracker *Progress
	tracker.Update(Delta{Total: 1})
	assert.Equal(t, Snapshot{}, tracker.Snapshot())
	assert.Nil(t, FromContext(context.Background()))
}
