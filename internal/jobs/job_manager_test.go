package jobs_test

import (
	"testing"
	"time"

	"trackview/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobManager_StartStop(t *testing.T) {
	manager := jobs.NewJobManager(newLogger())
	source := &fakeSource{}
	rec := &recorder{}

	first, err := jobs.NewCourierPositionJob(source, testSub, time.Second, rec.onUpdate, newLogger())
	require.NoError(t, err)
	second, err := jobs.NewCourierPositionJob(source, testSub, time.Second, rec.onUpdate, newLogger())
	require.NoError(t, err)

	firstID, err := manager.Start(first)
	require.NoError(t, err)
	secondID, err := manager.Start(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, 2, manager.Running())

	manager.Stop(firstID)
	manager.Stop(firstID)
	manager.Stop("unknown")
	assert.Equal(t, 1, manager.Running())

	manager.StopAll()
	assert.Zero(t, manager.Running())

	calls := source.calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, calls, source.calls.Load())
}
