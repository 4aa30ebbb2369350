package trackingservice

import (
	"context"
	"log/slog"
	"time"

	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"
	"trackview/internal/jobs"
)

var _ ports.PositionFeed = (*PollingFeed)(nil)

// PollingFeed is the pull strategy: every subscription runs its own
// CourierPositionJob against the REST endpoint.
type PollingFeed struct {
	source   jobs.PositionSource
	manager  *jobs.JobManager
	interval time.Duration
	logger   *slog.Logger
}

func NewPollingFeed(
	source jobs.PositionSource,
	manager *jobs.JobManager,
	interval time.Duration,
	logger *slog.Logger,
) *PollingFeed {
	if interval <= 0 {
		interval = jobs.DefaultPollInterval
	}
	return &PollingFeed{
		source:   source,
		manager:  manager,
		interval: interval,
		logger:   logger,
	}
}

// Subscribe starts polling sub.CourierID. The returned Unsubscribe stops the
// job and waits for any poll in flight.
func (f *PollingFeed) Subscribe(
	_ context.Context,
	sub ports.Subscription,
	onUpdate func(tracking.CourierSample),
) (ports.Unsubscribe, error) {
	job, err := jobs.NewCourierPositionJob(f.source, sub, f.interval, onUpdate, f.logger)
	if err != nil {
		return nil, err
	}

	id, err := f.manager.Start(job)
	if err != nil {
		return nil, err
	}

	return func() { f.manager.Stop(id) }, nil
}

// Close stops every job still running.
func (f *PollingFeed) Close() {
	f.manager.StopAll()
}
