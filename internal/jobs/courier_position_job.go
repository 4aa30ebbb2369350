package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"
	"trackview/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultPollInterval is how often a courier position is polled.
const DefaultPollInterval = 5 * time.Second

// PositionSource answers the latest known position of a courier.
type PositionSource interface {
	CourierPosition(ctx context.Context, courierID, credential string) (tracking.CourierSample, error)
}

// CourierPositionJob polls one courier's position for one subscription:
// once right away, then on every interval until stopped. A failed poll is
// skipped; the next tick tries again.
type CourierPositionJob struct {
	source   PositionSource
	sub      ports.Subscription
	interval time.Duration
	onUpdate func(tracking.CourierSample)
	cron     *cron.Cron
	logger   *slog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewCourierPositionJob creates a stopped job. Intervals below one second
// are rounded up by the scheduler.
func NewCourierPositionJob(
	source PositionSource,
	sub ports.Subscription,
	interval time.Duration,
	onUpdate func(tracking.CourierSample),
	logger *slog.Logger,
) (*CourierPositionJob, error) {
	if sub.CourierID == "" {
		return nil, errs.NewValueIsRequiredError("courierId")
	}
	if interval <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("interval", interval, time.Second, "unbounded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &CourierPositionJob{
		source:   source,
		sub:      sub,
		interval: interval,
		onUpdate: onUpdate,
		cron:     cron.New(),
		logger:   logger.With("component", "courier_position_job", "courier_id", sub.CourierID),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start schedules the job and runs its first poll immediately.
func (j *CourierPositionJob) Start() error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(j.tick))

	if _, err := j.cron.AddJob(fmt.Sprintf("@every %s", j.interval), job); err != nil {
		return err
	}

	j.cron.Start()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		job.Run()
	}()

	j.logger.InfoContext(j.ctx, "Courier position job started", "interval", j.interval)
	return nil
}

// Stop cancels an in-flight poll and waits for it. After Stop returns the
// job never calls onUpdate again. Stop is idempotent.
func (j *CourierPositionJob) Stop() {
	j.stopOnce.Do(func() {
		j.cancel()
		<-j.cron.Stop().Done()
		j.wg.Wait()
		j.logger.InfoContext(context.Background(), "Courier position job stopped")
	})
}

func (j *CourierPositionJob) tick() {
	if j.ctx.Err() != nil {
		return
	}

	sample, err := j.source.CourierPosition(j.ctx, j.sub.CourierID, j.sub.Credential)
	if j.ctx.Err() != nil {
		return
	}
	if err != nil {
		j.logger.DebugContext(j.ctx, "Courier position poll skipped", "error", err)
		return
	}

	sample.OrderID = j.sub.OrderID
	j.onUpdate(sample)
}
