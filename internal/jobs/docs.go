// Package jobs provides the scheduled background work of the tracking view.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CourierPositionJob polls the tracking service for one courier's position:
// immediately on start, then every DefaultPollInterval ("@every 5s"). Each
// pull-strategy subscription owns exactly one job.
//
// # Usage
//
// Jobs are registered with a JobManager so shutdown can stop them all:
//
//	manager := jobs.NewJobManager(logger)
//	job, err := jobs.NewCourierPositionJob(trackingClient, sub, jobs.DefaultPollInterval, onUpdate, logger)
//	if err != nil {
//		return err
//	}
//	id, err := manager.Start(job)
//	...
//	manager.Stop(id)
//
// # Error Handling
//
//   - A failed poll is logged at debug level and skipped; there is no retry
//     besides the next tick.
//   - Ticks never overlap: a poll still running when the next tick fires
//     causes that tick to be skipped.
//   - Stop cancels an in-flight poll and waits for it, so no update is
//     delivered after Stop returns.
package jobs
