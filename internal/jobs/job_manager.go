package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// JobManager keeps track of the position jobs of live subscriptions so they
// can be stopped individually or all at once on shutdown.
type JobManager struct {
	mu     sync.Mutex
	jobs   map[string]*CourierPositionJob
	logger *slog.Logger
}

func NewJobManager(logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs:   make(map[string]*CourierPositionJob),
		logger: logger.With("component", "job_manager"),
	}
}

// Start starts job and registers it under a fresh id.
func (jm *JobManager) Start(job *CourierPositionJob) (string, error) {
	if err := job.Start(); err != nil {
		job.Stop()
		return "", fmt.Errorf("failed to start courier position job: %w", err)
	}

	id := uuid.NewString()

	jm.mu.Lock()
	jm.jobs[id] = job
	jm.mu.Unlock()

	return id, nil
}

// Stop stops and forgets the job registered under id. Unknown ids are ignored.
func (jm *JobManager) Stop(id string) {
	jm.mu.Lock()
	job, ok := jm.jobs[id]
	delete(jm.jobs, id)
	jm.mu.Unlock()

	if ok {
		job.Stop()
	}
}

// StopAll stops every registered job.
func (jm *JobManager) StopAll() {
	jm.mu.Lock()
	running := jm.jobs
	jm.jobs = make(map[string]*CourierPositionJob)
	jm.mu.Unlock()

	for _, job := range running {
		job.Stop()
	}

	if len(running) > 0 {
		jm.logger.InfoContext(context.Background(), "Stopped courier position jobs", "count", len(running))
	}
}

// Running reports how many jobs are registered.
func (jm *JobManager) Running() int {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	return len(jm.jobs)
}
