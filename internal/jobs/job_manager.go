package jobs

import (
	"fmt"
	"log/slog"

	"grouporders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	groupingJob *GroupingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	groupPendingOrdersHandler commands.GroupPendingOrdersCommandHandler,
	groupingSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		groupingJob: NewGroupingJob(groupPendingOrdersHandler, groupingSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.groupingJob.Start(); err != nil {
		return fmt.Errorf("failed to start grouping job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.groupingJob.Stop()
}
