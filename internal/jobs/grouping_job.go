package jobs

import (
	"context"
	"log/slog"

	"grouporders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GroupingJob runs the grouping engine on a schedule, collecting pending
// orders into group orders per restaurant.
type GroupingJob struct {
	handler  commands.GroupPendingOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGroupingJob creates a scheduled grouping job.
// The schedule is a standard five-field cron expression, e.g. "*/5 * * * *".
func NewGroupingJob(
	handler commands.GroupPendingOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *GroupingJob {
	return &GroupingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "grouping_job"),
	}
}

// Start begins the grouping job on its schedule.
func (j *GroupingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewGroupPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Grouping job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Grouping job started", "schedule", j.schedule)
	return nil
}

// Stop stops the grouping job.
func (j *GroupingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Grouping job stopped")
}
