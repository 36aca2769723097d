package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RelayHandler runs one relay pass.
type RelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

// OutboxRelayJob drains the outbox on a cron schedule.
type OutboxRelayJob struct {
	handler  RelayHandler
	cmd      commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the job. The schedule takes six fields, seconds first.
func NewOutboxRelayJob(
	handler RelayHandler,
	cmd commands.RelayOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run performs a single relay pass.
func (j *OutboxRelayJob) Run() {
	ctx := context.Background()

	result, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return
	}

	if result.Failed > 0 {
		j.logger.WarnContext(ctx, "Outbox relay published with failures",
			"published", result.Published,
			"failed", result.Failed,
		)
	} else if result.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox relay published", "published", result.Published)
	}
}

// Stop waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
