// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field. The only job,
// OutboxRelayJob, publishes pending parcel events recorded by the unit of
// work; overlapping passes are skipped.
//
//	jobManager := jobs.NewJobManager(relayHandler, relayCmd, "*/5 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Relay failures are logged and retried on the next tick.
package jobs
