package workers

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"football-data-service/store"
)

// RetentionWorker periodically deletes test data older than a TTL, so stale
// synthetic records do not pile up between explicit cleanup calls.
type RetentionWorker struct {
	Store    store.Store
	TTL      time.Duration
	Interval time.Duration
}

func NewRetentionWorker(st store.Store, ttl, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{Store: st, TTL: ttl, Interval: interval}
}

// Start schedules the sweep on the configured interval until ctx is
// cancelled.
func (w *RetentionWorker) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if _, err := sched.NewJob(
		gocron.DurationJob(w.Interval),
		gocron.NewTask(func() { w.Sweep(ctx) }),
	); err != nil {
		return err
	}
	sched.Start()

	go func() {
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			log.Error().Err(err).Msg("[Retention] scheduler shutdown failed")
		}
	}()
	return nil
}

// Sweep removes test documents created before the TTL cutoff. Each collection
// is swept independently; a failure in one does not stop the others.
func (w *RetentionWorker) Sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.TTL)
	filter := bson.M{
		"is_test":    true,
		"created_at": bson.M{"$lt": cutoff},
	}
	for _, collection := range []string{store.Players, store.Teams, store.Matches} {
		n, err := w.Store.DeleteMany(ctx, collection, filter)
		if err != nil {
			log.Error().Err(err).Str("collection", collection).Msg("[Retention] sweep failed")
			continue
		}
		if n > 0 {
			log.Info().Str("collection", collection).Int64("deleted", n).Msg("[Retention] removed stale test data")
		}
	}
}
