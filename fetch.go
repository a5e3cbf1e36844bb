package gofetch

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pollTimeout bounds every RetrieveWork call. Shutdown is observed
// between calls, so this is also the worst-case shutdown latency.
const pollTimeout = 2 * time.Second

// Fetcher pulls units of work from the backend and returns abandoned
// units to it. Implementations hold no per-call mutable state, so a
// single instance may be shared by concurrent polling goroutines.
type Fetcher interface {
	// RetrieveWork blocks for at most pollTimeout. It returns
	// (nil, nil) when no work became available before the timeout;
	// backend errors propagate to the caller, which owns retry policy.
	RetrieveWork(ctx context.Context) (*UnitOfWork, error)

	// BulkRequeue pushes checked-out units back onto their originating
	// queues in a single pipelined round trip. Best effort: failures
	// are logged, never returned, so a flaky backend cannot hang or
	// crash the shutdown path.
	BulkRequeue(ctx context.Context, inProgress []*UnitOfWork)
}

// NewFetcher selects the active fetch strategy. The schedule flag
// wins; otherwise an explicitly provided fetcher is used as is,
// falling back to the immediate strategy over the configured queues.
func NewFetcher(client *redis.Client, settings WorkerSettings, explicit Fetcher) Fetcher {
	if settings.UseSchedule {
		return NewScheduledFetch(client, settings.Namespace, settings.ScheduleSets...)
	}
	if explicit != nil {
		return explicit
	}
	return NewBasicFetch(client, settings.Namespace, settings.Queues, settings.IsStrict)
}

func bulkRequeue(ctx context.Context, client *redis.Client, namespace string, inProgress []*UnitOfWork) {
	if len(inProgress) == 0 {
		return
	}

	grouped := make(map[string][]interface{})
	for _, unit := range inProgress {
		name := unit.QueueName()
		grouped[name] = append(grouped[name], unit.Payload())
	}

	pipe := client.Pipeline()
	for name, payloads := range grouped {
		pipe.RPush(ctx, fmt.Sprintf("%squeue:%s", namespace, name), payloads...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Warnf("Error requeueing %d in-progress units: %v", len(inProgress), err)
	}
}
