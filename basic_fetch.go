package gofetch

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/redis/go-redis/v9"
)

// BasicFetch is the immediate fetch strategy: a blocking multi-queue
// pop across the configured work queues.
type BasicFetch struct {
	client    *redis.Client
	namespace string
	queues    []string
	strict    bool
}

// NewBasicFetch builds an immediate strategy over the given bare queue
// names. Every name is qualified with the namespace and queue marker
// up front; the list is never mutated afterwards. In strict mode the
// list is deduplicated once and the poll order is fixed for the
// strategy's lifetime.
func NewBasicFetch(client *redis.Client, namespace string, queues []string, strict bool) *BasicFetch {
	qualified := make([]string, len(queues))
	for i, queue := range queues {
		qualified[i] = fmt.Sprintf("%squeue:%s", namespace, queue)
	}
	if strict {
		qualified = dedupQueues(qualified)
	}
	return &BasicFetch{
		client:    client,
		namespace: namespace,
		queues:    qualified,
		strict:    strict,
	}
}

// pollOrder returns the keys for the next BRPOP. Strict mode reuses
// the fixed list. Otherwise a fresh shuffle of the configured list is
// taken and deduplicated keeping first occurrence, so duplicate
// entries act as weights on the head slots. BRPOP always serves the
// first non-empty key, so reshuffling on every call is what keeps the
// tail queues from starving under sustained load.
func (f *BasicFetch) pollOrder() []string {
	if f.strict {
		return f.queues
	}
	shuffled := make([]string, len(f.queues))
	for i, v := range rand.Perm(len(f.queues)) {
		shuffled[i] = f.queues[v]
	}
	return dedupQueues(shuffled)
}

// RetrieveWork blocks on BRPOP across the polled queues for at most
// pollTimeout and wraps whatever arrives. An elapsed timeout is the
// idle case, not an error.
func (f *BasicFetch) RetrieveWork(ctx context.Context) (*UnitOfWork, error) {
	reply, err := f.client.BRPop(ctx, pollTimeout, f.pollOrder()...).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return newUnitOfWork(reply[0], reply[1]), nil
}

// BulkRequeue returns checked-out units to their originating queues.
func (f *BasicFetch) BulkRequeue(ctx context.Context, inProgress []*UnitOfWork) {
	bulkRequeue(ctx, f.client, f.namespace, inProgress)
}

func dedupQueues(queues []string) []string {
	seen := make(map[string]bool, len(queues))
	deduped := make([]string, 0, len(queues))
	for _, queue := range queues {
		if !seen[queue] {
			seen[queue] = true
			deduped = append(deduped, queue)
		}
	}
	return deduped
}
