package gofetch

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const queueMarker = "queue:"

// UnitOfWork binds a fully qualified queue key to the raw serialized
// job that was popped from it. Both fields are fixed at construction.
// A unit is consumed exactly once, by Acknowledge or Requeue.
type UnitOfWork struct {
	queue   string
	payload string
}

func newUnitOfWork(queue, payload string) *UnitOfWork {
	return &UnitOfWork{
		queue:   queue,
		payload: payload,
	}
}

// Queue returns the fully qualified Redis key the unit was popped
// from, e.g. "resque:queue:default".
func (u *UnitOfWork) Queue() string {
	return u.queue
}

// Payload returns the raw serialized job.
func (u *UnitOfWork) Payload() string {
	return u.payload
}

// QueueName returns the bare queue name with the namespace and queue
// marker stripped. Applying it to an already bare name returns the
// name unchanged.
func (u *UnitOfWork) QueueName() string {
	return queueName(u.queue)
}

func queueName(queue string) string {
	if i := strings.LastIndex(queue, queueMarker); i != -1 {
		return queue[i+len(queueMarker):]
	}
	return queue
}

// Acknowledge marks the unit as done. The Redis list already forgot
// the job at pop time, so there is nothing to delete.
func (u *UnitOfWork) Acknowledge() {}

// Requeue pushes the payload back onto the tail of its originating
// queue, which is the next slot BRPOP serves, so an abandoned job is
// redelivered before fresh work.
func (u *UnitOfWork) Requeue(ctx context.Context, client *redis.Client) error {
	return client.RPush(ctx, u.queue, u.payload).Err()
}
