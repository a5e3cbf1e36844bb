package gofetch

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorhill/cronexpr"
	"github.com/redis/go-redis/v9"
)

// Enqueue pushes a new job onto the given queue and records the queue
// in the queues registry set.
func Enqueue(queue string, class string, args []interface{}) error {
	err := Init()
	if err != nil {
		return err
	}

	buffer, err := json.Marshal(&Payload{
		JID:   uuid.NewString(),
		Class: class,
		Args:  args,
	})
	if err != nil {
		logger.Criticalf("Cant marshal payload on enqueue")
		return err
	}

	pipe := client.Pipeline()
	pipe.LPush(ctx, fmt.Sprintf("%squeue:%s", workerSettings.Namespace, queue), buffer)
	pipe.SAdd(ctx, fmt.Sprintf("%squeues", workerSettings.Namespace), queue)
	_, err = pipe.Exec(ctx)

	return err
}

// EnqueueAt parks a job in the schedule set, due at the given time.
// The scheduled fetcher moves it onto its queue once the time passes.
func EnqueueAt(at time.Time, queue string, class string, args []interface{}) error {
	return enqueueScheduled(&scheduledMessage{
		Queue: queue,
		Class: class,
		Args:  args,
	}, timeScore(at))
}

// EnqueueIn parks a job in the schedule set, due after the given
// delay.
func EnqueueIn(delay time.Duration, queue string, class string, args []interface{}) error {
	return EnqueueAt(time.Now().Add(delay), queue, class, args)
}

// EnqueueEvery parks a recurring job in the schedule set. Each time it
// comes due it is delivered and re-scheduled interval later.
func EnqueueEvery(interval time.Duration, queue string, class string, args []interface{}) error {
	return enqueueScheduled(&scheduledMessage{
		Queue:      queue,
		Class:      class,
		Args:       args,
		Expiration: interval.Seconds(),
	}, timeScore(time.Now().Add(interval)))
}

// EnqueueCron parks a recurring job driven by a cron expression. Each
// time it comes due it is delivered and re-scheduled at the next
// occurrence.
func EnqueueCron(expression string, queue string, class string, args []interface{}) error {
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return err
	}
	return enqueueScheduled(&scheduledMessage{
		Queue: queue,
		Class: class,
		Args:  args,
		Cron:  expression,
	}, timeScore(expr.Next(time.Now())))
}

func enqueueScheduled(message *scheduledMessage, score float64) error {
	err := Init()
	if err != nil {
		return err
	}

	message.JID = uuid.NewString()
	buffer, err := json.Marshal(message)
	if err != nil {
		logger.Criticalf("Cant marshal scheduled message on enqueue")
		return err
	}

	return client.ZAdd(ctx, workerSettings.Namespace+defaultScheduleSet, redis.Z{
		Score:  score,
		Member: buffer,
	}).Err()
}

func timeScore(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
