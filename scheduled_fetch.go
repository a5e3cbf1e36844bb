package gofetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/redis/go-redis/v9"
)

const defaultScheduleSet = "schedule"

var errorMissingQueue = errors.New("scheduled message has no queue")

// popDueScript pops the lowest-scored member at or below the given
// score. Range and removal run in one server-side script so that two
// concurrent pollers can never receive the same entry, and a crash
// cannot strand an entry between read and delete.
var popDueScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, 1)
if #due == 0 then
	return false
end
redis.call('ZREM', KEYS[1], due[1])
return due[1]
`)

// ScheduledFetch is the scheduled fetch strategy: it drains entries
// whose due time has passed from one or more sorted schedule sets.
type ScheduledFetch struct {
	client    *redis.Client
	namespace string
	sets      []string
}

// NewScheduledFetch builds a scheduled strategy over the given bare
// set names, defaulting to the single "schedule" set.
func NewScheduledFetch(client *redis.Client, namespace string, sets ...string) *ScheduledFetch {
	if len(sets) == 0 {
		sets = []string{defaultScheduleSet}
	}
	qualified := make([]string, len(sets))
	for i, set := range sets {
		qualified[i] = namespace + set
	}
	return &ScheduledFetch{
		client:    client,
		namespace: namespace,
		sets:      qualified,
	}
}

// RetrieveWork pops one due entry from a schedule set and wraps it as
// a unit of work addressed to the queue named inside the message.
// Recurrent entries are re-added to the schedule before the unit is
// handed out. Malformed entries are parked on the dead list so one
// bad member cannot wedge the whole schedule.
func (f *ScheduledFetch) RetrieveWork(ctx context.Context) (*UnitOfWork, error) {
	set := f.sets[0]
	if len(f.sets) > 1 {
		set = f.sets[rand.Intn(len(f.sets))]
	}
	now := float64(time.Now().UnixNano()) / 1e9

	// Each iteration removes one member, so the loop is bounded by the
	// number of due entries.
	for {
		raw, err := popDueScript.Run(ctx, f.client, []string{set}, now).Text()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		message := &scheduledMessage{}
		if err := json.Unmarshal([]byte(raw), message); err != nil {
			f.deadLetter(ctx, set, raw, err)
			continue
		}
		if message.Queue == "" {
			f.deadLetter(ctx, set, raw, errorMissingQueue)
			continue
		}

		f.reschedule(ctx, set, raw, message, now)

		return newUnitOfWork(fmt.Sprintf("%squeue:%s", f.namespace, message.Queue), raw), nil
	}
}

// BulkRequeue returns checked-out units to plain work queues, never
// back into the schedule. Once dequeued, an abandoned scheduled job
// is an ordinary queue failure, not a scheduling failure.
func (f *ScheduledFetch) BulkRequeue(ctx context.Context, inProgress []*UnitOfWork) {
	bulkRequeue(ctx, f.client, f.namespace, inProgress)
}

// reschedule re-adds a recurrent entry with its next due time. The
// same raw bytes go back in, so unknown message fields survive. This
// happens before the unit is returned: a crash mid-delivery re-runs
// the job rather than dropping it.
func (f *ScheduledFetch) reschedule(ctx context.Context, set, raw string, message *scheduledMessage, now float64) {
	var next float64
	switch {
	case message.Expiration > 0:
		next = now + message.Expiration
	case message.Cron != "":
		expr, err := cronexpr.Parse(message.Cron)
		if err != nil {
			logger.Warnf("Bad cron expression %q on %s: %v", message.Cron, set, err)
			return
		}
		next = float64(expr.Next(time.Now()).UnixNano()) / 1e9
	default:
		return
	}
	if err := f.client.ZAdd(ctx, set, redis.Z{Score: next, Member: raw}).Err(); err != nil {
		logger.Warnf("Error rescheduling entry from %s: %v", set, err)
	}
}

func (f *ScheduledFetch) deadLetter(ctx context.Context, set, raw string, cause error) {
	logger.Warnf("Moving malformed entry from %s to the dead list: %v", set, cause)
	if err := f.client.RPush(ctx, f.namespace+"dead", raw).Err(); err != nil {
		logger.Criticalf("Error moving malformed entry to the dead list: %v", err)
	}
}
