package gofetch

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestBasicFetchStrictPollOrder(t *testing.T) {
	f := NewBasicFetch(nil, "resque:", []string{"high", "high", "low"}, true)
	expected := []string{"resque:queue:high", "resque:queue:low"}
	for i := 0; i < 10; i++ {
		if actual := f.pollOrder(); !reflect.DeepEqual(actual, expected) {
			t.Errorf("pollOrder: expected %v, actual %v", expected, actual)
		}
	}
}

func TestBasicFetchShuffledPollOrder(t *testing.T) {
	f := NewBasicFetch(nil, "resque:", []string{"a", "b", "c"}, false)
	members := map[string]bool{
		"resque:queue:a": true,
		"resque:queue:b": true,
		"resque:queue:c": true,
	}

	first := make(map[string]int)
	for i := 0; i < 300; i++ {
		order := f.pollOrder()
		if len(order) != 3 {
			t.Fatalf("pollOrder: expected 3 queues, actual %v", order)
		}
		seen := make(map[string]bool)
		for _, queue := range order {
			if !members[queue] {
				t.Fatalf("pollOrder: unexpected queue %s", queue)
			}
			if seen[queue] {
				t.Fatalf("pollOrder: duplicate queue %s in %v", queue, order)
			}
			seen[queue] = true
		}
		first[order[0]]++
	}

	for queue := range members {
		if first[queue] == 0 {
			t.Errorf("pollOrder: %s was never polled first in 300 draws", queue)
		}
	}
}

func TestBasicFetchWeightedPollOrder(t *testing.T) {
	f := NewBasicFetch(nil, "resque:", []string{"high", "high", "low"}, false)

	first := make(map[string]int)
	for i := 0; i < 600; i++ {
		order := f.pollOrder()
		if len(order) != 2 {
			t.Fatalf("pollOrder: expected 2 queues after dedup, actual %v", order)
		}
		first[order[0]]++
	}

	if first["resque:queue:high"] <= first["resque:queue:low"] {
		t.Errorf("pollOrder: expected high to lead more often than low, actual %d vs %d",
			first["resque:queue:high"], first["resque:queue:low"])
	}
}

func TestBasicFetchRetrieveWork(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	background := context.Background()
	key := "gofetchtest:queue:default"
	c.Del(background, key)
	if err := c.RPush(background, key, "job1").Err(); err != nil {
		t.Fatalf("RPUSH: %v", err)
	}

	f := NewBasicFetch(c, "gofetchtest:", []string{"default"}, true)
	unit, err := f.RetrieveWork(background)
	if err != nil {
		t.Fatalf("RetrieveWork: %v", err)
	}
	if unit == nil {
		t.Fatal("RetrieveWork: expected a unit, actual nil")
	}
	if unit.QueueName() != "default" {
		t.Errorf("QueueName: expected default, actual %s", unit.QueueName())
	}
	if unit.Payload() != "job1" {
		t.Errorf("Payload: expected job1, actual %s", unit.Payload())
	}

	c.Del(background, key)
}

func TestBasicFetchRetrieveWorkIdle(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()

	f := NewBasicFetch(c, "gofetchtest:", []string{"idle"}, true)
	start := time.Now()
	unit, err := f.RetrieveWork(context.Background())
	if err != nil {
		t.Fatalf("RetrieveWork: %v", err)
	}
	if unit != nil {
		t.Errorf("RetrieveWork: expected nil on idle, actual %v", unit)
	}
	if elapsed := time.Since(start); elapsed > pollTimeout+time.Second {
		t.Errorf("RetrieveWork: blocked for %v, expected at most about %v", elapsed, pollTimeout)
	}
}

func TestBulkRequeueEmpty(t *testing.T) {
	f := NewBasicFetch(nil, "resque:", []string{"default"}, true)
	// Must not touch the backend at all.
	f.BulkRequeue(context.Background(), nil)
}

func TestBulkRequeueGroups(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	background := context.Background()
	c.Del(background, "gofetchtest:queue:one", "gofetchtest:queue:two")

	f := NewBasicFetch(c, "gofetchtest:", []string{"one", "two"}, true)
	f.BulkRequeue(background, []*UnitOfWork{
		newUnitOfWork("gofetchtest:queue:one", "a"),
		newUnitOfWork("gofetchtest:queue:one", "b"),
		newUnitOfWork("gofetchtest:queue:two", "c"),
	})

	if n, _ := c.LLen(background, "gofetchtest:queue:one").Result(); n != 2 {
		t.Errorf("queue one: expected 2 requeued payloads, actual %d", n)
	}
	if n, _ := c.LLen(background, "gofetchtest:queue:two").Result(); n != 1 {
		t.Errorf("queue two: expected 1 requeued payload, actual %d", n)
	}

	c.Del(background, "gofetchtest:queue:one", "gofetchtest:queue:two")
}

func TestBulkRequeueSwallowsBackendFailure(t *testing.T) {
	c := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer c.Close()

	f := NewBasicFetch(c, "resque:", []string{"default"}, true)
	// Must return normally despite the unreachable backend.
	f.BulkRequeue(context.Background(), []*UnitOfWork{
		newUnitOfWork("resque:queue:default", "job1"),
	})
}
