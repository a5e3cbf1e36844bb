package gofetch

import (
	"context"
	"testing"
)

var queueNameTests = []struct {
	queue    string
	expected string
}{
	{
		"resque:queue:default",
		"default",
	},
	{
		"queue:default",
		"default",
	},
	{
		"default",
		"default",
	},
	{
		"myapp:queue:high",
		"high",
	},
	{
		"",
		"",
	},
}

func TestQueueName(t *testing.T) {
	for _, tt := range queueNameTests {
		unit := newUnitOfWork(tt.queue, "{}")
		actual := unit.QueueName()
		if actual != tt.expected {
			t.Errorf("QueueName(%q): expected %s, actual %s", tt.queue, tt.expected, actual)
		}
		if again := queueName(actual); again != actual {
			t.Errorf("queueName(%q): expected %s on second application, actual %s", actual, actual, again)
		}
	}
}

func TestUnitOfWorkRequeueRoundTrip(t *testing.T) {
	c := newTestClient(t)
	defer c.Close()
	background := context.Background()
	key := "gofetchtest:queue:roundtrip"
	c.Del(background, key)

	unit := newUnitOfWork(key, `{"class":"RoundTrip","args":["job1"]}`)
	if err := unit.Requeue(background, c); err != nil {
		t.Fatalf("Requeue: %v", err)
	}

	f := NewBasicFetch(c, "gofetchtest:", []string{"roundtrip"}, true)
	fetched, err := f.RetrieveWork(background)
	if err != nil {
		t.Fatalf("RetrieveWork: %v", err)
	}
	if fetched == nil {
		t.Fatal("RetrieveWork: expected a unit, actual nil")
	}
	if fetched.QueueName() != "roundtrip" {
		t.Errorf("QueueName: expected roundtrip, actual %s", fetched.QueueName())
	}
	if fetched.Payload() != unit.Payload() {
		t.Errorf("Payload: expected %s, actual %s", unit.Payload(), fetched.Payload())
	}

	c.Del(background, key)
}
