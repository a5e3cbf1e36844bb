package gofetch

import (
	"testing"
)

var processStringTests = []struct {
	p        process
	expected string
}{
	{
		process{},
		":0-:",
	},
	{
		process{
			Hostname: "fetcher-1",
			Pid:      12345,
			ID:       "poller",
			Queues:   []string{"critical", "default"},
		},
		"fetcher-1:12345-poller:critical,default",
	},
}

func TestProcessString(t *testing.T) {
	for _, tt := range processStringTests {
		actual := tt.p.String()
		if actual != tt.expected {
			t.Errorf("Process(%#v): expected %s, actual %s", tt.p, tt.expected, actual)
		}
	}
}
