package gofetch

import (
	"flag"
	"os"
)

func init() {
	flag.StringVar(&workerSettings.QueuesString, "queues", "", "a comma-separated list of Redis queues with optional =weight suffixes")

	flag.Float64Var(&workerSettings.IntervalFloat, "interval", 5.0, "sleep interval when no work is found")

	flag.IntVar(&workerSettings.Concurrency, "concurrency", 25, "the maximum number of concurrently executing jobs")

	flag.IntVar(&workerSettings.Connections, "connections", 25+1, "the maximum number of connections to the Redis database")

	flag.StringVar(&workerSettings.URI, "uri", getEnv("GOFETCH_REDIS_URI", "redis://localhost:6379/"), "the URI of the Redis server")

	flag.StringVar(&workerSettings.Namespace, "namespace", getEnv("GOFETCH_NAMESPACE", "resque:"), "the Redis namespace prefix")

	flag.BoolVar(&workerSettings.IsStrict, "strict", false, "poll queues in the configured order instead of shuffling per poll")

	flag.BoolVar(&workerSettings.UseSchedule, "schedule", os.Getenv("GOFETCH_SCHEDULE") != "", "fetch due entries from the schedule set instead of the work queues")

	flag.BoolVar(&workerSettings.ExitOnComplete, "exit-on-complete", false, "exit when there is no more work")

	flag.BoolVar(&workerSettings.UseNumber, "use-number", false, "decode numeric JSON arguments as json.Number")
}

func flags() error {
	if !flag.Parsed() {
		flag.Parse()
	}
	return workerSettings.derive()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
