package gofetch

import (
	"time"
)

// work is the running-job record written under the worker key so that
// an in-flight job survives in Redis if the process is killed.
type work struct {
	Queue   string    `json:"queue"`
	RunAt   time.Time `json:"run_at"`
	Payload Payload   `json:"payload"`
}
