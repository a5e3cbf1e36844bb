// Signal Handling in gofetch
//
// To stop gofetch, send a QUIT, TERM, or INT
// signal to the process. This will immediately
// stop work fetching. There can be up to
// $CONCURRENCY jobs currently running, which
// will continue to run until they are finished.
//
// Failure Modes
//
// A unit of work that has been fetched but not
// yet handed to a worker when the signal arrives
// is pushed back onto its originating queue. If
// the process is killed with a KILL or by a
// system failure, that unit is lost without any
// representation in either the queue or the
// worker variable.
//
// If you are running gofetch on a system like
// Heroku, which sends a TERM to signal a process
// that it needs to stop, ten seconds later sends
// a KILL to force the process to stop, your jobs
// must finish within 10 seconds or they may be
// lost. Jobs will be recoverable from the Redis
// database under
//
//	resque:worker:<hostname>:<process-id>-<worker-id>:<queues>
//
// as a JSON object with keys queue, run_at, and
// payload, but the process is manual.
// Additionally, there is no guarantee that the
// job in Redis under the worker key has not
// finished, if the process is killed before
// gofetch can flush the update to Redis.
package gofetch

import (
	"os"
	"os/signal"
	"syscall"
)

func signals() <-chan bool {
	quit := make(chan bool)

	go func() {
		signals := make(chan os.Signal, 1)
		defer close(signals)

		signal.Notify(signals, syscall.SIGQUIT, syscall.SIGTERM, os.Interrupt)
		defer signal.Stop(signals)

		<-signals
		quit <- true
	}()

	return quit
}
