package gofetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

type worker struct {
	process
}

type stacktraceError struct {
	Err        error
	Stacktrace []string
}

func (e *stacktraceError) Error() string {
	return e.Err.Error()
}

func newWorker(id string, queues []string) (*worker, error) {
	process, err := newProcess(id, queues)
	if err != nil {
		return nil, err
	}
	return &worker{
		process: *process,
	}, nil
}

func (w *worker) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *worker) start(unit *UnitOfWork, payload *Payload) error {
	work := &work{
		Queue:   unit.QueueName(),
		RunAt:   time.Now(),
		Payload: *payload,
	}

	buffer, err := json.Marshal(work)
	if err != nil {
		return err
	}

	if err := client.Set(ctx, fmt.Sprintf("%sworker:%s", workerSettings.Namespace, w), buffer, 0).Err(); err != nil {
		return err
	}
	logger.Debugf("Processing %s since %s [%v]", work.Queue, work.RunAt, work.Payload.Class)

	return w.process.start()
}

func (w *worker) fail(unit *UnitOfWork, payload *Payload, traceErr *stacktraceError) error {
	failure := &failure{
		FailedAt:  time.Now(),
		Payload:   *payload,
		Exception: "Error",
		Error:     traceErr.Error(),
		Worker:    w,
		Queue:     unit.QueueName(),
		Backtrace: traceErr.Stacktrace,
	}
	buffer, err := json.Marshal(failure)
	if err != nil {
		return err
	}
	if err := client.RPush(ctx, fmt.Sprintf("%sfailed", workerSettings.Namespace), buffer).Err(); err != nil {
		return err
	}

	return w.process.fail()
}

func (w *worker) succeed() error {
	pipe := client.Pipeline()
	pipe.Incr(ctx, fmt.Sprintf("%sstat:processed", workerSettings.Namespace))
	pipe.Incr(ctx, fmt.Sprintf("%sstat:processed:%s", workerSettings.Namespace, w))
	_, err := pipe.Exec(ctx)

	return err
}

func (w *worker) finish(unit *UnitOfWork, payload *Payload, traceErr *stacktraceError) error {
	if traceErr.Err != nil {
		w.fail(unit, payload, traceErr)
	} else {
		unit.Acknowledge()
		w.succeed()
	}
	return w.process.finish()
}

func (w *worker) work(units <-chan *UnitOfWork, monitor *sync.WaitGroup) {
	if err := w.open(); err != nil {
		logger.Criticalf("Error registering worker %v: %v", w, err)
		return
	}

	monitor.Add(1)

	go func() {
		defer func() {
			defer monitor.Done()

			if err := w.close(); err != nil {
				logger.Criticalf("Error deregistering worker %v: %v", w, err)
			}
		}()
		for unit := range units {
			payload, err := decodePayload(unit.Payload(), workerSettings.UseNumber)
			if err != nil {
				logger.Criticalf("Error decoding payload from %s: %v", unit.QueueName(), err)
				w.finish(unit, &Payload{}, &stacktraceError{Err: err})
				continue
			}

			if workerFunc, ok := workers.Get(payload.Class); ok {
				w.run(unit, payload, workerFunc)

				logger.Debugf("done: (UnitOfWork{%s} | %s | %v)", unit.QueueName(), payload.Class, payload.Args)
			} else {
				errorLog := fmt.Sprintf("No worker for %s in queue %s with args %v", payload.Class, unit.QueueName(), payload.Args)
				logger.Critical(errorLog)

				w.finish(unit, payload, &stacktraceError{Err: errors.New(errorLog)})
			}
		}
	}()
}

func (w *worker) run(unit *UnitOfWork, payload *Payload, workerFunc workerFunc) {
	var traceErr stacktraceError
	defer func() {
		w.finish(unit, payload, &traceErr)
	}()
	defer func() {
		if r := recover(); r != nil {
			stackBuf := make([]byte, 2048)
			runtime.Stack(stackBuf, false)
			stack := string(stackBuf[:])
			traceErr.Err = errors.New(fmt.Sprint(r))
			traceErr.Stacktrace = strings.Split(stack, "\n")
		}
	}()

	if err := w.start(unit, payload); err != nil {
		logger.Criticalf("Error recording start of %s on worker %v: %v", payload.Class, w, err)
	}
	traceErr.Err = workerFunc(unit.QueueName(), payload.Args...)
}
