package gofetch

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type process struct {
	Hostname string
	Pid      int
	ID       string
	Queues   []string
}

func newProcess(id string, queues []string) (*process, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	return &process{
		Hostname: hostname,
		Pid:      os.Getpid(),
		ID:       id,
		Queues:   queues,
	}, nil
}

func (p *process) String() string {
	return fmt.Sprintf("%s:%d-%s:%s", p.Hostname, p.Pid, p.ID, strings.Join(p.Queues, ","))
}

func (p *process) open() error {
	pipe := client.Pipeline()
	pipe.SAdd(ctx, fmt.Sprintf("%sworkers", workerSettings.Namespace), p.String())
	pipe.Set(ctx, fmt.Sprintf("%sstat:processed:%v", workerSettings.Namespace, p), "0", 0)
	pipe.Set(ctx, fmt.Sprintf("%sstat:failed:%v", workerSettings.Namespace, p), "0", 0)
	_, err := pipe.Exec(ctx)

	return err
}

func (p *process) close() error {
	logger.Infof("%v shutdown", p)
	pipe := client.Pipeline()
	pipe.SRem(ctx, fmt.Sprintf("%sworkers", workerSettings.Namespace), p.String())
	pipe.Del(ctx, fmt.Sprintf("%sstat:processed:%s", workerSettings.Namespace, p))
	pipe.Del(ctx, fmt.Sprintf("%sstat:failed:%s", workerSettings.Namespace, p))
	_, err := pipe.Exec(ctx)

	return err
}

func (p *process) start() error {
	return client.Set(ctx, fmt.Sprintf("%sworker:%s:started", workerSettings.Namespace, p), time.Now().String(), 0).Err()
}

func (p *process) finish() error {
	pipe := client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%sworker:%s", workerSettings.Namespace, p))
	pipe.Del(ctx, fmt.Sprintf("%sworker:%s:started", workerSettings.Namespace, p))
	_, err := pipe.Exec(ctx)

	return err
}

func (p *process) fail() error {
	pipe := client.Pipeline()
	pipe.Incr(ctx, fmt.Sprintf("%sstat:failed", workerSettings.Namespace))
	pipe.Incr(ctx, fmt.Sprintf("%sstat:failed:%s", workerSettings.Namespace, p))
	_, err := pipe.Exec(ctx)

	return err
}
