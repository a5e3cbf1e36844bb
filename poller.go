package gofetch

import (
	"time"
)

type poller struct {
	process
	fetcher Fetcher
}

func newPoller(queues []string, fetcher Fetcher) (*poller, error) {
	process, err := newProcess("poller", queues)
	if err != nil {
		return nil, err
	}
	return &poller{
		process: *process,
		fetcher: fetcher,
	}, nil
}

// poll bridges the fetcher to the workers: one goroutine calls
// RetrieveWork in a loop and hands units over a channel. On quit, a
// unit that was retrieved but not yet handed to a worker goes back to
// the backend through BulkRequeue.
func (p *poller) poll(interval time.Duration, quit <-chan bool) <-chan *UnitOfWork {
	units := make(chan *UnitOfWork)

	if err := p.open(); err != nil {
		logger.Criticalf("Error registering poller %s: %v", p, err)
	}
	if err := p.start(); err != nil {
		logger.Criticalf("Error recording start of poller %s: %v", p, err)
	}

	go func() {
		defer func() {
			close(units)

			if err := p.finish(); err != nil {
				logger.Criticalf("Error recording finish of poller %s: %v", p, err)
			}
			if err := p.close(); err != nil {
				logger.Criticalf("Error deregistering poller %s: %v", p, err)
			}
		}()

		for {
			select {
			case <-quit:
				return
			default:
				unit, err := p.fetcher.RetrieveWork(ctx)
				if err != nil {
					logger.Criticalf("Error on %v retrieving work from %v: %v", p, p.Queues, err)
					select {
					case <-quit:
						return
					case <-time.After(interval):
					}
					continue
				}
				if unit == nil {
					if workerSettings.ExitOnComplete {
						return
					}
					logger.Debugf("Sleeping for %v", interval)
					logger.Debugf("Waiting for %v", p.Queues)
					select {
					case <-quit:
						return
					case <-time.After(interval):
					}
					continue
				}

				select {
				case units <- unit:
				case <-quit:
					p.fetcher.BulkRequeue(ctx, []*UnitOfWork{unit})
					return
				}
			}
		}
	}()

	return units
}
