package gofetch

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cihub/seelog"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"
)

var (
	logger      seelog.LoggerInterface = seelog.Disabled
	client      *redis.Client
	ctx         context.Context
	initMutex   sync.Mutex
	initialized bool
)

var workerSettings WorkerSettings

type WorkerSettings struct {
	QueuesString   string
	Queues         queuesFlag
	IntervalFloat  float64
	Interval       intervalFlag
	Concurrency    int
	Connections    int
	URI            string
	Namespace      string
	ExitOnComplete bool
	IsStrict       bool
	UseNumber      bool
	UseSchedule    bool
	ScheduleSets   []string
	SkipTLSVerify  bool
	TLSCertPath    string
	MasterName     string
	SentinelAddrs  []string
}

func SetSettings(settings WorkerSettings) {
	// force the flags to be parsed first before setting the configs.
	Init()
	workerSettings = settings
	if err := workerSettings.derive(); err != nil {
		logger.Criticalf("Error deriving settings: %v", err)
	}
}

// derive recomputes the parsed queue list and the poll interval from
// their raw counterparts. The queue list is rebuilt from scratch
// because queuesFlag.Set appends, so deriving onto the old slice
// would duplicate entries and reweight the queues on every pass.
func (s *WorkerSettings) derive() error {
	if s.QueuesString != "" {
		s.Queues = nil
		if err := s.Queues.Set(s.QueuesString); err != nil {
			return err
		}
	}
	// The scheduled fetcher discovers its target queues from the
	// messages themselves.
	if len(s.Queues) == 0 && !s.UseSchedule {
		return errorEmptyQueues
	}
	return s.Interval.SetFloat(s.IntervalFloat)
}

// Init initializes the gofetch process. This will be
// called by the Work function, but may be used by programs
// that wish to access gofetch functions and configuration
// without actually processing jobs.
func Init() error {
	initMutex.Lock()
	defer initMutex.Unlock()
	if !initialized {
		var err error
		logger, err = seelog.LoggerFromWriterWithMinLevel(os.Stdout, seelog.InfoLvl)
		if err != nil {
			return err
		}

		if err := flags(); err != nil {
			return err
		}
		ctx = context.Background()

		client, err = newRedisClient(workerSettings)
		if err != nil {
			return err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}

		initialized = true
	}

	return nil
}

// Close cleans up resources initialized by gofetch. This
// will be called by Work when cleaning up. However, if you
// are using the Init function to access gofetch functions
// and configuration without processing jobs by calling
// Work, you should run this function when cleaning up.
func Close() error {
	initMutex.Lock()
	defer initMutex.Unlock()
	if initialized {
		err := client.Close()
		if err != nil {
			return err
		}
		initialized = false
	}

	return nil
}

// Work starts the gofetch process. Check for errors in
// the return value. Work will take over the Go executable
// and will run until a QUIT, INT, or TERM signal is
// received, or until the queues are empty if the
// -exit-on-complete flag is set.
func Work() error {
	err := Init()
	if err != nil {
		return err
	}
	defer Close()

	if len(workerSettings.Queues) == 0 && !workerSettings.UseSchedule {
		return errorEmptyQueues
	}

	quit := signals()

	fetcher := NewFetcher(client, workerSettings, nil)
	poller, err := newPoller(workerSettings.Queues, fetcher)
	if err != nil {
		return err
	}
	units := poller.poll(time.Duration(workerSettings.Interval), quit)

	var monitor sync.WaitGroup

	for id := 0; id < workerSettings.Concurrency; id++ {
		worker, err := newWorker(strconv.Itoa(id), workerSettings.Queues)
		if err != nil {
			return err
		}
		worker.work(units, &monitor)
	}

	monitor.Wait()

	return nil
}
