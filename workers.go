package gofetch

import (
	"sync"
)

type workerFunc func(string, ...interface{}) error

type workersMutex struct {
	sync.RWMutex
	workers map[string]workerFunc
}

func (wm *workersMutex) Add(class string, worker workerFunc) {
	wm.Lock()
	defer wm.Unlock()

	wm.workers[class] = worker
}

func (wm *workersMutex) Get(class string) (worker workerFunc, ok bool) {
	wm.RLock()
	defer wm.RUnlock()

	worker, ok = wm.workers[class]
	return
}

var workers *workersMutex

func init() {
	workers = &workersMutex{
		RWMutex: sync.RWMutex{},
		workers: make(map[string]workerFunc),
	}
}

// Register registers a gofetch worker function. Class
// refers to the name of the class which enqueues the job.
// Worker is a function which accepts a queue and an
// arbitrary array of interfaces as arguments.
func Register(class string, worker workerFunc) {
	workers.Add(class, worker)
}

// Workers returns the class names with registered worker functions.
func Workers() []string {
	workers.RLock()
	defer workers.RUnlock()

	classes := make([]string, 0, len(workers.workers))
	for class := range workers.workers {
		classes = append(classes, class)
	}
	return classes
}
