// Package gofetch is the work-fetching layer of a
// Redis-backed background job engine. It pulls units of
// work from a set of prioritized queues, or from a
// time-ordered schedule set, and hands them to worker
// goroutines, pushing in-flight work back onto its queue
// when the process is asked to stop.
//
// Work is fetched through one of two strategies sharing
// the Fetcher interface. The immediate strategy issues a
// blocking pop across the configured queues; unless the
// -strict flag is set, the poll order is reshuffled on
// every call so that no queue can starve the others, and a
// queue listed with a =weight suffix is favored in
// proportion to its weight. The scheduled strategy pops
// due entries from a sorted set in a single atomic
// round trip, so that an entry is delivered to exactly one
// poller; entries carrying an expiration or cron field are
// re-scheduled before they are delivered.
//
// To create a worker, write a function matching the
// signature
//
//	func(string, ...interface{}) error
//
// and register it using
//
//	gofetch.Register("MyClass", myFunc)
//
// Here is a simple worker that prints its arguments:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/quarterlight/gofetch"
//	)
//
//	func myFunc(queue string, args ...interface{}) error {
//		fmt.Printf("From %s, %v\n", queue, args)
//		return nil
//	}
//
//	func init() {
//		gofetch.Register("MyClass", myFunc)
//	}
//
//	func main() {
//		if err := gofetch.Work(); err != nil {
//			fmt.Println("Error:", err)
//		}
//	}
//
// To create workers that share a database pool or other
// resources, use a closure to share variables.
//
//	func newMyFunc(uri string) func(queue string, args ...interface{}) error {
//		foo := NewFoo(uri)
//		return func(queue string, args ...interface{}) error {
//			foo.Bar(args)
//			return nil
//		}
//	}
//
// Jobs are enqueued with Enqueue, or parked on the
// schedule with EnqueueAt, EnqueueIn, EnqueueEvery, and
// EnqueueCron. Worker functions receive the queue they are
// serving and a slice of interfaces. To use the arguments
// as parameters to other functions, use Go type assertions
// to convert them into usable types.
//
//	// Expecting (int, string, float64)
//	func myFunc(queue string, args ...interface{}) error {
//		idNum, ok := args[0].(json.Number)
//		if !ok {
//			return errorInvalidParam
//		}
//		id, err := idNum.Int64()
//		if err != nil {
//			return errorInvalidParam
//		}
//		name, ok := args[1].(string)
//		if !ok {
//			return errorInvalidParam
//		}
//		weightNum, ok := args[2].(json.Number)
//		if !ok {
//			return errorInvalidParam
//		}
//		weight, err := weightNum.Float64()
//		if err != nil {
//			return errorInvalidParam
//		}
//		doSomething(id, name, weight)
//		return nil
//	}
//
// For testing, it is helpful to use the redis-cli program
// to insert jobs onto the Redis queue:
//
//	redis-cli -r 100 RPUSH resque:queue:myqueue '{"class":"MyClass","args":["hi","there"]}'
//
// will insert 100 jobs for the MyClass worker onto the
// myqueue queue.
package gofetch
