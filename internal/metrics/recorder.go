// Package metrics records serving metrics: HTTP request outcomes and content
// store fetch results.
package metrics

import "time"

// FetchResult labels the outcome of one content store read.
type FetchResult string

const (
	FetchOK    FetchResult = "ok"
	FetchError FetchResult = "error"
	FetchEmpty FetchResult = "empty"
)

// Recorder abstracts metric emission so handlers never depend on a concrete
// backend and tests can pass a Noop.
type Recorder interface {
	ObserveRequest(path string, status int, d time.Duration)
	IncFetch(query string, result FetchResult)
}

// Noop discards all observations.
type Noop struct{}

func (Noop) ObserveRequest(string, int, time.Duration) {}
func (Noop) IncFetch(string, FetchResult)              {}

var _ Recorder = Noop{}
