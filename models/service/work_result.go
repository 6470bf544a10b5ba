package service

import (
	"os"
	"sync"
	"time"
)

// WorkResult records one attempt at one operation: when it started,
// when it finished, and what went wrong. Public fields exist for
// serialization in run reports; writes go through the methods, which
// lock internally.
type WorkResult struct {
	// Operation is the name of the operation: fetch-validate,
	// materialize-archive, etc.
	Operation string `json:"operation"`

	// Host is the name of the host on which the work ran.
	Host string `json:"host"`

	// Pid is the pid of the process doing this work.
	Pid int `json:"pid"`

	// StartedAt describes when the attempt started. If
	// StartedAt.IsZero(), the attempt has not begun.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt describes when the attempt completed. Completion
	// is not success; check Succeeded().
	FinishedAt time.Time `json:"finished_at"`

	// Errors describes things that went wrong during the attempt.
	Errors []string `json:"errors"`

	mutex *sync.RWMutex
}

func NewWorkResult(operation string) *WorkResult {
	hostname, _ := os.Hostname()
	return &WorkResult{
		Operation: operation,
		Host:      hostname,
		Pid:       os.Getpid(),
		Errors:    make([]string, 0),
		mutex:     &sync.RWMutex{},
	}
}

func (result *WorkResult) Start() {
	result.mutex.Lock()
	result.StartedAt = time.Now().UTC()
	result.mutex.Unlock()
}

func (result *WorkResult) Started() bool {
	result.mutex.RLock()
	defer result.mutex.RUnlock()
	return !result.StartedAt.IsZero()
}

func (result *WorkResult) Finish() {
	result.mutex.Lock()
	result.FinishedAt = time.Now().UTC()
	result.mutex.Unlock()
}

func (result *WorkResult) Finished() bool {
	result.mutex.RLock()
	defer result.mutex.RUnlock()
	return !result.FinishedAt.IsZero()
}

func (result *WorkResult) RunTime() time.Duration {
	result.mutex.RLock()
	defer result.mutex.RUnlock()
	if result.StartedAt.IsZero() {
		return time.Duration(0)
	}
	endTime := result.FinishedAt
	if endTime.IsZero() {
		endTime = time.Now().UTC()
	}
	return endTime.Sub(result.StartedAt)
}

func (result *WorkResult) AddError(err error) {
	result.mutex.Lock()
	result.Errors = append(result.Errors, err.Error())
	result.mutex.Unlock()
}

func (result *WorkResult) HasErrors() bool {
	result.mutex.RLock()
	defer result.mutex.RUnlock()
	return len(result.Errors) > 0
}

func (result *WorkResult) Succeeded() bool {
	result.mutex.RLock()
	defer result.mutex.RUnlock()
	return !result.FinishedAt.IsZero() && len(result.Errors) == 0
}
