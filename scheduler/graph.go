// Package scheduler runs named operations through a bounded worker
// pool, honoring declared dependencies and skipping any task whose
// declared target paths all exist from a prior run.
package scheduler

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/natcap/ecoshard-services/models/service"
	"github.com/natcap/ecoshard-services/util"
	"github.com/op/go-logging"
)

// Graph schedules tasks. Submit may be called from any goroutine
// until Close, which waits for everything and reports the first
// failure.
type Graph struct {
	logger *logging.Logger
	slots  chan struct{}
	wg     sync.WaitGroup
	mutex  sync.Mutex
	tasks  []*Task
}

// Task is a handle on one submitted operation. Wait blocks until the
// task has finished, been skipped, or failed.
type Task struct {
	ID          string
	Name        string
	Result      *service.WorkResult
	fn          func() error
	deps        []*Task
	targetPaths []string
	done        chan struct{}
	err         error
	skipped     bool
}

// NewGraph creates a Graph that runs at most workers tasks at once.
func NewGraph(workers int, logger *logging.Logger) *Graph {
	if workers < 1 {
		workers = 1
	}
	return &Graph{
		logger: logger,
		slots:  make(chan struct{}, workers),
	}
}

// Submit registers fn to run under name once every task in deps has
// succeeded. If every path in targetPaths already exists the task is
// skipped without running fn; tasks with no target paths always run.
// Tasks waiting on dependencies don't occupy worker slots.
func (g *Graph) Submit(name string, fn func() error, deps []*Task, targetPaths []string) *Task {
	task := &Task{
		ID:          uuid.New().String(),
		Name:        name,
		Result:      service.NewWorkResult(name),
		fn:          fn,
		deps:        deps,
		targetPaths: targetPaths,
		done:        make(chan struct{}),
	}
	g.mutex.Lock()
	g.tasks = append(g.tasks, task)
	g.mutex.Unlock()
	g.wg.Add(1)
	go g.runTask(task)
	return task
}

func (g *Graph) runTask(task *Task) {
	defer g.wg.Done()
	defer close(task.done)
	for _, dep := range task.deps {
		if depErr := dep.Wait(); depErr != nil {
			task.err = fmt.Errorf("dependency %s failed: %w", dep.Name, depErr)
			task.Result.AddError(task.err)
			return
		}
	}
	if len(task.targetPaths) > 0 && util.AllFilesExist(task.targetPaths) {
		task.skipped = true
		g.logger.Infof("skipping %s: all target paths exist", task.Name)
		return
	}
	g.slots <- struct{}{}
	defer func() { <-g.slots }()

	g.logger.Debugf("starting %s (%s)", task.Name, task.ID)
	task.Result.Start()
	task.err = task.fn()
	if task.err != nil {
		task.Result.AddError(task.err)
		g.logger.Errorf("%s failed: %v", task.Name, task.err)
	}
	task.Result.Finish()
	g.logger.Debugf("finished %s in %s", task.Name, task.Result.RunTime())
}

// Wait blocks until the task is done and returns its error, which for
// a task whose dependency failed describes that dependency.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Skipped reports whether the task was satisfied by pre-existing
// target paths. Only meaningful after Wait.
func (t *Task) Skipped() bool {
	<-t.done
	return t.skipped
}

// Close waits for every submitted task and returns the first error in
// submission order, if any.
func (g *Graph) Close() error {
	g.wg.Wait()
	g.mutex.Lock()
	defer g.mutex.Unlock()
	ran, skipped, failed := 0, 0, 0
	var firstErr error
	for _, task := range g.tasks {
		switch {
		case task.err != nil:
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("task %s: %w", task.Name, task.err)
			}
		case task.skipped:
			skipped++
		default:
			ran++
		}
	}
	g.logger.Infof("graph closed: %d ran, %d skipped, %d failed", ran, skipped, failed)
	return firstErr
}
