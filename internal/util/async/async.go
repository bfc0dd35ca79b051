package async

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// TypedTask is a Task that produces a result.
type TypedTask[R any] struct {
	Name string
	Func func(context.Context) (R, error)
}

// Option configures a parallel run.
type Option func(*options)

type options struct {
	limit int
	logf  func(format string, v ...any)
}

// WithLimit caps the number of tasks running at the same time.
// Zero or a negative value means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLogging logs task start and completion times through logf.
func WithLogging(logf func(format string, v ...any)) Option {
	return func(o *options) {
		o.logf = logf
	}
}

// RunParallel executes multiple tasks in parallel and returns the first error encountered.
// All tasks are started concurrently, and the function waits for all to complete.
// If any task returns an error, the error of the earliest submitted failing task
// is returned after all tasks finish. Completion order never changes which error wins.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "cluster dev", Func: p.reconcileDev},
//	    {Name: "cluster prod", Func: p.reconcileProd},
//	}
//	if err := RunParallel(ctx, tasks); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task, opts ...Option) error {
	typed := make([]TypedTask[struct{}], len(tasks))
	for i, task := range tasks {
		typed[i] = TypedTask[struct{}]{
			Name: task.Name,
			Func: func(ctx context.Context) (struct{}, error) {
				return struct{}{}, task.Func(ctx)
			},
		}
	}
	_, err := Collect(ctx, typed, opts...)
	return err
}

// Collect executes typed tasks in parallel and returns their results in
// submission order. Error semantics are the same as RunParallel; results of
// tasks that succeeded are still populated when an error is returned.
func Collect[R any](ctx context.Context, tasks []TypedTask[R], opts ...Option) ([]R, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}

	results := make([]R, len(tasks))
	errs := make([]error, len(tasks))

	var group errgroup.Group
	if cfg.limit > 0 {
		group.SetLimit(cfg.limit)
	}

	// Start all tasks
	for i, task := range tasks {
		group.Go(func() error {
			if cfg.logf != nil {
				cfg.logf("[%s] Starting at %s", task.Name, time.Now().Format("15:04:05"))
			}
			results[i], errs[i] = task.Func(ctx)
			if cfg.logf != nil {
				cfg.logf("[%s] Completed at %s", task.Name, time.Now().Format("15:04:05"))
			}
			return nil
		})
	}

	// Every goroutine returns nil so Wait only drains the group.
	_ = group.Wait()

	for i, err := range errs {
		if err != nil {
			return results, fmt.Errorf("failed to reconcile %s: %w", tasks[i].Name, err)
		}
	}

	return results, nil
}

// ForEach runs fn for every item in parallel. name labels the task of an
// item in the returned error.
func ForEach[T any](ctx context.Context, items []T, name func(T) string, fn func(context.Context, T) error, opts ...Option) error {
	tasks := make([]Task, len(items))
	for i, item := range items {
		tasks[i] = Task{
			Name: name(item),
			Func: func(ctx context.Context) error {
				return fn(ctx, item)
			},
		}
	}
	return RunParallel(ctx, tasks, opts...)
}
