// Package async provides utilities for parallel task execution.
//
// This package contains a small helper for running multiple named
// operations concurrently and collecting the first error. It is used to
// drive independent per-node lifecycle operations in parallel.
package async

import (
	"context"
	"fmt"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel executes multiple tasks in parallel and returns the first
// error encountered. All tasks are started concurrently, and the function
// waits for all to complete before returning, so a failing task never
// abandons its siblings mid-flight.
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		name string
		err  error
	}

	resultChan := make(chan result, len(tasks))

	for _, task := range tasks {
		task := task
		go func() {
			err := task.Func(ctx)
			resultChan <- result{name: task.Name, err: err}
		}()
	}

	var firstError error
	for i := 0; i < len(tasks); i++ {
		res := <-resultChan
		if res.err != nil && firstError == nil {
			firstError = fmt.Errorf("%s: %w", res.name, res.err)
		}
	}

	return firstError
}
