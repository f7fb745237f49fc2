// Package processtest provides a recording process.Runner for tests.
package processtest

import (
	"context"
	"sync"

	"github.com/pynocchio/extbuild/internal/process"
)

// Result is the canned outcome of one fake invocation.
type Result struct {
	ExitCode int
	Output   []byte
	Err      error

	// Effect, when set, runs before the result is returned. Tests use it to
	// emulate files a real tool would write.
	Effect func(cmd process.Command) error
}

// Runner records every command and replays results in call order. Once the
// scripted results are exhausted it returns Default.
type Runner struct {
	mu      sync.Mutex
	Results []Result
	Default Result
	Calls   []process.Command
}

// Run implements process.Runner.
func (r *Runner) Run(_ context.Context, cmd process.Command) (int, error) {
	res := r.next(cmd)
	if res.Effect != nil {
		if err := res.Effect(cmd); err != nil {
			return -1, err
		}
	}
	return res.ExitCode, res.Err
}

// Output implements process.Runner.
func (r *Runner) Output(_ context.Context, cmd process.Command) ([]byte, error) {
	res := r.next(cmd)
	if res.Effect != nil {
		if err := res.Effect(cmd); err != nil {
			return nil, err
		}
	}
	return res.Output, res.Err
}

func (r *Runner) next(cmd process.Command) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, cmd)
	if len(r.Results) == 0 {
		return r.Default
	}
	res := r.Results[0]
	r.Results = r.Results[1:]
	return res
}

// CallCount returns the number of recorded invocations.
func (r *Runner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}
