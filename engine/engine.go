// Package engine is the ensemble driver: it owns a fleet of trials, steps
// them forward in parallel rounds, enforces an optional wall-clock budget,
// streams intermediate and final results, and averages completed trials'
// terminal solutions.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"crnensemble/network"
	"crnensemble/solution"
	"crnensemble/trial"
)

// Engine is the main backend runtime object: it owns the processing and
// completed trial fleets, the prime network (kept for timeline replay),
// and the configured response behavior.
type Engine struct {
	numTrials          int
	maxRuntime         time.Duration
	hasMaxRuntime      bool
	maxSemiStableSteps int

	processing map[trial.ID]*trial.Trial
	completed  map[trial.ID]*trial.Trial

	primeNetwork *network.ReactionNetwork
	verbosity    Verbosity
	response     chan Result
}

// Run steps every processing trial in parallel, round by round, until all
// numTrials trials report Stable, then returns the final species-wise
// average. It returns ErrExceededRuntime, with no result, if the
// configured deadline passes first.
func (e *Engine) Run() (Result, error) {
	if e.response != nil {
		defer close(e.response)
	}

	var deadline time.Time
	if e.hasMaxRuntime {
		deadline = time.Now().Add(e.maxRuntime)
	}

	for len(e.completed) < e.numTrials {
		states, err := e.stepRound()
		if err != nil {
			return Result{}, err
		}

		for _, state := range states {
			if state.Done {
				id := state.ID
				e.completed[id] = e.processing[id]
				delete(e.processing, id)
			}
		}

		if e.verbosity == VerbosityFull {
			snapshot := make([]solution.Solution, 0, len(states))
			for _, state := range states {
				snapshot = append(snapshot, state.Solution)
			}
			if err := e.send(Result{Kind: Intermediary, Values: averageTrials(snapshot)}); err != nil {
				return Result{}, err
			}
		}

		if e.hasMaxRuntime && time.Now().After(deadline) {
			return Result{}, ErrExceededRuntime
		}
	}

	finalStates := make([]solution.Solution, 0, len(e.completed))
	for _, t := range e.completed {
		finalStates = append(finalStates, t.Solution())
	}

	final := Result{Kind: Final, Values: averageTrials(finalStates)}
	if err := e.send(final); err != nil {
		return Result{}, err
	}
	return final, nil
}

// send delivers a result on the response channel if one exists. A blocked
// send throttles the driver (back-pressure), never the workers; in
// VerbosityNone no channel exists and send is a no-op.
func (e *Engine) send(r Result) error {
	if e.response == nil {
		return nil
	}
	// A full channel blocks here by design: this is the back-pressure
	// point in spec.md §5. A slow consumer throttles the driver, never
	// the workers, which have already finished their round by the time
	// send is called.
	e.response <- r
	return nil
}

// stepRound dispatches every processing trial to a data-parallel worker
// pool — sharded across GOMAXPROCS workers via golang.org/x/sync/errgroup
// — and fans each worker's output back through channerics.Merge, giving a
// single ordered collection point per round (spec.md §5's "parallel-reduce
// barrier"). A worker error (a violated precondition) aborts the whole
// round.
func (e *Engine) stepRound() ([]trial.State, error) {
	shards := shardTrials(e.processing, numWorkers())

	group, _ := errgroup.WithContext(context.Background())
	outputs := make([]<-chan trial.State, 0, len(shards))

	for _, shard := range shards {
		shard := shard
		out := make(chan trial.State, len(shard))
		outputs = append(outputs, out)

		group.Go(func() (err error) {
			defer close(out)
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: trial worker panicked: %v", ErrUnknown, r)
				}
			}()

			for _, t := range shard {
				state, stepErr := t.Step()
				if stepErr != nil {
					return fmt.Errorf("%w: %v", ErrUnknown, stepErr)
				}
				out <- state
			}
			return nil
		})
	}

	done := make(chan struct{})
	merged := channerics.Merge(done, outputs...)

	var states []trial.State
	for state := range merged {
		states = append(states, state)
	}
	close(done)

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

func shardTrials(processing map[trial.ID]*trial.Trial, workers int) [][]*trial.Trial {
	if workers < 1 {
		workers = 1
	}
	shards := make([][]*trial.Trial, workers)
	i := 0
	for _, t := range processing {
		shards[i%workers] = append(shards[i%workers], t)
		i++
	}
	nonEmpty := shards[:0]
	for _, shard := range shards {
		if len(shard) > 0 {
			nonEmpty = append(nonEmpty, shard)
		}
	}
	return nonEmpty
}

func numWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Completed returns the set of trials that have reached Stable so far.
func (e *Engine) Completed() map[trial.ID]*trial.Trial {
	return e.completed
}
