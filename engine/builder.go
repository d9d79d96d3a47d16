package engine

import (
	"time"

	"crnensemble/network"
	"crnensemble/trial"
)

// responseChanCapacity bounds the response channel so a slow consumer
// applies back-pressure to the driver rather than being able to stall the
// workers themselves (spec.md §5).
const responseChanCapacity = 128

// Verbosity selects how much the engine reports while running. It is
// modeled as a closed enum guarding an optional channel handle, never as
// subclasses (spec.md §9 "polymorphic return verbosity").
type Verbosity int

const (
	// VerbosityMinimal sends only the terminal Final result.
	VerbosityMinimal Verbosity = iota
	// VerbosityFull sends an Intermediary result every round plus a
	// terminal Final result.
	VerbosityFull
	// VerbosityNone sends nothing; the response channel is absent.
	VerbosityNone
)

// Builder fluently configures an Engine before Build constructs it.
// Defaults: 100 trials, unlimited runtime, 99 max semi-stable steps,
// VerbosityMinimal.
type Builder struct {
	numTrials          int
	maxRuntime         time.Duration
	hasMaxRuntime      bool
	maxSemiStableSteps int
	verbosity          Verbosity
	primeNetwork       *network.ReactionNetwork
}

// New returns a Builder wrapping primeNetwork with the defaults above.
func New(primeNetwork *network.ReactionNetwork) *Builder {
	return &Builder{
		numTrials:          100,
		maxSemiStableSteps: 99,
		verbosity:          VerbosityMinimal,
		primeNetwork:       primeNetwork,
	}
}

// Trials sets the number of independent trials to run before averaging.
func (b *Builder) Trials(count int) *Builder {
	b.numTrials = count
	return b
}

// Runtime sets the wall-clock budget, in whole seconds, after which Run
// aborts with ErrExceededRuntime.
func (b *Builder) Runtime(seconds uint64) *Builder {
	b.maxRuntime = time.Duration(seconds) * time.Second
	b.hasMaxRuntime = true
	return b
}

// Tolerance overrides the default max-semi-stable-steps count. Intended
// only for a CRN design that is exiting prematurely and could otherwise be
// fixed by better network design.
func (b *Builder) Tolerance(steps int) *Builder {
	b.maxSemiStableSteps = steps
	return b
}

// Verbose toggles between VerbosityMinimal and VerbosityFull. It is a
// no-op once NoResponse has selected VerbosityNone.
func (b *Builder) Verbose() *Builder {
	switch b.verbosity {
	case VerbosityMinimal:
		b.verbosity = VerbosityFull
	case VerbosityFull:
		b.verbosity = VerbosityMinimal
	}
	return b
}

// NoResponse disables all response-channel emission; Run's return value is
// the only way to observe the result.
func (b *Builder) NoResponse() *Builder {
	b.verbosity = VerbosityNone
	return b
}

// Build consumes the builder, cloning primeNetwork once per trial and
// reseeding each clone from a fresh random 32-byte draw so trials are
// statistically independent, and returns the constructed Engine along with
// its response channel (nil under VerbosityNone).
func (b *Builder) Build() (*Engine, <-chan Result) {
	processing := make(map[trial.ID]*trial.Trial, b.numTrials)
	for i := 0; i < b.numTrials; i++ {
		id := trial.ID(i)
		clonedNet := b.primeNetwork.Clone().WithSeed(network.RandomSeed())
		processing[id] = trial.New(clonedNet, b.maxSemiStableSteps, id)
	}

	var responseChan chan Result
	if b.verbosity != VerbosityNone {
		responseChan = make(chan Result, responseChanCapacity)
	}

	e := &Engine{
		numTrials:          b.numTrials,
		maxRuntime:         b.maxRuntime,
		hasMaxRuntime:      b.hasMaxRuntime,
		maxSemiStableSteps: b.maxSemiStableSteps,
		processing:         processing,
		completed:          make(map[trial.ID]*trial.Trial, b.numTrials),
		primeNetwork:       b.primeNetwork,
		verbosity:          b.verbosity,
		response:           responseChan,
	}

	return e, responseChan
}
