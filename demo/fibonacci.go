// Package demo holds a worked reaction network used by cmd/crnsim and by
// engine's own tests, so both exercise the same non-trivial network instead
// of a toy two-reaction example.
//
// Fibonacci reproduces the unary-counter Fibonacci(10) network from the
// example pack's original_source (MARlea_engine's sim_fibonacci_10 test):
// a CRN that computes the 10th Fibonacci number using only species counts
// and mass-action-style competition reactions, no arithmetic opcodes. The
// reaction and initial-count data below are reused verbatim from that test
// fixture, as data, not as translated algorithm code; the simulation logic
// that consumes it lives entirely in the network, trial, and engine
// packages.
package demo

import (
	"crnensemble/reaction"
	"crnensemble/solution"
)

// Fibonacci returns the reaction set and initial solution for a network
// that computes Fibonacci(10): after it reaches a stable solution, the
// "return" species' count holds the answer. Each call returns a fresh
// solution.Solution map (reaction.Reaction values are immutable), so
// callers may freely mutate the result.
func Fibonacci() ([]reaction.Reaction, solution.Solution) {
	return fibonacciReactions(), fibonacciInitialSolution()
}

func fibonacciInitialSolution() solution.Solution {
	return solution.Solution{
		"fibonacci.call":                  1,
		"index":                           10,
		"setup.call":                      0,
		"setup.done":                      0,
		"calculate.call":                  0,
		"destruct":                        0,
		"next_value":                      0,
		"last_value":                      0,
		"current_value":                   0,
		"next_value.less_than.2.index.1":  0,
		"next_value.less_than.2.index.0":  0,
		"setup.call.not.index.1":          0,
		"setup.call.not.index.0":          0,
		"destruct.done.partial.1":         0,
		"destruct.done.partial.0":         0,
		"current_value.not.index.1":       0,
		"current_value.not.index.0":       0,
		"last_value.not.index.1":          0,
		"last_value.not.index.0":          0,
		"destruct.not.index.1":            0,
		"destruct.not.index.0":            0,
		"destruct.done":                   0,
		"index.check":                     0,
		"current_value.convert":           0,
		"index.not.index.1":               0,
		"index.not.index.0":               0,
		"calculate.return":                0,
		"calculate.done":                  0,
		"next_value.convert":              0,
		"next_value.swap":                 0,
		"next_value.split":                0,
		"next_value.not.index.1":          0,
		"next_value.not.index.0":          0,
		"next_value.swap.not.index.1":     0,
		"next_value.swap.not.index.0":     0,
		"last_value.convert":              0,
		"return":                          0,
	}
}

func fibonacciReactions() []reaction.Reaction {
	return []reaction.Reaction{
		reaction.New([]reaction.Term{{Species: "fibonacci.call", Coefficient: 1}}, []reaction.Term{{Species: "setup.call", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "setup.done", Coefficient: 1}}, []reaction.Term{{Species: "calculate.call", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "setup.call", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "next_value", Coefficient: 1}, {Species: "setup.call", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "next_value", Coefficient: 2}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "next_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "last_value", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "current_value", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "setup.call", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.less_than.2.index.1", Coefficient: 1}, {Species: "setup.call.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "destruct.done.partial.0", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.less_than.2.index.0", Coefficient: 2}}, []reaction.Term{{Species: "next_value.less_than.2.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.less_than.2.index.1", Coefficient: 2}}, []reaction.Term{{Species: "next_value.less_than.2.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "next_value.less_than.2.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "next_value", Coefficient: 2}, {Species: "next_value.less_than.2.index.0", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 2}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value", Coefficient: 2}, {Species: "next_value.less_than.2.index.1", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 2}}, 10000),
		reaction.New([]reaction.Term{{Species: "setup.call.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "setup.call.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "setup.call.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "setup.call.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "setup.call.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "setup.call", Coefficient: 1}, {Species: "setup.call.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "setup.call", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "setup.call", Coefficient: 1}, {Species: "setup.call.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "setup.call", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}, {Species: "last_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "destruct.done.partial.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "last_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "last_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "last_value.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "last_value", Coefficient: 1}, {Species: "last_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "last_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value", Coefficient: 1}, {Species: "last_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "last_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.done.partial.0", Coefficient: 1}, {Species: "destruct.done.partial.1", Coefficient: 1}}, []reaction.Term{{Species: "destruct.done", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "destruct.done.partial.0", Coefficient: 2}}, []reaction.Term{{Species: "destruct.done.partial.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.done.partial.1", Coefficient: 2}}, []reaction.Term{{Species: "destruct.done.partial.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.done", Coefficient: 2}}, []reaction.Term{{Species: "destruct.done", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.done", Coefficient: 1}, {Species: "destruct", Coefficient: 1}}, []reaction.Term{{Species: "destruct.done", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "setup.done", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "destruct.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "destruct.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "destruct.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct.done", Coefficient: 1}}, []reaction.Term{{Species: "destruct.done", Coefficient: 1}, {Species: "destruct.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "destruct.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "destruct", Coefficient: 1}, {Species: "destruct.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "destruct", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "setup.done", Coefficient: 1}, {Species: "destruct.done", Coefficient: 1}}, []reaction.Term{{Species: "setup.done", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.call", Coefficient: 2}}, []reaction.Term{{Species: "calculate.call", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.call", Coefficient: 1}, {Species: "calculate.done", Coefficient: 1}}, []reaction.Term{{Species: "calculate.call", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.call", Coefficient: 1}}, []reaction.Term{{Species: "index.check", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "calculate.call", Coefficient: 1}}, []reaction.Term{{Species: "index.check", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 2}}, []reaction.Term{{Species: "index.check", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "index", Coefficient: 1}}, []reaction.Term{{Species: "current_value.convert", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value.convert", Coefficient: 1}, {Species: "index.check", Coefficient: 1}}, []reaction.Term{{Species: "current_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "index.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "calculate.return", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "index.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "index.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "index.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 1}}, []reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "index.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "index", Coefficient: 1}, {Species: "index.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "index", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index", Coefficient: 1}, {Species: "index.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "index", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.return", Coefficient: 1}, {Species: "index.check", Coefficient: 1}}, []reaction.Term{{Species: "calculate.return", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.convert", Coefficient: 2}}, []reaction.Term{{Species: "current_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.convert", Coefficient: 1}, {Species: "current_value", Coefficient: 1}}, []reaction.Term{{Species: "last_value", Coefficient: 1}, {Species: "current_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.convert", Coefficient: 1}, {Species: "current_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "next_value.convert", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.convert", Coefficient: 1}}, []reaction.Term{{Species: "current_value.convert", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.convert", Coefficient: 2}}, []reaction.Term{{Species: "next_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.convert", Coefficient: 1}, {Species: "next_value", Coefficient: 1}}, []reaction.Term{{Species: "next_value.swap", Coefficient: 1}, {Species: "next_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.convert", Coefficient: 1}, {Species: "next_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "next_value.split", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "next_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "next_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "next_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.convert", Coefficient: 1}}, []reaction.Term{{Species: "next_value.not.index.0", Coefficient: 1}, {Species: "next_value.convert", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "next_value", Coefficient: 1}, {Species: "next_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value", Coefficient: 1}, {Species: "next_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.split", Coefficient: 1}, {Species: "next_value.convert", Coefficient: 1}}, []reaction.Term{{Species: "next_value.split", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.split", Coefficient: 2}}, []reaction.Term{{Species: "next_value.split", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.split", Coefficient: 1}, {Species: "next_value.swap", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 1}, {Species: "current_value", Coefficient: 1}, {Species: "next_value.split", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.split", Coefficient: 1}, {Species: "next_value.swap.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "last_value.convert", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "next_value.swap.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "next_value.swap.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.swap.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "next_value.swap.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.split", Coefficient: 1}}, []reaction.Term{{Species: "next_value.swap.not.index.0", Coefficient: 1}, {Species: "next_value.split", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "next_value.swap", Coefficient: 1}, {Species: "next_value.swap.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "next_value.swap", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "next_value.swap", Coefficient: 1}, {Species: "next_value.swap.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "next_value.swap", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.convert", Coefficient: 1}, {Species: "next_value.split", Coefficient: 1}}, []reaction.Term{{Species: "last_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.convert", Coefficient: 2}}, []reaction.Term{{Species: "last_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.convert", Coefficient: 1}, {Species: "last_value", Coefficient: 1}}, []reaction.Term{{Species: "next_value", Coefficient: 1}, {Species: "last_value.convert", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.convert", Coefficient: 1}, {Species: "last_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "last_value.convert", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "last_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "last_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "last_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value.convert", Coefficient: 1}}, []reaction.Term{{Species: "last_value.convert", Coefficient: 1}, {Species: "last_value.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "last_value", Coefficient: 1}, {Species: "last_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "last_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "last_value", Coefficient: 1}, {Species: "last_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "last_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "index.check", Coefficient: 1}, {Species: "last_value.convert", Coefficient: 1}}, []reaction.Term{{Species: "index.check", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.return", Coefficient: 2}}, []reaction.Term{{Species: "calculate.return", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.return", Coefficient: 1}, {Species: "current_value", Coefficient: 1}}, []reaction.Term{{Species: "return", Coefficient: 1}, {Species: "calculate.return", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.return", Coefficient: 1}, {Species: "current_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "calculate.done", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.0", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value.not.index.1", Coefficient: 2}}, []reaction.Term{{Species: "current_value.not.index.1", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "calculate.return", Coefficient: 1}}, []reaction.Term{{Species: "calculate.return", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.0", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
		reaction.New([]reaction.Term{{Species: "current_value", Coefficient: 1}, {Species: "current_value.not.index.1", Coefficient: 1}}, []reaction.Term{{Species: "current_value", Coefficient: 1}}, 10000),
	}
}
