package qsim

import (
	"os"
	"slices"

	"github.com/charmbracelet/log"
)

/*
Simulator is a sparse pure-state quantum simulator. It owns one amplitude
store and the mapping from the stable qubit identifiers handed out by
Allocate to the dense internal bit locations the store is keyed by.

A Simulator is not safe for concurrent use. Every method runs to completion
on the caller's goroutine; independent simulators share nothing.
*/
type Simulator struct {
	state   *State
	ids     map[int]int // identifier -> location
	owners  []int       // location -> identifier
	free    idHeap
	next    int
	sampler Sampler
	logger  *log.Logger
	metrics *Metrics
	config  *Config
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(sim *Simulator) {
		sim.config = cfg
	}
}

// WithSampler injects the uniform source consumed by measurements.
func WithSampler(sampler Sampler) Option {
	return func(sim *Simulator) {
		sim.sampler = sampler
	}
}

// WithSeed makes measurement outcomes reproducible.
func WithSeed(seed uint64) Option {
	return WithSampler(NewSampler(seed))
}

// WithLogger routes debug records to logger instead of stderr.
func WithLogger(logger *log.Logger) Option {
	return func(sim *Simulator) {
		sim.logger = logger
	}
}

// New returns an empty simulator configured by opts.
func New(opts ...Option) *Simulator {
	sim := &Simulator{
		ids:     make(map[int]int),
		metrics: newMetrics(),
	}

	for _, opt := range opts {
		opt(sim)
	}

	if sim.config == nil {
		sim.config = NewConfig()
	}

	if sim.sampler == nil {
		if sim.config.Seed != 0 {
			sim.sampler = NewSampler(sim.config.Seed)
		} else {
			sim.sampler = newEntropySampler()
		}
	}

	if sim.logger == nil {
		sim.logger = newLogger(sim.config.LogLevel)
	}

	sim.state = newState(sim.config.Epsilon)
	return sim
}

func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "qsim",
		Level:  lvl,
	})
}

// QubitCount returns the number of live qubits.
func (sim *Simulator) QubitCount() int {
	return len(sim.owners)
}

// StateSize returns the number of basis states currently stored.
func (sim *Simulator) StateSize() int {
	return sim.state.Len()
}

// Entries returns the stored basis states in ascending index order without relabeling locations.
func (sim *Simulator) Entries() []Entry {
	return sim.state.Entries()
}

// Metrics returns a snapshot of the operation counters.
func (sim *Simulator) Metrics() map[string]any {
	return sim.metrics.ExportMetrics()
}

// locate resolves a live identifier to its location.
func (sim *Simulator) locate(op string, id int) (uint, error) {
	loc, ok := sim.ids[id]
	if !ok {
		return 0, unknownQubit(op, id)
	}
	return uint(loc), nil
}

/*
resolve maps target and controls to locations and rejects the operand list
if any location appears twice. The error names the identifier occupying the
duplicated location.
*/
func (sim *Simulator) resolve(op string, ctls []int, target int) (uint, []uint, error) {
	t, err := sim.locate(op, target)
	if err != nil {
		return 0, nil, err
	}

	locs, err := sim.resolveAll(op, ctls)
	if err != nil {
		return 0, nil, err
	}

	if err := sim.checkDistinct(op, append(slices.Clone(locs), t)); err != nil {
		return 0, nil, err
	}

	return t, locs, nil
}

// resolveAll maps identifiers to locations without a duplicate check.
func (sim *Simulator) resolveAll(op string, ids []int) ([]uint, error) {
	locs := make([]uint, len(ids))
	for i, id := range ids {
		loc, err := sim.locate(op, id)
		if err != nil {
			return nil, err
		}
		locs[i] = loc
	}
	return locs, nil
}

func (sim *Simulator) checkDistinct(op string, locs []uint) error {
	sorted := slices.Clone(locs)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return duplicateQubit(op, sim.owners[sorted[i]])
		}
	}
	return nil
}
