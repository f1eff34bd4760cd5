// SPDX-License-Identifier: MIT

package gateway

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/logger"
	"github.com/katalvlaran/quantik/operator"
	"go.uber.org/zap"
)

const (
	// SimulatorName is the name reported by SimulatorBackend.
	SimulatorName = "local_simulator"
	// DefaultSimulatorMaxQubits bounds the dense operator to 2^10 × 2^10.
	DefaultSimulatorMaxQubits = 10
)

// SimulatorBackend samples circuits from their exact output distribution.
//
// The circuit is converted to an operator once per Run; column 0 gives the
// outcome probabilities from |0…0⟩, which are marginalised onto the measured
// classical bits and sampled shots times. Safe for concurrent use.
type SimulatorBackend struct {
	maxQubits int
	log       *zap.SugaredLogger

	mu  sync.Mutex
	rng *rand.Rand
}

// SimulatorOption configures a SimulatorBackend.
type SimulatorOption func(*SimulatorBackend)

// WithSeed fixes the sampling seed; seed 0 keeps a random seed.
func WithSeed(seed uint64) SimulatorOption {
	return func(s *SimulatorBackend) {
		if seed != 0 {
			s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithMaxQubits overrides DefaultSimulatorMaxQubits. Panics if n < 1.
func WithMaxQubits(n int) SimulatorOption {
	if n < 1 {
		panic("gateway: WithMaxQubits(n) requires n >= 1")
	}

	return func(s *SimulatorBackend) { s.maxQubits = n }
}

// WithSimulatorLogger sets the logger; nil keeps the no-op logger.
func WithSimulatorLogger(log *zap.SugaredLogger) SimulatorOption {
	return func(s *SimulatorBackend) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSimulatorBackend returns a simulator with the given options applied.
func NewSimulatorBackend(opts ...SimulatorOption) *SimulatorBackend {
	s := &SimulatorBackend{
		maxQubits: DefaultSimulatorMaxQubits,
		log:       zap.NewNop().Sugar(),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *SimulatorBackend) Name() string   { return SimulatorName }
func (*SimulatorBackend) IsSimulator() bool { return true }

// Run samples shots outcomes of c.
// Errors: ErrNilCircuit, ErrInvalidShots, ErrNoMeasurements,
// ErrCircuitTooLarge, circuit conversion errors, ctx errors.
func (s *SimulatorBackend) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	if err := validateRun(c, shots); err != nil {
		if errors.Is(err, ErrNoMeasurements) {
			return nil, errors.WithHint(err, "measure the qubits to sample, e.g. with MeasureAll")
		}
		return nil, err
	}
	if c.NumQubits() > s.maxQubits {
		return nil, errors.Wrapf(ErrCircuitTooLarge, "%d qubits > %d", c.NumQubits(), s.maxQubits)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, err := c.ToOperator()
	if err != nil {
		return nil, errors.Wrapf(err, "simulate %s", c.Name())
	}
	probs, err := operator.Probabilities(op)
	if err != nil {
		return nil, errors.Wrapf(err, "simulate %s", c.Name())
	}
	dist := Marginalize(probs, c.MeasuredClbits())
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		JobID:   uuid.NewString(),
		Backend: SimulatorName,
		Shots:   shots,
		Counts:  s.sample(dist, shots),
	}
	s.log.Debugw("simulated circuit",
		logger.FieldJobID, res.JobID,
		logger.FieldComponent, c.Name(),
		logger.FieldQubits, c.NumQubits(),
		logger.FieldShots, shots,
		logger.FieldCount, len(res.Counts))

	return res, nil
}

// Marginalize folds basis-state probabilities onto classical bit strings.
// clbits[j] is the qubit measured into classical bit j, or -1 for an unwritten
// bit (always reads 0). Keys put classical bit 0 rightmost; zero-probability
// outcomes are omitted.
func Marginalize(probs []float64, clbits []int) map[string]float64 {
	out := make(map[string]float64)
	m := len(clbits)
	key := make([]byte, m)
	for idx, p := range probs {
		if p == 0 {
			continue
		}
		for j, q := range clbits {
			bit := byte('0')
			if q >= 0 && idx>>q&1 == 1 {
				bit = '1'
			}
			key[m-1-j] = bit
		}
		out[string(key)] += p
	}

	return out
}

// sample draws shots outcomes from dist by inverse-CDF lookup over the
// sorted outcome keys.
func (s *SimulatorBackend) sample(dist map[string]float64, shots int) map[string]int {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cdf := make([]float64, len(keys))
	var acc float64
	for i, k := range keys {
		acc += dist[k]
		cdf[i] = acc
	}

	counts := make(map[string]int, len(keys))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < shots; i++ {
		u := s.rng.Float64() * acc
		j := sort.SearchFloat64s(cdf, u)
		if j == len(keys) {
			j--
		}
		counts[keys[j]]++
	}

	return counts
}

// bitString renders v as an n-character binary string, most significant bit first.
func bitString(v, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := n - 1; i >= 0; i-- {
		if v>>i&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
