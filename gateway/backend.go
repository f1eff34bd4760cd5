// SPDX-License-Identifier: MIT

package gateway

import (
	"context"

	"github.com/katalvlaran/quantik/circuit"
)

// Backend executes measured circuits.
type Backend interface {
	// Name identifies the backend in results and logs.
	Name() string
	// IsSimulator reports whether the backend samples a classical simulation.
	IsSimulator() bool
	// Run executes c for shots repetitions and returns the measured counts.
	Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error)
}

// BackendInfo describes a backend offered by the job service.
type BackendInfo struct {
	Name        string `json:"name"`
	Simulator   bool   `json:"simulator"`
	Operational bool   `json:"operational"`
	PendingJobs int    `json:"pending_jobs"`
	NumQubits   int    `json:"num_qubits"`
}

// LeastBusy returns the operational backend with the fewest pending jobs,
// optionally restricted to hardware. Ties go to the earlier entry.
func LeastBusy(backends []BackendInfo, hardwareOnly bool) (BackendInfo, bool) {
	var (
		best  BackendInfo
		found bool
	)
	for _, b := range backends {
		if !b.Operational || (hardwareOnly && b.Simulator) {
			continue
		}
		if !found || b.PendingJobs < best.PendingJobs {
			best, found = b, true
		}
	}

	return best, found
}

func validateRun(c *circuit.Circuit, shots int) error {
	if c == nil {
		return ErrNilCircuit
	}
	if shots < 1 {
		return ErrInvalidShots
	}
	if !c.HasMeasurements() {
		return ErrNoMeasurements
	}

	return nil
}
