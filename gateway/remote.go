// SPDX-License-Identifier: MIT

package gateway

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/logger"
	"github.com/katalvlaran/quantik/qasm"
	"go.uber.org/zap"
)

// DefaultPollInterval is used when a RemoteBackend is given no interval.
const DefaultPollInterval = time.Second

// RemoteBackend runs circuits on one backend of the job service.
type RemoteBackend struct {
	client       *Client
	info         BackendInfo
	pollInterval time.Duration
	log          *zap.SugaredLogger
}

// NewRemoteBackend binds info to client. pollInterval ≤ 0 uses DefaultPollInterval.
func NewRemoteBackend(client *Client, info BackendInfo, pollInterval time.Duration) *RemoteBackend {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &RemoteBackend{client: client, info: info, pollInterval: pollInterval, log: client.log}
}

func (b *RemoteBackend) Name() string      { return b.info.Name }
func (b *RemoteBackend) IsSimulator() bool { return b.info.Simulator }

// Info returns the backend description it was created with.
func (b *RemoteBackend) Info() BackendInfo { return b.info }

// Run exports c to OpenQASM 3, submits it and polls until the job reaches a
// terminal state or ctx is done.
//
// Errors: ErrNilCircuit, ErrInvalidShots, ErrNoMeasurements,
// qasm.ErrUnsupportedGate, ErrAuthenticationFailed, ErrBackendUnavailable
// (including failed and cancelled jobs), ctx errors.
func (b *RemoteBackend) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	if err := validateRun(c, shots); err != nil {
		return nil, err
	}
	program, err := qasm.Export(c)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "export %s", c.Name()),
			"remote backends need gate-level circuits; build the expanded form")
	}

	id, err := b.client.SubmitJob(ctx, JobRequest{Backend: b.info.Name, Shots: shots, Program: program})
	if err != nil {
		return nil, err
	}
	b.log.Infow("job submitted",
		logger.FieldJobID, id,
		logger.FieldBackend, b.info.Name,
		logger.FieldShots, shots)

	started := time.Now()
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()
	for {
		st, err := b.client.Job(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "job %s", id)
		}
		b.log.Debugw("job polled", logger.FieldJobID, id, logger.FieldStatus, st.Status)

		switch st.Status {
		case JobCompleted:
			b.log.Infow("job completed",
				logger.FieldJobID, id,
				logger.FieldDurationMS, time.Since(started).Milliseconds())
			return &Result{
				JobID:   id,
				Backend: b.info.Name,
				Shots:   shots,
				Counts:  normalizeCounts(st.Counts, c.NumClbits()),
			}, nil
		case JobFailed, JobCancelled:
			return nil, errors.Wrapf(ErrBackendUnavailable, "job %s %s: %s", id, st.Status, st.Error)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "job %s", id)
		case <-ticker.C:
		}
	}
}

// normalizeCounts rewrites hexadecimal outcome keys ("0x5") as width-bit
// binary strings and merges duplicates; binary keys pass through.
func normalizeCounts(counts map[string]int, width int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, n := range counts {
		if hex, ok := strings.CutPrefix(k, "0x"); ok {
			if v, err := strconv.ParseUint(hex, 16, 63); err == nil {
				k = bitString(int(v), width)
			}
		}
		out[k] += n
	}

	return out
}
