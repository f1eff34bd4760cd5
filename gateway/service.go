// SPDX-License-Identifier: MIT

package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/logger"
	"go.uber.org/zap"
)

// Config holds everything a Service needs; there is no global configuration.
type Config struct {
	// URL is the job service base URL; empty allows simulated runs only.
	URL string
	// Token is the bearer token for the job service.
	Token string
	// Backend pins a remote backend by name; empty selects the least busy one.
	Backend string
	// Simulated routes Submit to the local simulator.
	Simulated bool
	// Shots is the default shot count for Submit.
	Shots int
	// PollInterval paces job status polling.
	PollInterval time.Duration
	// Timeout bounds one Submit, polling included; 0 means no bound.
	Timeout time.Duration
	// RequestsPerSecond paces calls to the job service; ≤ 0 disables pacing.
	RequestsPerSecond float64
	// Seed fixes the simulator's sampling seed; 0 is random.
	Seed uint64
	// SimulatorMaxQubits bounds simulated circuits; 0 uses the default.
	SimulatorMaxQubits int
	// HTTPClient overrides http.DefaultClient.
	HTTPClient *http.Client
}

// DefaultConfig returns a simulated configuration with 10000 shots.
func DefaultConfig() Config {
	return Config{
		Simulated:          true,
		Shots:              10000,
		PollInterval:       DefaultPollInterval,
		Timeout:            5 * time.Minute,
		RequestsPerSecond:  5,
		SimulatorMaxQubits: DefaultSimulatorMaxQubits,
	}
}

// Service authenticates against the job service, selects backends and
// submits circuits.
type Service struct {
	cfg       Config
	log       *zap.SugaredLogger
	client    *Client // nil without a URL
	simulator *SimulatorBackend
}

// NewService builds a Service from cfg. A nil log discards.
// Errors: ErrInvalidShots when cfg.Shots < 1.
func NewService(cfg Config, log *zap.SugaredLogger) (*Service, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.Named("gateway")
	if cfg.Shots < 1 {
		return nil, errors.Wrapf(ErrInvalidShots, "config shots = %d", cfg.Shots)
	}

	simOpts := []SimulatorOption{WithSeed(cfg.Seed), WithSimulatorLogger(log)}
	if cfg.SimulatorMaxQubits > 0 {
		simOpts = append(simOpts, WithMaxQubits(cfg.SimulatorMaxQubits))
	}
	s := &Service{cfg: cfg, log: log, simulator: NewSimulatorBackend(simOpts...)}
	if cfg.URL != "" {
		client, err := NewClient(cfg.URL, cfg.Token, cfg.RequestsPerSecond, cfg.HTTPClient, log)
		if err != nil {
			return nil, err
		}
		s.client = client
	}

	return s, nil
}

// Config returns the configuration the service was built with.
func (s *Service) Config() Config { return s.cfg }

// Simulator returns the local simulator backend.
func (s *Service) Simulator() *SimulatorBackend { return s.simulator }

// Authenticate verifies the token by listing backends. A simulated service
// without a URL has nothing to authenticate against and succeeds.
func (s *Service) Authenticate(ctx context.Context) error {
	if s.client == nil {
		if s.cfg.Simulated {
			return nil
		}
		return s.requireClient()
	}
	if s.cfg.Token == "" {
		return errors.WithHint(errors.Wrap(ErrAuthenticationFailed, "no token configured"),
			"set gateway.token, QUANTIK_GATEWAY_TOKEN or IBM_QUANTUM_TOKEN")
	}
	backends, err := s.client.Backends(ctx)
	if err != nil {
		return errors.Wrap(err, "authenticate")
	}
	s.log.Infow("authenticated", logger.FieldURL, s.cfg.URL, logger.FieldCount, len(backends))

	return nil
}

// Backends lists the remote backends.
func (s *Service) Backends(ctx context.Context) ([]BackendInfo, error) {
	if err := s.requireClient(); err != nil {
		return nil, err
	}

	return s.client.Backends(ctx)
}

// SelectBackend returns the local simulator when simulated is true. Otherwise
// it returns the configured backend if named, or the least busy operational
// hardware backend.
// Errors: ErrBackendUnavailable when no backend qualifies, plus request errors.
func (s *Service) SelectBackend(ctx context.Context, simulated bool) (Backend, error) {
	if simulated {
		return s.simulator, nil
	}
	backends, err := s.Backends(ctx)
	if err != nil {
		return nil, err
	}

	var (
		chosen BackendInfo
		ok     bool
	)
	if s.cfg.Backend != "" {
		for _, b := range backends {
			if b.Name == s.cfg.Backend {
				chosen, ok = b, b.Operational
				break
			}
		}
		if !ok {
			return nil, errors.Wrapf(ErrBackendUnavailable, "backend %q is not listed or not operational", s.cfg.Backend)
		}
	} else if chosen, ok = LeastBusy(backends, true); !ok {
		return nil, errors.WithHint(errors.Wrap(ErrBackendUnavailable, "no operational hardware backend"),
			"run with --simulated or pin gateway.backend")
	}

	s.log.Infow("backend selected",
		logger.FieldBackend, chosen.Name,
		logger.FieldPending, chosen.PendingJobs,
		logger.FieldQubits, chosen.NumQubits)

	return NewRemoteBackend(s.client, chosen, s.cfg.PollInterval), nil
}

// Submit selects a backend according to the configuration and runs c.
// shots ≤ 0 uses the configured shot count.
func (s *Service) Submit(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if shots <= 0 {
		shots = s.cfg.Shots
	}
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	backend, err := s.SelectBackend(ctx, s.cfg.Simulated)
	if err != nil {
		return nil, err
	}
	s.log.Infow("submitting circuit",
		logger.FieldBackend, backend.Name(),
		logger.FieldQubits, c.NumQubits(),
		logger.FieldShots, shots)

	res, err := backend.Run(ctx, c, shots)
	if err != nil {
		return nil, errors.Wrapf(err, "run on %s", backend.Name())
	}

	return res, nil
}

// StatusCircuit returns the environment check circuit: two idle qubits,
// both measured.
func StatusCircuit() *circuit.Circuit {
	c, _ := circuit.New(2, circuit.WithName("status"))
	c.MeasureAll()

	return c
}

// Status authenticates and submits StatusCircuit, confirming the configured
// path works end to end.
func (s *Service) Status(ctx context.Context) (*Result, error) {
	if err := s.Authenticate(ctx); err != nil {
		return nil, err
	}

	return s.Submit(ctx, StatusCircuit(), 0)
}

func (s *Service) requireClient() error {
	if s.client != nil {
		return nil
	}

	return errors.WithHint(errors.Wrap(ErrBackendUnavailable, "no job service URL"),
		"set gateway.url or QUANTIK_GATEWAY_URL, or run with --simulated")
}
