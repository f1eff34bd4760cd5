package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/gateway"
	"github.com/katalvlaran/quantik/operator"
	"github.com/katalvlaran/quantik/qasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "secret"

// fakeJobService is an in-memory job service. Jobs report "queued" and
// "running" once each before reaching finalStatus.
type fakeJobService struct {
	finalStatus string
	counts      map[string]int

	mu       sync.Mutex
	backends []gateway.BackendInfo
	polls    map[string]int
	requests []gateway.JobRequest
}

func newFakeJobService() *fakeJobService {
	return &fakeJobService{
		backends: []gateway.BackendInfo{
			{Name: "sim_cloud", Simulator: true, Operational: true, PendingJobs: 0, NumQubits: 32},
			{Name: "hw_busy", Operational: true, PendingJobs: 9, NumQubits: 127},
			{Name: "hw_idle", Operational: true, PendingJobs: 1, NumQubits: 127},
			{Name: "hw_down", Operational: false, PendingJobs: 0, NumQubits: 127},
		},
		finalStatus: gateway.JobCompleted,
		counts:      map[string]int{"00": 480, "0x3": 520},
		polls:       map[string]int{},
	}
}

func (f *fakeJobService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/backends":
		f.mu.Lock()
		backends := f.backends
		f.mu.Unlock()
		_ = enc.Encode(map[string]any{"backends": backends})
	case r.Method == http.MethodPost && r.URL.Path == "/jobs":
		var req gateway.JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()
		_ = enc.Encode(gateway.JobStatus{ID: "job-1", Status: gateway.JobQueued})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/jobs/"):
		id := strings.TrimPrefix(r.URL.Path, "/jobs/")
		f.mu.Lock()
		f.polls[id]++
		n := f.polls[id]
		f.mu.Unlock()
		st := gateway.JobStatus{ID: id}
		switch n {
		case 1:
			st.Status = gateway.JobQueued
		case 2:
			st.Status = gateway.JobRunning
		default:
			st.Status = f.finalStatus
			if f.finalStatus == gateway.JobCompleted {
				st.Counts = f.counts
			} else {
				st.Error = "calibration drift"
			}
		}
		_ = enc.Encode(st)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeJobService) setBackends(b []gateway.BackendInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.backends = b
}

func (f *fakeJobService) snapshot() ([]gateway.JobRequest, map[string]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	polls := make(map[string]int, len(f.polls))
	for k, v := range f.polls {
		polls[k] = v
	}

	return append([]gateway.JobRequest(nil), f.requests...), polls
}

func remoteConfig(url string) gateway.Config {
	cfg := gateway.DefaultConfig()
	cfg.URL = url
	cfg.Token = testToken
	cfg.Simulated = false
	cfg.Shots = 1000
	cfg.PollInterval = time.Millisecond
	cfg.RequestsPerSecond = 0

	return cfg
}

func TestAuthenticate(t *testing.T) {
	srv := httptest.NewServer(newFakeJobService())
	defer srv.Close()
	ctx := context.Background()

	svc, err := gateway.NewService(remoteConfig(srv.URL), nil)
	require.NoError(t, err)
	require.NoError(t, svc.Authenticate(ctx))

	bad := remoteConfig(srv.URL)
	bad.Token = "wrong"
	svc, err = gateway.NewService(bad, nil)
	require.NoError(t, err)
	err = svc.Authenticate(ctx)
	require.ErrorIs(t, err, gateway.ErrAuthenticationFailed)
	assert.Contains(t, err.Error(), "401")
	assert.NotEmpty(t, errors.GetAllHints(err))

	missing := remoteConfig(srv.URL)
	missing.Token = ""
	svc, err = gateway.NewService(missing, nil)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Authenticate(ctx), gateway.ErrAuthenticationFailed)
}

func TestAuthenticateSimulatedOnly(t *testing.T) {
	cfg := gateway.DefaultConfig()
	svc, err := gateway.NewService(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Authenticate(context.Background()))

	cfg.Simulated = false
	svc, err = gateway.NewService(cfg, nil)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Authenticate(context.Background()), gateway.ErrBackendUnavailable)
}

func TestBackendUnavailable(t *testing.T) {
	ctx := context.Background()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer down.Close()
	svc, err := gateway.NewService(remoteConfig(down.URL), nil)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Authenticate(ctx), gateway.ErrBackendUnavailable)

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	svc, err = gateway.NewService(remoteConfig(url), nil)
	require.NoError(t, err)
	err = svc.Authenticate(ctx)
	require.ErrorIs(t, err, gateway.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, gateway.ErrAuthenticationFailed)

	teapot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no", http.StatusTeapot)
	}))
	defer teapot.Close()
	svc, err = gateway.NewService(remoteConfig(teapot.URL), nil)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Authenticate(ctx), gateway.ErrRequestRejected)
}

func TestSelectBackend(t *testing.T) {
	fake := newFakeJobService()
	srv := httptest.NewServer(fake)
	defer srv.Close()
	ctx := context.Background()

	svc, err := gateway.NewService(remoteConfig(srv.URL), nil)
	require.NoError(t, err)

	b, err := svc.SelectBackend(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "hw_idle", b.Name())
	assert.False(t, b.IsSimulator())

	b, err = svc.SelectBackend(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, gateway.SimulatorName, b.Name())

	pinned := remoteConfig(srv.URL)
	pinned.Backend = "hw_busy"
	svc, err = gateway.NewService(pinned, nil)
	require.NoError(t, err)
	b, err = svc.SelectBackend(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "hw_busy", b.Name())

	pinned.Backend = "hw_down"
	svc, err = gateway.NewService(pinned, nil)
	require.NoError(t, err)
	_, err = svc.SelectBackend(ctx, false)
	require.ErrorIs(t, err, gateway.ErrBackendUnavailable)

	fake.setBackends(fake.backends[:1])
	svc, err = gateway.NewService(remoteConfig(srv.URL), nil)
	require.NoError(t, err)
	_, err = svc.SelectBackend(ctx, false)
	require.ErrorIs(t, err, gateway.ErrBackendUnavailable)
}

func TestSubmitRemote(t *testing.T) {
	fake := newFakeJobService()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	svc, err := gateway.NewService(remoteConfig(srv.URL), nil)
	require.NoError(t, err)
	res, err := svc.Submit(context.Background(), bell(t), 0)
	require.NoError(t, err)

	assert.Equal(t, "job-1", res.JobID)
	assert.Equal(t, "hw_idle", res.Backend)
	assert.Equal(t, 1000, res.Shots)
	assert.Equal(t, map[string]int{"00": 480, "11": 520}, res.Counts) // hex key normalised

	requests, polls := fake.snapshot()
	require.Len(t, requests, 1)
	req := requests[0]
	assert.Equal(t, "hw_idle", req.Backend)
	assert.Equal(t, 1000, req.Shots)
	want, err := qasm.Export(bell(t))
	require.NoError(t, err)
	assert.Equal(t, want, req.Program)
	assert.Equal(t, 3, polls["job-1"])
}

func TestSubmitFailedJob(t *testing.T) {
	for _, status := range []string{gateway.JobFailed, gateway.JobCancelled} {
		fake := newFakeJobService()
		fake.finalStatus = status
		srv := httptest.NewServer(fake)

		svc, err := gateway.NewService(remoteConfig(srv.URL), nil)
		require.NoError(t, err)
		_, err = svc.Submit(context.Background(), bell(t), 10)
		require.ErrorIs(t, err, gateway.ErrBackendUnavailable, status)
		assert.Contains(t, err.Error(), "calibration drift")
		srv.Close()
	}
}

func TestSubmitRejectsOperatorGates(t *testing.T) {
	srv := httptest.NewServer(newFakeJobService())
	defer srv.Close()

	op, err := operator.FromPauli("XX")
	require.NoError(t, err)
	u, err := circuit.NewUnitaryGate("xx", op)
	require.NoError(t, err)
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Append(u, 0, 1))
	c.MeasureAll()

	svc, err := gateway.NewService(remoteConfig(srv.URL), nil)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), c, 10)
	require.ErrorIs(t, err, qasm.ErrUnsupportedGate)
}

func TestSubmitHonoursContext(t *testing.T) {
	fake := newFakeJobService()
	fake.finalStatus = gateway.JobRunning // never finishes
	srv := httptest.NewServer(fake)
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	svc, err := gateway.NewService(cfg, nil)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), bell(t), 10)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatus(t *testing.T) {
	cfg := gateway.DefaultConfig()
	cfg.Seed = 11
	cfg.Shots = 64
	svc, err := gateway.NewService(cfg, nil)
	require.NoError(t, err)

	res, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"00": 64}, res.Counts)

	_, err = gateway.NewService(gateway.Config{}, nil)
	require.ErrorIs(t, err, gateway.ErrInvalidShots)
}
