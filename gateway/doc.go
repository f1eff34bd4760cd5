// Package gateway runs circuits on execution backends and returns sampled
// measurement counts.
//
// Two backends are provided. SimulatorBackend converts the circuit to an
// operator in-process and samples its output distribution. RemoteBackend
// submits the circuit as OpenQASM 3 to an HTTP job service and polls the job
// until it finishes. Service ties them together behind an explicit Config:
// it authenticates against the job service, selects a backend and submits
// circuits.
//
// Errors returned here carry user-facing hints (errors.GetAllHints) and
// match the package sentinels with errors.Is:
//
//	res, err := svc.Submit(ctx, c, 1024)
//	switch {
//	case errors.Is(err, gateway.ErrAuthenticationFailed):
//		// bad or missing token
//	case errors.Is(err, gateway.ErrBackendUnavailable):
//		// transport failure, 5xx or failed job
//	}
package gateway
