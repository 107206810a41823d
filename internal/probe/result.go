package probe

import (
	"errors"
	"fmt"
)

// Kind is the closed set of probe outcomes.
type Kind string

const (
	KindSuccess           Kind = "success"
	KindMissingCredential Kind = "missing_credential"
	KindNetworkError      Kind = "network_error"
	KindRemoteError       Kind = "remote_error"
)

// ErrMissingCredential is wrapped by Result.Err for KindMissingCredential.
var ErrMissingCredential = errors.New("no credential found")

// Result is the outcome of one probe run.
//
// StatusCode is the HTTP status for success and remote errors when the
// transport exposes it; 0 otherwise. Body is only set for remote errors.
type Result struct {
	Probe      string  `json:"probe"`
	Kind       Kind    `json:"kind"`
	StatusCode int     `json:"status_code,omitempty"`
	Payload    string  `json:"payload,omitempty"`
	Message    string  `json:"message,omitempty"`
	Body       string  `json:"body,omitempty"`
	LatencyMS  float64 `json:"latency_ms"`
}

func Success(status int, payload string) Result {
	return Result{Kind: KindSuccess, StatusCode: status, Payload: payload}
}

func MissingCredential() Result {
	return Result{Kind: KindMissingCredential, Message: ErrMissingCredential.Error()}
}

func NetworkError(message string) Result {
	return Result{Kind: KindNetworkError, Message: message}
}

func RemoteError(status int, message, body string) Result {
	if message == "" {
		message = fmt.Sprintf("request failed with status code %d", status)
	}
	return Result{Kind: KindRemoteError, StatusCode: status, Message: message, Body: body}
}

func (r Result) OK() bool { return r.Kind == KindSuccess }

// Err returns nil on success and a descriptive error otherwise.
func (r Result) Err() error {
	switch r.Kind {
	case KindSuccess:
		return nil
	case KindMissingCredential:
		return fmt.Errorf("%s: %w", r.Probe, ErrMissingCredential)
	case KindRemoteError:
		return fmt.Errorf("%s: %s (status %d)", r.Probe, r.Message, r.StatusCode)
	default:
		return fmt.Errorf("%s: %s", r.Probe, r.Message)
	}
}
